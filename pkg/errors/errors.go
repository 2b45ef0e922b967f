// Package errors maps store and repository errors onto response codes
// Package errors 将存储与仓储错误映射为响应码
package errors

import (
	"errors"

	"github.com/haierkeys/note-crud-service/internal/domain"
	"github.com/haierkeys/note-crud-service/pkg/app"
	"github.com/haierkeys/note-crud-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// Classify 将错误归类为响应码，无法识别的错误使用 fallback 并附带原始错误详情
func Classify(err error, fallback *code.Code) *code.Code {
	var codeErr *code.Code
	switch {
	case errors.As(err, &codeErr):
		return codeErr
	case errors.Is(err, domain.ErrUnavailable):
		return code.ErrorStoreUnavailable
	case errors.Is(err, domain.ErrInvalidID):
		return code.ErrorInvalidNoteID
	case errors.Is(err, domain.ErrNotFound):
		return code.ErrorNoteNotFound
	}
	if fallback == nil {
		fallback = code.ErrorServerInternal
	}
	return fallback.WithDetails(err.Error())
}

// ErrorResponse 统一错误响应处理，以纯文本输出
func ErrorResponse(c *gin.Context, err error, fallback *code.Code) {
	_ = c.Error(err)
	app.NewResponse(c).ToText(Classify(err, fallback))
}
