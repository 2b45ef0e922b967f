package app

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// ValidError single field validation error
// ValidError 单个字段校验错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

// ErrorsToString joins all messages
// ErrorsToString 拼接全部错误消息
func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ", ")
}

// MapsToString field name -> message
// MapsToString 字段名 -> 错误消息
func (v ValidErrors) MapsToString() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

// BindUriAndValid binds path parameters and runs the validator
// BindUriAndValid 绑定路径参数并校验
func BindUriAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	return validResult(c, c.ShouldBindUri(v))
}

// BindJSONAndValid binds a JSON body and runs the validator
// BindJSONAndValid 绑定 JSON 请求体并校验
func BindJSONAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	return validResult(c, c.ShouldBindJSON(v))
}

// BindOptionalJSONAndValid binds a JSON body, an absent or empty body leaves v untouched
// BindOptionalJSONAndValid 绑定 JSON 请求体，请求体为空（包括空的 chunked 请求体）时不修改 v
func BindOptionalJSONAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	body := c.Request.Body
	if body == nil || body == http.NoBody || c.Request.ContentLength == 0 {
		return true, nil
	}
	err := c.ShouldBindJSON(v)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return validResult(c, err)
}

func validResult(c *gin.Context, err error) (bool, ValidErrors) {
	if err == nil {
		return true, nil
	}

	var errs ValidErrors

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs = append(errs, &ValidError{Key: "body", Message: err.Error()})
		return false, errs
	}

	trans := GetTranslator(c)
	for _, fe := range verrs {
		msg := fe.Error()
		if trans != nil {
			msg = fe.Translate(trans)
		}
		errs = append(errs, &ValidError{Key: fe.Field(), Message: msg})
	}

	return false, errs
}

// GetTranslator returns the translator set by the lang middleware
// GetTranslator 获取语言中间件设置的翻译器
func GetTranslator(c *gin.Context) ut.Translator {
	v, exists := c.Get("trans")
	if !exists {
		return nil
	}
	trans, ok := v.(ut.Translator)
	if !ok {
		return nil
	}
	return trans
}
