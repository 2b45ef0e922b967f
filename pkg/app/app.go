package app

import (
	"strings"

	"github.com/haierkeys/note-crud-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

// LangKey gin context key holding the request language
// LangKey 保存请求语言的 gin 上下文键
const LangKey = "lang"

type Response struct {
	Ctx *gin.Context
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// ToText writes the code message as a plain text body with the code's HTTP status.
// Details are only written to the context for the access log, never to the client.
// ToText 以纯文本输出 Code 消息，HTTP 状态码取自 Code
// 详情只写入上下文供访问日志使用，不返回给客户端
func (r *Response) ToText(codeObj *code.Code) {
	r.Ctx.Set("status_code", codeObj.StatusCode())
	if codeObj.HaveDetails() {
		r.Ctx.Set("error_details", strings.Join(codeObj.Details(), ","))
	}
	r.Ctx.String(codeObj.StatusCode(), codeObj.MsgIn(r.Ctx.GetString(LangKey)))
}

// ToJSON writes data as a JSON body with the code's HTTP status.
// ToJSON 以 JSON 输出数据，HTTP 状态码取自 Code
func (r *Response) ToJSON(codeObj *code.Code, data interface{}) {
	r.Ctx.Set("status_code", codeObj.StatusCode())
	r.Ctx.JSON(codeObj.StatusCode(), data)
}

// ToResponse writes the code data as JSON when present, otherwise the message as text.
// ToResponse 有数据时输出 JSON，否则输出文本消息
func (r *Response) ToResponse(codeObj *code.Code) {
	if codeObj.HaveData() {
		r.ToJSON(codeObj, codeObj.Data())
		return
	}
	r.ToText(codeObj)
}
