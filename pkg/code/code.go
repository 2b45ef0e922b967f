package code

import (
	"fmt"
	"net/http"
)

// Code is a response outcome: a numeric code, an HTTP status and a localized message.
// Code 是响应结果：数字码、HTTP 状态码和多语言消息
type Code struct {
	// 状态码
	code int
	// HTTP 状态码
	httpStatus int
	// 是否成功
	status bool
	// 消息
	Lang lang
	// 数据
	data interface{}
	// 是否含有Data
	haveData bool
	// 错误详细信息
	details []string
	// 是否含有详情
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure code. Registering the same code twice panics.
// NewError 注册一个失败码，重复注册会 panic
func NewError(code int, httpStatus int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, httpStatus: httpStatus, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code.
// NewSuss 注册一个成功码
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, httpStatus: http.StatusOK, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
func (e *Code) Clone() *Code {
	return &Code{
		code:       e.code,
		httpStatus: e.httpStatus,
		status:     e.status,
		Lang:       e.Lang,
		details:    []string{},
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

func (e *Code) Code() int {
	return e.code
}

func (e *Code) Status() bool {
	return e.status
}

func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

// MsgIn returns the message in language, an empty language means the global default
// MsgIn 返回指定语言的消息，为空时使用全局默认语言
func (e *Code) MsgIn(language string) string {
	if language == "" {
		return e.Msg()
	}
	return e.Lang.message(language)
}

func (e *Code) Details() []string {
	return e.details
}

func (e *Code) Data() interface{} {
	return e.data
}

func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

func (e *Code) HaveData() bool {
	return e.haveData
}

// WithData returns a copy carrying data, registered codes stay untouched.
// WithData 返回携带数据的副本，不修改已注册的 Code
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

// WithDetails returns a copy carrying details.
// WithDetails 返回携带详情的副本
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append(c.details, details...)
	return c
}

// StatusCode returns the HTTP status the code is answered with.
// StatusCode 返回该 Code 对应的 HTTP 状态码
func (e *Code) StatusCode() int {
	if e.httpStatus == 0 {
		return http.StatusOK
	}
	return e.httpStatus
}
