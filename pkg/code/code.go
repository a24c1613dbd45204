package code

import (
	"fmt"
	"net/http"
)

// Code is a coded result carrying status, bilingual message and optional payload
// Code 携带状态、双语消息和可选负载的编码结果
type Code struct {
	// 状态码
	code int
	// 状态
	status bool
	// 错误消息
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

// NewError registers an error code, panics on duplicates
// NewError 注册错误码，重复时 panic
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code, panics on duplicates
// NewSuss 注册成功码，重复时 panic
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
func (e *Code) Clone() *Code {
	// 创建一个新的副本,而不是修改原对象
	return &Code{
		code:   e.code,
		status: e.status,
		Lang:   e.Lang,
	}
}

func (e *Code) Error() string {
	return e.Msg()
}

// Is 按状态码比较，克隆副本与注册的原始码视为同一错误
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	return ok && t.code == e.code
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

func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.haveData = true
	c.data = data
	return c
}

func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.haveDetails = true
	c.details = append([]string{}, details...)
	return c
}

func (e *Code) StatusCode() int {
	return http.StatusOK
}
