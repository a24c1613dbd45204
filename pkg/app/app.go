// Package app 提供 HTTP 层的统一响应结构和参数校验
package app

import (
	"context"
	"strings"

	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

type Response struct {
	Ctx *gin.Context
}

type ListRes struct {
	List  interface{} `json:"list"` // Data list // 数据清单
	Total int         `json:"total"`
}

// Res is the unified response structure: Code/Status/Msg/Data
// Res 是统一的响应结构：Code/Status/Msg/Data
type Res struct {
	Code    int         `json:"code"`
	Status  bool        `json:"status"`
	Message interface{} `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
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

// ToResponse output to browser: unified use of Res
// ToResponse 输出到浏览器：统一使用 Res
func (r *Response) ToResponse(codeObj *code.Code) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: codeObj.Lang.GetMessage(),
		Data:    codeObj.Data(),
	}

	if codeObj.HaveDetails() {
		content.Details = strings.Join(codeObj.Details(), ",")
	}

	r.send(codeObj.StatusCode(), content)
}

// ToResponseList 输出列表响应，使用 ListRes 作为 Data
func (r *Response) ToResponseList(codeObj *code.Code, list interface{}, total int) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: codeObj.Lang.GetMessage(),
		Data: ListRes{
			List:  list,
			Total: total,
		},
	}

	r.send(codeObj.StatusCode(), content)
}

// ToError maps a service error onto the unified response: coded errors pass
// through as-is, everything else becomes an internal error with details.
// ToError 将业务错误映射到统一响应：编码错误原样透出，
// 其余错误归为内部错误并附详情。
func (r *Response) ToError(err error) {
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		r.ToResponse(codeErr)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		r.ToResponse(code.ErrorRequestTimeout)
		return
	}
	r.ToResponse(code.ErrorServerInternal.WithDetails(err.Error()))
}

func (r *Response) send(statusCode int, content interface{}) {
	r.Ctx.JSON(statusCode, content)
}
