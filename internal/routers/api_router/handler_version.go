package api_router

import (
	"github.com/learncodes/mynote-sync/internal/app"
	pkgapp "github.com/learncodes/mynote-sync/pkg/app"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/gin-gonic/gin"
)

// VersionHandler 版本信息路由处理器
type VersionHandler struct {
	*Handler
}

// NewVersionHandler 创建 VersionHandler 实例
func NewVersionHandler(a *app.App) *VersionHandler {
	return &VersionHandler{Handler: NewHandler(a)}
}

// ServerVersion 返回服务端版本信息
func (h *VersionHandler) ServerVersion(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	response.ToResponse(code.Success.WithData(&pkgapp.VersionInfo{
		Version:   app.Version,
		GitTag:    app.GitTag,
		BuildTime: app.BuildTime,
	}))
}
