package api_router

import (
	"time"

	"github.com/learncodes/mynote-sync/internal/app"
	pkgapp "github.com/learncodes/mynote-sync/pkg/app"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status   string  `json:"status"`   // "healthy" 或 "unhealthy"
	Version  string  `json:"version"`  // 服务版本号
	Uptime   float64 `json:"uptime"`   // 运行时间（秒）
	Database string  `json:"database"` // "connected" 或 "error"
}

// Check 健康检查接口，包括数据库连接探测
func (h *HealthHandler) Check(c *gin.Context) {
	response := HealthResponse{
		Status:   "healthy",
		Version:  app.Version,
		Uptime:   time.Since(h.App.StartTime).Seconds(),
		Database: "connected",
	}

	if err := h.App.DB.Raw("SELECT 1").Error; err != nil {
		response.Status = "unhealthy"
		response.Database = "error"
		pkgapp.NewResponse(c).ToResponse(code.ErrorServerInternal.WithData(response))
		return
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.WithData(response))
}
