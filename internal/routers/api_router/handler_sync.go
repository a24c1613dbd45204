package api_router

import (
	"github.com/learncodes/mynote-sync/internal/app"
	"github.com/learncodes/mynote-sync/internal/dto"
	pkgapp "github.com/learncodes/mynote-sync/pkg/app"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SyncHandler 同步 API 路由处理器
type SyncHandler struct {
	*Handler
}

// NewSyncHandler 创建 SyncHandler 实例
func NewSyncHandler(a *app.App) *SyncHandler {
	return &SyncHandler{Handler: NewHandler(a)}
}

// Backup 全量上传本地快照，整体覆盖远端备份文档
func (h *SyncHandler) Backup(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	result, err := h.App.SyncService.Backup(c.Request.Context())
	if err != nil {
		h.App.Logger().Error("SyncHandler.Backup err", zap.Error(err))
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.SyncResultDTO{
		Notes:      result.Notes,
		Categories: result.Categories,
		SyncTime:   result.SyncTime.UnixMilli(),
	}))
}

// Restore 下载远端备份文档并全量回放到本地存储
func (h *SyncHandler) Restore(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	result, err := h.App.SyncService.Restore(c.Request.Context())
	if err != nil {
		h.App.Logger().Error("SyncHandler.Restore err", zap.Error(err))
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success.WithData(&dto.SyncResultDTO{
		Notes:      result.Notes,
		Categories: result.Categories,
		SyncTime:   result.SyncTime.UnixMilli(),
	}))
}

// Status 返回同步配置与远端备份状态
func (h *SyncHandler) Status(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	status := h.App.SyncService.Status(c.Request.Context())

	d := &dto.SyncStatusDTO{
		Provider: status.Provider,
		Account:  status.Account,
		SignedIn: status.SignedIn,
		AutoSync: status.AutoSync,
	}
	if !status.LastSyncTime.IsZero() {
		d.LastSyncTime = status.LastSyncTime.UnixMilli()
	}

	response.ToResponse(code.Success.WithData(d))
}

// Delete 删除远端备份文档；文档不存在视为成功
func (h *SyncHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	if err := h.App.SyncService.DeleteBackup(c.Request.Context()); err != nil {
		h.App.Logger().Error("SyncHandler.Delete err", zap.Error(err))
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success)
}

// AutoSync 开关自动同步；开启时触发一次即发即忘备份
func (h *SyncHandler) AutoSync(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.AutoSyncRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	if err := h.App.SyncService.SetAutoSync(c.Request.Context(), *params.Enabled); err != nil {
		response.ToError(err)
		return
	}

	response.ToResponse(code.Success)
}
