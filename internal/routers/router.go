// Package routers 组装 HTTP 路由
package routers

import (
	"time"

	"github.com/learncodes/mynote-sync/global"
	"github.com/learncodes/mynote-sync/internal/app"
	"github.com/learncodes/mynote-sync/internal/middleware"
	"github.com/learncodes/mynote-sync/internal/routers/api_router"

	"github.com/gin-gonic/gin"
)

// NewRouter 创建路由引擎，挂载中间件和全部 API 端点
func NewRouter(appContainer *app.App) *gin.Engine {

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.ContextTimeout(time.Duration(global.Config.Server.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		healthHandler := api_router.NewHealthHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		categoryHandler := api_router.NewCategoryHandler(appContainer)
		syncHandler := api_router.NewSyncHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		// 无需认证
		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/health", healthHandler.Check)

		auth := api.Group("", middleware.SimpleAuthTokenWithConfig(global.Config.Security.AuthToken))
		{
			auth.GET("/notes", noteHandler.List)
			auth.GET("/notes/search", noteHandler.Search)
			auth.GET("/note", noteHandler.Get)
			auth.POST("/note", noteHandler.Save)
			auth.DELETE("/note", noteHandler.Purge)
			auth.POST("/note/archive", noteHandler.Archive)
			auth.POST("/note/unarchive", noteHandler.Unarchive)
			auth.POST("/note/trash", noteHandler.Trash)
			auth.POST("/note/restore", noteHandler.Restore)
			auth.POST("/note/pin", noteHandler.Pin)
			auth.POST("/note/unpin", noteHandler.Unpin)
			auth.POST("/note/lock", noteHandler.Lock)
			auth.POST("/note/unlock", noteHandler.Unlock)
			auth.POST("/trash/empty", noteHandler.EmptyTrash)

			auth.GET("/categories", categoryHandler.List)
			auth.POST("/category", categoryHandler.Create)
			auth.DELETE("/category", categoryHandler.Delete)
			auth.GET("/category/notes", categoryHandler.Notes)

			auth.POST("/sync/backup", syncHandler.Backup)
			auth.POST("/sync/restore", syncHandler.Restore)
			auth.GET("/sync/status", syncHandler.Status)
			auth.DELETE("/sync/backup", syncHandler.Delete)
			auth.POST("/sync/autosync", syncHandler.AutoSync)
		}
	}

	r.NoRoute(middleware.NoFound())
	r.NoMethod(middleware.NoFound())

	return r
}
