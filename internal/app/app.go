// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/learncodes/mynote-sync/global"
	"github.com/learncodes/mynote-sync/internal/dao"
	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/internal/model"
	"github.com/learncodes/mynote-sync/internal/service"
	"github.com/learncodes/mynote-sync/pkg/code"
	"github.com/learncodes/mynote-sync/pkg/remote"
	"github.com/learncodes/mynote-sync/pkg/remote/drive"
	"github.com/learncodes/mynote-sync/pkg/remote/webdav"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	// StartTime 容器启动时间
	StartTime time.Time

	Session  domain.Session
	Provider remote.Provider

	// Repository 层
	NoteRepo     domain.NoteRepository
	CategoryRepo domain.CategoryRepository

	// Service 层
	NoteService     *service.NoteService
	CategoryService *service.CategoryService
	SyncService     *service.SyncService
}

// NewApp initializes the container: database, repositories, services and the
// configured remote provider, then seeds default categories on a fresh store.
// NewApp 初始化容器：数据库、仓储、服务和配置的远端提供方，
// 并在全新存储上播种默认分类。
func NewApp(ctx context.Context, logger *zap.Logger) (*App, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	cfg := global.Config
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	db, err := dao.NewDBEngine(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.Database.AutoMigrate {
		if err := model.AutoMigrate(db, ""); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	a := &App{
		logger:    logger,
		DB:        db,
		Dao:       dao.New(db),
		StartTime: time.Now(),
	}

	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.CategoryRepo = dao.NewCategoryRepository(a.Dao)

	a.NoteService = service.NewNoteService(a.NoteRepo, logger)
	a.CategoryService = service.NewCategoryService(a.CategoryRepo, a.NoteRepo, logger)

	if err := a.CategoryService.Seed(ctx); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	// 未登录时 Provider 保持 nil；同步操作在会话上把关，
	// 本地存储和 HTTP 接口不受影响
	a.Session = newSession(cfg.Sync)
	if a.Session.IsSignedIn() {
		a.Provider, err = newProvider(ctx, cfg.Sync)
		if err != nil {
			return nil, err
		}
	}

	resolver := service.NewFolderResolver(a.Provider, cfg.Sync.FolderName, logger)
	a.SyncService = service.NewSyncService(
		a.Session,
		a.Provider,
		cfg.Sync.Provider,
		resolver,
		cfg.Sync.FileName,
		a.NoteService,
		a.CategoryService,
		a.NoteRepo,
		a.CategoryRepo,
		logger,
	)

	return a, nil
}

// newSession derives the sync session from config. Drive signs in with the
// bearer access token; WebDAV signs in with its endpoint password.
// newSession 从配置派生同步会话。Drive 以 bearer 访问令牌登录，
// WebDAV 以其端点口令登录。
func newSession(cfg global.Sync) domain.Session {
	account, credential := cfg.Account, cfg.AccessToken
	if cfg.Provider == remote.WebDAV {
		credential = cfg.WebDAV.Password
		if account == "" {
			account = cfg.WebDAV.User
		}
	}
	return domain.NewTokenSession(account, credential)
}

// newProvider 按配置构造远端存储提供方
func newProvider(ctx context.Context, cfg global.Sync) (remote.Provider, error) {
	switch cfg.Provider {
	case remote.Drive:
		return drive.NewClient(ctx, &drive.Config{
			AccessToken: cfg.AccessToken,
		})
	case remote.WebDAV:
		return webdav.NewClient(&cfg.WebDAV)
	default:
		return nil, code.ErrorInvalidProvider.WithDetails(cfg.Provider)
	}
}

// Logger 返回容器日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Close 释放数据库连接
func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
