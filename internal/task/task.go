// Package task 管理后台周期任务
package task

import (
	"context"

	"github.com/learncodes/mynote-sync/global"
	"github.com/learncodes/mynote-sync/internal/app"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Manager 任务管理器，负责注册和调度所有周期任务
type Manager struct {
	cron   *cron.Cron
	app    *app.App
	logger *zap.Logger
	cancel context.CancelFunc
}

// NewManager 创建任务管理器
func NewManager(appContainer *app.App, logger *zap.Logger) *Manager {
	return &Manager{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
		app:    appContainer,
		logger: logger,
	}
}

// RegisterTasks registers the scheduled backup when a cron expression is
// configured. Without one the manager stays idle.
// RegisterTasks 在配置了 cron 表达式时注册周期备份任务，否则管理器保持空闲。
func (m *Manager) RegisterTasks() error {
	spec := ""
	if global.Config != nil {
		spec = global.Config.Sync.AutoBackupCron
	}
	if spec == "" {
		m.logger.Info("scheduled backup disabled (no cron expression configured)")
		return nil
	}

	backup := NewBackupTask(m.app, m.logger)
	entryID, err := m.cron.AddFunc(spec, backup.Run)
	if err != nil {
		return err
	}
	m.logger.Info("scheduled backup registered",
		zap.String("cron", spec),
		zap.Int("entry", int(entryID)))
	return nil
}

// Start launches the cron scheduler and the mutation-driven auto sync
// watcher.
// Start 启动 cron 调度器和变更驱动的自动同步监听器。
func (m *Manager) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	go NewWatchTask(m.app, m.logger).Run(ctx)
	m.cron.Start()
}

// Stop 停止调度器并等待运行中的任务结束
func (m *Manager) Stop() context.Context {
	if m.cancel != nil {
		m.cancel()
	}
	return m.cron.Stop()
}
