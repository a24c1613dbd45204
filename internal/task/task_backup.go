package task

import (
	"context"

	"github.com/learncodes/mynote-sync/internal/app"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BackupTask 周期性上传本地快照到远端
type BackupTask struct {
	app    *app.App
	logger *zap.Logger
}

// NewBackupTask 创建 BackupTask 实例
func NewBackupTask(appContainer *app.App, logger *zap.Logger) *BackupTask {
	return &BackupTask{
		app:    appContainer,
		logger: logger,
	}
}

// Run 执行一次备份；未登录时静默跳过
func (t *BackupTask) Run() {
	result, err := t.app.SyncService.Backup(context.Background())
	if err != nil {
		if errors.Is(err, code.ErrorNotSignedIn) {
			return
		}
		t.logger.Error("scheduled backup failed", zap.Error(err))
		return
	}
	t.logger.Info("scheduled backup completed",
		zap.Int("notes", result.Notes),
		zap.Int("categories", result.Categories))
}
