package task

import (
	"context"
	"time"

	"github.com/learncodes/mynote-sync/global"
	"github.com/learncodes/mynote-sync/internal/app"

	"go.uber.org/zap"
)

// autoSyncDebounce 变更合并窗口
const autoSyncDebounce = 30 * time.Second

// WatchTask listens for store mutations and, when auto sync is enabled,
// coalesces them into a single backup per debounce window.
// WatchTask 监听存储变更，在启用自动同步时将变更合并为
// 每个窗口一次的备份上传。
type WatchTask struct {
	app    *app.App
	backup *BackupTask
	logger *zap.Logger
}

// NewWatchTask 创建 WatchTask 实例
func NewWatchTask(appContainer *app.App, logger *zap.Logger) *WatchTask {
	return &WatchTask{
		app:    appContainer,
		backup: NewBackupTask(appContainer, logger),
		logger: logger,
	}
}

// Run 阻塞运行直到 ctx 结束
func (t *WatchTask) Run(ctx context.Context) {
	events := t.app.Dao.Subscribe(ctx)

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			if global.Config == nil || !global.Config.Sync.AutoSync {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(autoSyncDebounce)
				fire = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(autoSyncDebounce)
		case <-fire:
			timer = nil
			fire = nil
			t.logger.Info("auto sync triggered by store mutation")
			t.backup.Run()
		}
	}
}
