package service

import (
	"context"
	"sync"

	"github.com/learncodes/mynote-sync/pkg/logger"
	"github.com/learncodes/mynote-sync/pkg/remote"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// FolderResolver resolves the application-private backup folder by its fixed
// name. The resolved id is cached for the session lifetime; concurrent
// resolutions collapse into one remote round trip.
// FolderResolver 按固定名称解析应用私有备份文件夹。
// 解析到的 id 在会话生命周期内缓存；并发解析合并为一次远端往返。
type FolderResolver struct {
	provider   remote.Provider
	folderName string
	logger     *zap.Logger

	mu       sync.Mutex
	folderID string
	sf       singleflight.Group
}

// NewFolderResolver 创建文件夹解析器
func NewFolderResolver(provider remote.Provider, folderName string, logger *zap.Logger) *FolderResolver {
	return &FolderResolver{
		provider:   provider,
		folderName: folderName,
		logger:     logger,
	}
}

// Resolve returns the backup folder id, creating the folder when absent.
// Duplicate folders (a pre-existing race) resolve to the first listed entry.
// Resolve 返回备份文件夹 id，不存在时创建。
// 存在重复文件夹（历史竞态产物）时取列表中的第一个。
func (r *FolderResolver) Resolve(ctx context.Context) (string, error) {
	r.mu.Lock()
	cached := r.folderID
	r.mu.Unlock()
	if cached != "" {
		return cached, nil
	}

	id, err, _ := r.sf.Do("resolve", func() (interface{}, error) {
		folders, err := r.provider.ListFolders(ctx, r.folderName)
		if err != nil {
			return "", err
		}

		var entry *remote.Entry
		if len(folders) > 0 {
			entry = folders[0]
		} else {
			entry, err = r.provider.CreateFolder(ctx, r.folderName)
			if err != nil {
				return "", err
			}
			r.logger.Info("backup folder created",
				zap.String(logger.FieldFolderID, entry.ID))
		}

		r.mu.Lock()
		r.folderID = entry.ID
		r.mu.Unlock()
		return entry.ID, nil
	})
	if err != nil {
		return "", err
	}
	return id.(string), nil
}

// Invalidate drops the cached folder id. A new session must re-resolve.
// Invalidate 丢弃缓存的文件夹 id。新会话需要重新解析。
func (r *FolderResolver) Invalidate() {
	r.mu.Lock()
	r.folderID = ""
	r.mu.Unlock()
}
