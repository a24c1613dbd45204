package service

import (
	"context"
	"time"

	"github.com/learncodes/mynote-sync/global"
	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/internal/dto"
	"github.com/learncodes/mynote-sync/pkg/code"
	"github.com/learncodes/mynote-sync/pkg/logger"
	"github.com/learncodes/mynote-sync/pkg/remote"

	"go.uber.org/zap"
)

// SyncResult 一次备份或恢复处理的记录数与完成时间
type SyncResult struct {
	Notes      int
	Categories int
	SyncTime   time.Time
}

// SyncStatus 当前同步配置与远端备份状态
type SyncStatus struct {
	Provider     string
	Account      string
	SignedIn     bool
	AutoSync     bool
	LastSyncTime time.Time
}

// SyncService mirrors the full local snapshot against one remote backup
// document. There is no merge: upload overwrites the whole document and
// restore re-applies every remote record locally. Two devices racing an
// upload resolve at last-write-wins granularity of the entire document.
// SyncService 将完整本地快照镜像到单个远端备份文档。
// 没有合并：上传整体覆盖文档，恢复将远端每条记录重新落库。
// 两台设备并发上传时以整个文档为粒度后写者胜。
type SyncService struct {
	session      domain.Session
	provider     remote.Provider
	providerType remote.Type
	resolver     *FolderResolver
	fileName     string
	notes        *NoteService
	categories   *CategoryService
	noteRepo     domain.NoteRepository
	categoryRepo domain.CategoryRepository
	logger       *zap.Logger
}

// NewSyncService 创建同步服务
func NewSyncService(
	session domain.Session,
	provider remote.Provider,
	providerType remote.Type,
	resolver *FolderResolver,
	fileName string,
	notes *NoteService,
	categories *CategoryService,
	noteRepo domain.NoteRepository,
	categoryRepo domain.CategoryRepository,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		session:      session,
		provider:     provider,
		providerType: providerType,
		resolver:     resolver,
		fileName:     fileName,
		notes:        notes,
		categories:   categories,
		noteRepo:     noteRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Snapshot 导出全部笔记（不分桶）和全部分类
func (s *SyncService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	notes, err := s.noteRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Snapshot{Notes: notes, Categories: categories}, nil
}

// Backup encodes the current snapshot and overwrites the remote document,
// creating it on first upload. The remote update primitive is atomic, so a
// partially written document is never visible.
// Backup 编码当前快照并覆盖远端文档，首次上传时创建。
// 远端更新原语是原子的，不会出现半写的可见文档。
func (s *SyncService) Backup(ctx context.Context) (*SyncResult, error) {
	if !s.session.IsSignedIn() {
		return nil, code.ErrorNotSignedIn
	}

	started := time.Now()
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	content, err := dto.EncodeBackup(snapshot)
	if err != nil {
		return nil, code.ErrorBackupDecode.WithDetails(err.Error())
	}

	folderID, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, s.wrapRemote(err)
	}

	file, err := s.provider.FindFile(ctx, folderID, s.fileName)
	if err != nil {
		return nil, s.wrapRemote(err)
	}
	if file != nil {
		if err := s.provider.Update(ctx, file.ID, content); err != nil {
			return nil, s.wrapRemote(err)
		}
	} else {
		if file, err = s.provider.Create(ctx, folderID, s.fileName, content); err != nil {
			return nil, s.wrapRemote(err)
		}
	}

	s.logger.Info("backup uploaded",
		zap.String(logger.FieldAccount, s.session.Identity()),
		zap.String(logger.FieldProvider, s.providerType),
		zap.String(logger.FieldFileID, file.ID),
		zap.Int(logger.FieldSize, len(content)),
		zap.Int(logger.FieldCount, len(snapshot.Notes)),
		zap.Duration(logger.FieldDuration, time.Since(started)))

	return &SyncResult{
		Notes:      len(snapshot.Notes),
		Categories: len(snapshot.Categories),
		SyncTime:   time.Now(),
	}, nil
}

// Restore downloads the remote document and re-applies every record through
// the lifecycle insert path, categories before the notes referencing them.
// Locally deleted records present in the document are resurrected.
// Restore 下载远端文档并经生命周期 insert 路径逐条重新落库，
// 分类先于引用它们的笔记。本地已删除但文档中存在的记录会被复活。
func (s *SyncService) Restore(ctx context.Context) (*SyncResult, error) {
	if !s.session.IsSignedIn() {
		return nil, code.ErrorNotSignedIn
	}

	content, err := s.Download(ctx)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, code.ErrorBackupNotFound
	}

	snapshot, err := dto.DecodeBackup(content)
	if err != nil {
		return nil, code.ErrorBackupDecode.WithDetails(err.Error())
	}

	for _, category := range snapshot.Categories {
		if _, err := s.categories.Insert(ctx, category); err != nil {
			return nil, err
		}
	}
	for _, note := range snapshot.Notes {
		if _, err := s.notes.Insert(ctx, note); err != nil {
			return nil, err
		}
	}

	s.logger.Info("backup restored",
		zap.String(logger.FieldProvider, s.providerType),
		zap.Int(logger.FieldCount, len(snapshot.Notes)))

	return &SyncResult{
		Notes:      len(snapshot.Notes),
		Categories: len(snapshot.Categories),
		SyncTime:   time.Now(),
	}, nil
}

// Download 读取远端备份文档内容，文档不存在时返回 (nil, nil)
func (s *SyncService) Download(ctx context.Context) ([]byte, error) {
	if !s.session.IsSignedIn() {
		return nil, code.ErrorNotSignedIn
	}

	folderID, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, s.wrapRemote(err)
	}
	file, err := s.provider.FindFile(ctx, folderID, s.fileName)
	if err != nil {
		return nil, s.wrapRemote(err)
	}
	if file == nil {
		return nil, nil
	}
	content, err := s.provider.Download(ctx, file.ID)
	if err != nil {
		return nil, s.wrapRemote(err)
	}
	return content, nil
}

// LastSyncTime returns the remote document's last-modified time.
// ok 为 false 表示远端尚无备份（"never"）。
func (s *SyncService) LastSyncTime(ctx context.Context) (time.Time, bool, error) {
	if !s.session.IsSignedIn() {
		return time.Time{}, false, code.ErrorNotSignedIn
	}

	folderID, err := s.resolver.Resolve(ctx)
	if err != nil {
		return time.Time{}, false, s.wrapRemote(err)
	}
	file, err := s.provider.FindFile(ctx, folderID, s.fileName)
	if err != nil {
		return time.Time{}, false, s.wrapRemote(err)
	}
	if file == nil {
		return time.Time{}, false, nil
	}
	return file.ModifiedTime, true, nil
}

// DeleteBackup 尽力删除远端备份文档；文档不存在视为成功
func (s *SyncService) DeleteBackup(ctx context.Context) error {
	if !s.session.IsSignedIn() {
		return code.ErrorNotSignedIn
	}

	folderID, err := s.resolver.Resolve(ctx)
	if err != nil {
		return s.wrapRemote(err)
	}
	file, err := s.provider.FindFile(ctx, folderID, s.fileName)
	if err != nil {
		return s.wrapRemote(err)
	}
	if file == nil {
		return nil
	}
	if err := s.provider.Delete(ctx, file.ID); err != nil {
		if remote.IsNotFound(err) {
			return nil
		}
		return s.wrapRemote(err)
	}
	s.logger.Info("backup deleted", zap.String(logger.FieldFileID, file.ID))
	return nil
}

// Status 汇总同步配置与远端备份状态；远端查询失败不阻断状态返回
func (s *SyncService) Status(ctx context.Context) *SyncStatus {
	status := &SyncStatus{
		Provider: s.providerType,
		Account:  s.session.Identity(),
		SignedIn: s.session.IsSignedIn(),
	}
	if global.Config != nil {
		status.AutoSync = global.Config.Sync.AutoSync
	}
	if status.SignedIn {
		if last, ok, err := s.LastSyncTime(ctx); err == nil && ok {
			status.LastSyncTime = last
		}
	}
	return status
}

// SetAutoSync persists the autosync toggle. Enabling it launches one
// fire-and-forget backup that the caller does not await.
// SetAutoSync 持久化自动同步开关。开启时触发一次即发即忘的备份，
// 调用方不等待其完成。
func (s *SyncService) SetAutoSync(ctx context.Context, enabled bool) error {
	if global.Config != nil {
		global.Config.Sync.AutoSync = enabled
		if err := global.Config.Save(); err != nil {
			return err
		}
	}
	if enabled {
		go func() {
			if _, err := s.Backup(context.Background()); err != nil {
				s.logger.Warn("autosync backup failed", zap.Error(err))
			}
		}()
	}
	return nil
}

// wrapRemote 将远端错误归类：凭证失效、文档缺失或传输失败
func (s *SyncService) wrapRemote(err error) error {
	if remote.IsAuth(err) {
		// 凭证失效后缓存的文件夹 id 不再可信
		s.resolver.Invalidate()
		return code.ErrorRemoteAuth
	}
	if remote.IsNotFound(err) {
		return code.ErrorBackupNotFound
	}
	return code.ErrorSyncTransport.WithDetails(err.Error())
}
