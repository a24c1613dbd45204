// Package service 实现业务逻辑层
package service

import (
	"context"
	"strings"
	"time"

	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/pkg/code"
	"github.com/learncodes/mynote-sync/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoteService owns the note lifecycle: saving, the bucket state machine
// (active/archived/trashed), pin and lock flags, and search.
// NoteService 负责笔记生命周期：保存、视图桶状态机（活跃/归档/回收站）、
// 置顶与锁定标志以及搜索。
type NoteService struct {
	noteRepo domain.NoteRepository
	logger   *zap.Logger
}

// NewNoteService 创建笔记服务
func NewNoteService(noteRepo domain.NoteRepository, logger *zap.Logger) *NoteService {
	return &NoteService{noteRepo: noteRepo, logger: logger}
}

// Save persists a user edit. A zero id creates a new note, a nonzero id
// replaces the stored row. Empty titles fall back to the default, checklist
// entries without an id get a fresh one, and the updated timestamp is
// always advanced.
// Save 持久化一次用户编辑。id 为零新建，非零整行替换。
// 空标题回退到默认标题，缺少 id 的清单条目分配新 id，更新时间戳总是前移。
func (s *NoteService) Save(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	now := time.Now()

	if strings.TrimSpace(note.Title) == "" {
		note.Title = domain.DefaultTitle
	}
	if note.Color == 0 {
		note.Color = domain.DefaultNoteColor
	}
	if note.Category == "" {
		note.Category = domain.DefaultCategoryName
	}
	if note.Content.Kind == domain.ContentChecklist {
		for i := range note.Content.Checklist {
			if note.Content.Checklist[i].ID == "" {
				note.Content.Checklist[i].ID = uuid.NewString()
			}
		}
	}
	note.UpdatedAt = now

	if note.IsNew() {
		note.CreatedAt = now
		return s.noteRepo.Create(ctx, note)
	}

	stored, err := s.noteRepo.GetByID(ctx, note.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, code.ErrorNoteNotFound
	}
	// 创建时间和生命周期标志不随内容编辑改变
	note.CreatedAt = stored.CreatedAt
	note.IsArchived = stored.IsArchived
	note.IsTrashed = stored.IsTrashed
	note.IsLocked = stored.IsLocked
	note.IsPinned = stored.IsPinned
	return s.noteRepo.Update(ctx, note)
}

// Insert applies a record as given, flags and timestamps included. Restore
// uses it: a zero id assigns a new identity, a nonzero id upserts by id so
// re-applying the same document is idempotent for id-bearing records.
// Insert 原样落库一条记录，包含标志位与时间戳。恢复路径使用：
// id 为零分配新标识，非零按 id upsert，同一文档重复应用对带 id 记录幂等。
func (s *NoteService) Insert(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	if note.IsNew() {
		return s.noteRepo.Create(ctx, note)
	}
	return s.noteRepo.Save(ctx, note)
}

// Get 获取单条笔记，不存在时返回 ErrorNoteNotFound
func (s *NoteService) Get(ctx context.Context, id int64) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, code.ErrorNoteNotFound
	}
	return note, nil
}

// Archive 归档笔记；回收站中的笔记不可归档，原样返回
func (s *NoteService) Archive(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setFlags(ctx, id, func(note *domain.Note) bool {
		if note.IsTrashed || note.IsArchived {
			return false
		}
		note.IsArchived = true
		return true
	})
}

// Unarchive 取消归档；回收站中的笔记不受影响
func (s *NoteService) Unarchive(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setFlags(ctx, id, func(note *domain.Note) bool {
		if note.IsTrashed || !note.IsArchived {
			return false
		}
		note.IsArchived = false
		return true
	})
}

// Trash 将笔记移入回收站，活跃和归档状态均可进入
func (s *NoteService) Trash(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setFlags(ctx, id, func(note *domain.Note) bool {
		if note.IsTrashed {
			return false
		}
		note.IsTrashed = true
		return true
	})
}

// Restore returns a trashed note to the active bucket. Prior archive
// status is not preserved.
// Restore 将回收站笔记恢复到活跃桶。之前的归档状态不保留。
func (s *NoteService) Restore(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setFlags(ctx, id, func(note *domain.Note) bool {
		if !note.IsTrashed {
			return false
		}
		note.IsTrashed = false
		note.IsArchived = false
		return true
	})
}

// Pin 置顶笔记
func (s *NoteService) Pin(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setFlags(ctx, id, func(note *domain.Note) bool {
		if note.IsPinned {
			return false
		}
		note.IsPinned = true
		return true
	})
}

// Unpin 取消置顶
func (s *NoteService) Unpin(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setFlags(ctx, id, func(note *domain.Note) bool {
		if !note.IsPinned {
			return false
		}
		note.IsPinned = false
		return true
	})
}

// Lock 锁定笔记
func (s *NoteService) Lock(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setFlags(ctx, id, func(note *domain.Note) bool {
		if note.IsLocked {
			return false
		}
		note.IsLocked = true
		return true
	})
}

// Unlock clears the lock flag. The caller must already hold a positive
// authentication result; no check happens here.
// Unlock 清除锁定标志。调用方必须已通过外部认证；此处不做校验。
func (s *NoteService) Unlock(ctx context.Context, id int64) (*domain.Note, error) {
	return s.setFlags(ctx, id, func(note *domain.Note) bool {
		if !note.IsLocked {
			return false
		}
		note.IsLocked = false
		return true
	})
}

// setFlags 加载笔记、应用状态变换并在确有变化时持久化
func (s *NoteService) setFlags(ctx context.Context, id int64, mutate func(*domain.Note) bool) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, code.ErrorNoteNotFound
	}
	if !mutate(note) {
		return note, nil
	}
	note.UpdatedAt = time.Now()
	updated, err := s.noteRepo.Update(ctx, note)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("note state changed",
		zap.Int64(logger.FieldNoteID, updated.ID),
		zap.String(logger.FieldBucket, string(updated.Bucket())))
	return updated, nil
}

// Purge 物理删除一条笔记，任意状态均可
func (s *NoteService) Purge(ctx context.Context, id int64) error {
	note, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if note == nil {
		return code.ErrorNoteNotFound
	}
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("note purged", zap.Int64(logger.FieldNoteID, id))
	return nil
}

// EmptyTrash 清空回收站，返回删除数量
func (s *NoteService) EmptyTrash(ctx context.Context) (int64, error) {
	count, err := s.noteRepo.DeleteTrashed(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info("trash emptied", zap.Int64(logger.FieldCount, count))
	}
	return count, nil
}

// List 按视图桶列出笔记
func (s *NoteService) List(ctx context.Context, bucket domain.Bucket) ([]*domain.Note, error) {
	return s.noteRepo.ListByBucket(ctx, bucket)
}

// ListByCategory 按分类列出未进回收站的笔记
func (s *NoteService) ListByCategory(ctx context.Context, category string) ([]*domain.Note, error) {
	return s.noteRepo.ListByCategory(ctx, category)
}

// Search 对标题和正文做大小写不敏感的子串搜索，回收站排除
func (s *NoteService) Search(ctx context.Context, keyword string) ([]*domain.Note, error) {
	return s.noteRepo.Search(ctx, keyword)
}
