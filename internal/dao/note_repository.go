package dao

import (
	"context"
	"strings"

	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/internal/model"
	"github.com/learncodes/mynote-sync/pkg/timex"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// noteRepository 实现 domain.NoteRepository 接口
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository 创建 NoteRepository 实例
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	note := &domain.Note{
		ID:         m.ID,
		Title:      m.Title,
		Color:      m.Color,
		Category:   m.Category,
		IsArchived: m.IsArchived,
		IsTrashed:  m.IsTrashed,
		IsLocked:   m.IsLocked,
		IsPinned:   m.IsPinned,
		ImagePaths: domain.SplitImagePaths(m.ImagePaths),
		CreatedAt:  m.CreatedAt.Time(),
		UpdatedAt:  m.UpdatedAt.Time(),
	}
	if m.ChecklistItems != "" {
		note.Content = domain.ChecklistContent(domain.DecodeChecklist(m.ChecklistItems))
	} else {
		note.Content = domain.TextContent(m.Content)
	}
	return note
}

// toModel 将领域模型转换为数据库模型
func (r *noteRepository) toModel(note *domain.Note) *model.Note {
	if note == nil {
		return nil
	}
	m := &model.Note{
		ID:         note.ID,
		Title:      note.Title,
		Color:      note.Color,
		Category:   note.Category,
		IsArchived: note.IsArchived,
		IsTrashed:  note.IsTrashed,
		IsLocked:   note.IsLocked,
		IsPinned:   note.IsPinned,
		ImagePaths: domain.JoinImagePaths(note.ImagePaths),
		CreatedAt:  timex.Time(note.CreatedAt),
		UpdatedAt:  timex.Time(note.UpdatedAt),
	}
	if note.Content.Kind == domain.ContentChecklist {
		m.ChecklistItems = domain.EncodeChecklist(note.Content.Checklist)
	} else {
		m.Content = note.Content.Text
	}
	return m
}

// GetByID 根据ID获取笔记，不存在时返回 (nil, nil)
func (r *noteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var m model.Note
	err := r.dao.DB().WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建笔记并分配新标识
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := r.toModel(note)
	m.ID = 0
	if err := r.dao.DB().WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	r.dao.Notify()
	return r.toDomain(m), nil
}

// Save 按ID整行替换（upsert），恢复路径使用
func (r *noteRepository) Save(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := r.toModel(note)
	err := r.dao.DB().WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
	if err != nil {
		return nil, err
	}
	r.dao.Notify()
	return r.toDomain(m), nil
}

// Update 更新笔记全部字段
func (r *noteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m := r.toModel(note)
	err := r.dao.DB().WithContext(ctx).
		Model(&model.Note{}).
		Where("id = ?", m.ID).
		Select("*").Omit("id", "created_at").
		Updates(m).Error
	if err != nil {
		return nil, err
	}
	r.dao.Notify()
	return r.toDomain(m), nil
}

// Delete 物理删除笔记
func (r *noteRepository) Delete(ctx context.Context, id int64) error {
	err := r.dao.DB().WithContext(ctx).Delete(&model.Note{}, id).Error
	if err != nil {
		return err
	}
	r.dao.Notify()
	return nil
}

// DeleteTrashed 物理删除所有已进回收站的笔记
func (r *noteRepository) DeleteTrashed(ctx context.Context) (int64, error) {
	result := r.dao.DB().WithContext(ctx).
		Where("is_trashed = ?", true).
		Delete(&model.Note{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		r.dao.Notify()
	}
	return result.RowsAffected, nil
}

// ListByBucket 按视图桶列出笔记
func (r *noteRepository) ListByBucket(ctx context.Context, bucket domain.Bucket) ([]*domain.Note, error) {
	q := r.dao.DB().WithContext(ctx).Model(&model.Note{})

	switch bucket {
	case domain.BucketTrashed:
		q = q.Where("is_trashed = ?", true).Order("updated_at DESC")
	case domain.BucketArchived:
		q = q.Where("is_archived = ? AND is_trashed = ?", true, false).Order("updated_at DESC")
	default:
		q = q.Where("is_archived = ? AND is_trashed = ?", false, false).
			Order("is_pinned DESC").Order("updated_at DESC")
	}

	var ms []*model.Note
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(ms), nil
}

// ListByCategory 按分类列出未进回收站的笔记
func (r *noteRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Note, error) {
	var ms []*model.Note
	err := r.dao.DB().WithContext(ctx).
		Where("category = ? AND is_trashed = ?", category, false).
		Order("is_pinned DESC").Order("updated_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(ms), nil
}

// Search 对标题+内容做大小写不敏感的子串搜索，排除回收站
func (r *noteRepository) Search(ctx context.Context, keyword string) ([]*domain.Note, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"
	var ms []*model.Note
	err := r.dao.DB().WithContext(ctx).
		Where("is_trashed = ?", false).
		Where("lower(title) LIKE ? OR lower(content) LIKE ?", pattern, pattern).
		Order("is_pinned DESC").Order("updated_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(ms), nil
}

// ListAll 列出全部笔记（不分桶），备份快照使用
func (r *noteRepository) ListAll(ctx context.Context) ([]*domain.Note, error) {
	var ms []*model.Note
	if err := r.dao.DB().WithContext(ctx).Order("id ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(ms), nil
}

// CountActiveByCategory 统计某分类下未进回收站的笔记数量
func (r *noteRepository) CountActiveByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.dao.DB().WithContext(ctx).
		Model(&model.Note{}).
		Where("category = ? AND is_trashed = ?", category, false).
		Count(&count).Error
	return count, err
}

func (r *noteRepository) toDomainList(ms []*model.Note) []*domain.Note {
	notes := make([]*domain.Note, 0, len(ms))
	for _, m := range ms {
		notes = append(notes, r.toDomain(m))
	}
	return notes
}
