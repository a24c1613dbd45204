package dao

import (
	"context"

	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/internal/model"
	"github.com/learncodes/mynote-sync/pkg/timex"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// categoryRepository 实现 domain.CategoryRepository 接口
type categoryRepository struct {
	dao *Dao
}

// NewCategoryRepository 创建 CategoryRepository 实例
func NewCategoryRepository(dao *Dao) domain.CategoryRepository {
	return &categoryRepository{dao: dao}
}

func (r *categoryRepository) toDomain(m *model.Category) *domain.Category {
	if m == nil {
		return nil
	}
	return &domain.Category{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		CreatedAt: m.CreatedAt.Time(),
	}
}

func (r *categoryRepository) toModel(category *domain.Category) *model.Category {
	if category == nil {
		return nil
	}
	return &model.Category{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: timex.Time(category.CreatedAt),
	}
}

// GetByID 根据ID获取分类，不存在时返回 (nil, nil)
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var m model.Category
	err := r.dao.DB().WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByName 根据名称获取分类（区分大小写），不存在时返回 (nil, nil)
func (r *categoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	var m model.Category
	err := r.dao.DB().WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建分类并分配新标识
func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	m := r.toModel(category)
	m.ID = 0
	if err := r.dao.DB().WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	r.dao.Notify()
	return r.toDomain(m), nil
}

// Save 按ID整行替换（upsert），恢复路径使用
func (r *categoryRepository) Save(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	m := r.toModel(category)
	err := r.dao.DB().WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(m).Error
	if err != nil {
		return nil, err
	}
	r.dao.Notify()
	return r.toDomain(m), nil
}

// DeleteWithReassign 在一个事务内将引用该分类的笔记改写为 fallback，再删除分类行。
// 两步对读取方表现为原子操作。
func (r *categoryRepository) DeleteWithReassign(ctx context.Context, category *domain.Category, fallback string) error {
	err := r.dao.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Note{}).
			Where("category = ?", category.Name).
			Update("category", fallback).Error
		if err != nil {
			return err
		}
		return tx.Delete(&model.Category{}, category.ID).Error
	})
	if err != nil {
		return err
	}
	r.dao.Notify()
	return nil
}

// ListAll 按名称升序列出全部分类
func (r *categoryRepository) ListAll(ctx context.Context) ([]*domain.Category, error) {
	var ms []*model.Category
	if err := r.dao.DB().WithContext(ctx).Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}
	categories := make([]*domain.Category, 0, len(ms))
	for _, m := range ms {
		categories = append(categories, r.toDomain(m))
	}
	return categories, nil
}

// Count 统计分类数量
func (r *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.dao.DB().WithContext(ctx).Model(&model.Category{}).Count(&count).Error
	return count, err
}
