package service

import (
	"context"
	"strings"
	"time"

	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/pkg/code"
	"github.com/learncodes/mynote-sync/pkg/logger"

	"go.uber.org/zap"
)

// CategoryService 负责分类的创建、删除级联和查询
type CategoryService struct {
	categoryRepo domain.CategoryRepository
	noteRepo     domain.NoteRepository
	logger       *zap.Logger
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo domain.CategoryRepository, noteRepo domain.NoteRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, noteRepo: noteRepo, logger: logger}
}

// Create 创建分类，名称唯一且区分大小写
func (s *CategoryService) Create(ctx context.Context, name string, color int64) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, code.ErrorCategoryNameEmpty
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, code.ErrorCategoryExists
	}

	return s.categoryRepo.Create(ctx, &domain.Category{
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	})
}

// Insert 原样落库一条分类记录，恢复路径使用；同名已存在时保持现状
func (s *CategoryService) Insert(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	existing, err := s.categoryRepo.GetByName(ctx, category.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	if category.ID == 0 {
		return s.categoryRepo.Create(ctx, category)
	}
	return s.categoryRepo.Save(ctx, category)
}

// Delete removes a category. Notes referencing it are reassigned to the
// default sentinel in the same transaction; notes are never deleted with
// their category. The sentinel itself cannot be removed.
// Delete 删除分类。引用它的笔记在同一事务内改写为默认兜底分类；
// 笔记绝不随分类删除。兜底分类本身不可删除。
func (s *CategoryService) Delete(ctx context.Context, name string) error {
	if name == domain.DefaultCategoryName {
		return code.ErrorDefaultCategory
	}

	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if category == nil {
		return code.ErrorCategoryNotFound
	}

	reassigned, err := s.noteRepo.CountActiveByCategory(ctx, name)
	if err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteWithReassign(ctx, category, domain.DefaultCategoryName); err != nil {
		return err
	}

	s.logger.Info("category deleted",
		zap.String(logger.FieldCategory, name),
		zap.Int64(logger.FieldCount, reassigned))
	return nil
}

// List 按名称升序列出全部分类
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categoryRepo.ListAll(ctx)
}

// Get 按名称获取分类，不存在时返回 ErrorCategoryNotFound
func (s *CategoryService) Get(ctx context.Context, name string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, code.ErrorCategoryNotFound
	}
	return category, nil
}

// NoteCount 统计分类下未进回收站的笔记数量
func (s *CategoryService) NoteCount(ctx context.Context, name string) (int64, error) {
	return s.noteRepo.CountActiveByCategory(ctx, name)
}

// Seed installs the default category set exactly once, on first store
// initialization.
// Seed 在存储首次初始化时一次性写入默认分类集合。
func (s *CategoryService) Seed(ctx context.Context) error {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now()
	for _, category := range domain.DefaultCategories() {
		category.CreatedAt = now
		if _, err := s.categoryRepo.Create(ctx, category); err != nil {
			return err
		}
	}
	s.logger.Info("default categories seeded", zap.Int(logger.FieldCount, len(domain.DefaultCategories())))
	return nil
}
