package dto

import (
	"github.com/learncodes/mynote-sync/internal/domain"
)

// CategoryDTO 分类数据传输对象
type CategoryDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     int64  `json:"color"`
	NoteCount int64  `json:"noteCount"`
	CreatedAt int64  `json:"createdAt"`
}

// NewCategoryDTO 从领域模型构造分类 DTO
func NewCategoryDTO(category *domain.Category, noteCount int64) *CategoryDTO {
	return &CategoryDTO{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		NoteCount: noteCount,
		CreatedAt: category.CreatedAt.UnixMilli(),
	}
}

// CategoryCreateRequest 创建分类的请求参数
type CategoryCreateRequest struct {
	Name  string `json:"name" form:"name" binding:"required"`
	Color int64  `json:"color" form:"color"`
}

// CategoryDeleteRequest 删除分类的请求参数
type CategoryDeleteRequest struct {
	Name string `json:"name" form:"name" uri:"name" binding:"required"`
}

// CategoryNotesRequest 按分类列出笔记的请求参数
type CategoryNotesRequest struct {
	Name string `json:"name" form:"name" uri:"name" binding:"required"`
}
