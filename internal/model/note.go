package model

import (
	"github.com/learncodes/mynote-sync/pkg/timex"
)

// Note 笔记数据库模型
type Note struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title 标题
	Title string `gorm:"column:title"`
	// Content 自由文本内容（清单笔记时为空）
	Content string `gorm:"column:content"`
	// ChecklistItems 嵌入式编码的清单负载（文本笔记时为空）
	ChecklistItems string `gorm:"column:checklist_items"`
	// ImagePaths 逗号分隔的图片路径
	ImagePaths string `gorm:"column:image_paths"`
	// Color RGBA 颜色值
	Color int64 `gorm:"column:color"`
	// Category 分类名称外部引用（按名称而非ID）
	Category   string     `gorm:"column:category;index"`
	IsArchived bool       `gorm:"column:is_archived;index"`
	IsTrashed  bool       `gorm:"column:is_trashed;index"`
	IsLocked   bool       `gorm:"column:is_locked"`
	IsPinned   bool       `gorm:"column:is_pinned"`
	CreatedAt  timex.Time `gorm:"column:created_at"`
	UpdatedAt  timex.Time `gorm:"column:updated_at"`
}
