package domain

import "time"

// DefaultCategoryName is the sentinel category notes fall back to when their
// category is deleted.
// DefaultCategoryName 是分类被删除后笔记回退到的哨兵分类名。
const DefaultCategoryName = "General"

// Category 分类领域模型，名称唯一（区分大小写）
type Category struct {
	ID        int64
	Name      string
	Color     int64
	CreatedAt time.Time
}

// DefaultCategories returns the seed set installed exactly once at first
// store initialization.
// DefaultCategories 返回首次初始化存储时一次性写入的默认分类集合。
func DefaultCategories() []*Category {
	return []*Category{
		{Name: "General", Color: 0xFF6200EE},
		{Name: "Personal", Color: 0xFFE91E63},
		{Name: "Work", Color: 0xFF2196F3},
		{Name: "Ideas", Color: 0xFFFFEB3B},
	}
}
