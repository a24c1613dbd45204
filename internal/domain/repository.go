package domain

import "context"

// NoteRepository 笔记仓储接口
// Get 类方法在记录不存在时返回 (nil, nil)；error 只表示存储故障。
type NoteRepository interface {
	// GetByID 根据ID获取笔记
	GetByID(ctx context.Context, id int64) (*Note, error)

	// Create 创建笔记并分配新标识
	Create(ctx context.Context, note *Note) (*Note, error)

	// Save 按ID整行替换（upsert），用于恢复路径
	Save(ctx context.Context, note *Note) (*Note, error)

	// Update 更新笔记
	Update(ctx context.Context, note *Note) (*Note, error)

	// Delete 物理删除笔记
	Delete(ctx context.Context, id int64) error

	// DeleteTrashed 物理删除所有已进回收站的笔记，返回删除数量
	DeleteTrashed(ctx context.Context) (int64, error)

	// ListByBucket 按视图桶列出笔记
	// active: pinned 优先，updatedAt 倒序；archived/trashed: updatedAt 倒序
	ListByBucket(ctx context.Context, bucket Bucket) ([]*Note, error)

	// ListByCategory 按分类列出未进回收站的笔记
	ListByCategory(ctx context.Context, category string) ([]*Note, error)

	// Search 对标题+内容做大小写不敏感的子串搜索，排除回收站
	Search(ctx context.Context, keyword string) ([]*Note, error)

	// ListAll 列出全部笔记（不分桶），用于备份快照
	ListAll(ctx context.Context) ([]*Note, error)

	// CountActiveByCategory 统计某分类下未进回收站的笔记数量
	CountActiveByCategory(ctx context.Context, category string) (int64, error)
}

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	// GetByID 根据ID获取分类
	GetByID(ctx context.Context, id int64) (*Category, error)

	// GetByName 根据名称获取分类（区分大小写）
	GetByName(ctx context.Context, name string) (*Category, error)

	// Create 创建分类
	Create(ctx context.Context, category *Category) (*Category, error)

	// Save 按ID整行替换（upsert），用于恢复路径
	Save(ctx context.Context, category *Category) (*Category, error)

	// DeleteWithReassign atomically rewrites every note referencing the
	// category to fallback, then removes the category row. No reader may
	// observe a note referencing a nonexistent category.
	// DeleteWithReassign 原子地将引用该分类的所有笔记改写为 fallback，
	// 再删除分类行。任何读取方都不会观察到笔记引用不存在的分类。
	DeleteWithReassign(ctx context.Context, category *Category, fallback string) error

	// ListAll 按名称升序列出全部分类
	ListAll(ctx context.Context) ([]*Category, error)

	// Count 统计分类数量
	Count(ctx context.Context) (int64, error)
}
