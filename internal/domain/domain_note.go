// Package domain 定义领域模型和接口
package domain

import "time"

// Bucket is the mutually exclusive top-level view classification of a note,
// computed from flags rather than stored.
// Bucket 是笔记互斥的顶层视图分类，由标志位计算得出而非存储。
type Bucket string

const (
	BucketActive   Bucket = "active"
	BucketArchived Bucket = "archived"
	BucketTrashed  Bucket = "trashed"
)

// ContentKind 定义笔记内容变体类型
type ContentKind string

const (
	// ContentText 自由富文本
	ContentText ContentKind = "text"
	// ContentChecklist 清单
	ContentChecklist ContentKind = "checklist"
)

// ChecklistItem 清单条目，仅归属于其所在笔记，无独立生命周期
type ChecklistItem struct {
	ID        string
	Text      string
	IsChecked bool
}

// NoteContent is the discriminated content variant: a note holds either
// freeform text or an ordered checklist, never both.
// NoteContent 是判别式内容变体：一条笔记要么持有自由文本，要么持有有序清单，二者互斥。
type NoteContent struct {
	Kind      ContentKind
	Text      string
	Checklist []ChecklistItem
}

// TextContent 构造文本内容变体
func TextContent(text string) NoteContent {
	return NoteContent{Kind: ContentText, Text: text}
}

// ChecklistContent 构造清单内容变体
func ChecklistContent(items []ChecklistItem) NoteContent {
	return NoteContent{Kind: ContentChecklist, Checklist: items}
}

// Note 笔记领域模型
type Note struct {
	ID         int64
	Title      string
	Content    NoteContent
	Color      int64
	Category   string
	IsArchived bool
	IsTrashed  bool
	IsLocked   bool
	IsPinned   bool
	ImagePaths []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DefaultTitle 空标题在保存时的替代值
const DefaultTitle = "Untitled"

// DefaultNoteColor 新建笔记的默认颜色 (白色 ARGB)
const DefaultNoteColor = 0xFFFFFFFF

// Bucket computes the effective view bucket, priority trashed > archived > active.
// Pinned is a sort flag within a bucket, never a bucket itself.
// Bucket 计算生效的视图桶，优先级 trashed > archived > active。
// Pinned 只是桶内排序标志，本身不是桶。
func (n *Note) Bucket() Bucket {
	if n.IsTrashed {
		return BucketTrashed
	}
	if n.IsArchived {
		return BucketArchived
	}
	return BucketActive
}

// IsNew 判断笔记是否尚未持久化（id 未分配）
func (n *Note) IsNew() bool {
	return n.ID == 0
}
