package dto

import (
	"github.com/learncodes/mynote-sync/internal/domain"
)

// ChecklistItemDTO 清单条目传输对象
type ChecklistItemDTO struct {
	ID        string `json:"id" form:"id"`
	Text      string `json:"text" form:"text"`
	IsChecked bool   `json:"isChecked" form:"isChecked"`
}

// NoteDTO Note data transfer object
// NoteDTO 笔记数据传输对象
type NoteDTO struct {
	ID             int64              `json:"id"`
	Title          string             `json:"title"`
	ContentKind    string             `json:"contentKind"`
	Content        string             `json:"content"`
	ChecklistItems []ChecklistItemDTO `json:"checklistItems"`
	Color          int64              `json:"color"`
	Category       string             `json:"category"`
	Bucket         string             `json:"bucket"`
	IsArchived     bool               `json:"isArchived"`
	IsTrashed      bool               `json:"isTrashed"`
	IsLocked       bool               `json:"isLocked"`
	IsPinned       bool               `json:"isPinned"`
	ImagePaths     []string           `json:"imagePaths"`
	CreatedAt      int64              `json:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt"`
}

// NewNoteDTO 从领域模型构造笔记 DTO
func NewNoteDTO(note *domain.Note) *NoteDTO {
	d := &NoteDTO{
		ID:          note.ID,
		Title:       note.Title,
		ContentKind: string(note.Content.Kind),
		Content:     note.Content.Text,
		Color:       note.Color,
		Category:    note.Category,
		Bucket:      string(note.Bucket()),
		IsArchived:  note.IsArchived,
		IsTrashed:   note.IsTrashed,
		IsLocked:    note.IsLocked,
		IsPinned:    note.IsPinned,
		ImagePaths:  note.ImagePaths,
		CreatedAt:   note.CreatedAt.UnixMilli(),
		UpdatedAt:   note.UpdatedAt.UnixMilli(),
	}
	for _, item := range note.Content.Checklist {
		d.ChecklistItems = append(d.ChecklistItems, ChecklistItemDTO(item))
	}
	return d
}

// NewNoteDTOList 批量构造笔记 DTO
func NewNoteDTOList(notes []*domain.Note) []*NoteDTO {
	list := make([]*NoteDTO, 0, len(notes))
	for _, note := range notes {
		list = append(list, NewNoteDTO(note))
	}
	return list
}

// NoteSaveRequest Request parameters for creating or updating a note.
// A zero id creates a new note; a nonzero id replaces the stored row.
// NoteSaveRequest 创建或更新笔记的请求参数。
// id 为零则新建；非零则整行替换已存储的笔记。
type NoteSaveRequest struct {
	ID             int64              `json:"id" form:"id"`
	Title          string             `json:"title" form:"title"`
	ContentKind    string             `json:"contentKind" form:"contentKind"`
	Content        string             `json:"content" form:"content"`
	ChecklistItems []ChecklistItemDTO `json:"checklistItems" form:"checklistItems"`
	Color          int64              `json:"color" form:"color"`
	Category       string             `json:"category" form:"category"`
	ImagePaths     []string           `json:"imagePaths" form:"imagePaths"`
}

// Note 将保存请求转换为领域模型
func (r *NoteSaveRequest) Note() *domain.Note {
	note := &domain.Note{
		ID:         r.ID,
		Title:      r.Title,
		Color:      r.Color,
		Category:   r.Category,
		ImagePaths: r.ImagePaths,
	}
	if r.ContentKind == string(domain.ContentChecklist) {
		items := make([]domain.ChecklistItem, 0, len(r.ChecklistItems))
		for _, item := range r.ChecklistItems {
			items = append(items, domain.ChecklistItem(item))
		}
		note.Content = domain.ChecklistContent(items)
	} else {
		note.Content = domain.TextContent(r.Content)
	}
	return note
}

// NoteIDRequest 按ID操作笔记的请求参数
type NoteIDRequest struct {
	ID int64 `json:"id" form:"id" uri:"id" binding:"required,gte=1"`
}

// NoteListRequest 按视图桶列出笔记的请求参数
type NoteListRequest struct {
	Bucket string `json:"bucket" form:"bucket"`
}

// NoteSearchRequest 搜索笔记的请求参数
type NoteSearchRequest struct {
	Keyword string `json:"keyword" form:"keyword" binding:"required"`
}
