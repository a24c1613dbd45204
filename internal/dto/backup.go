// Package dto 定义数据传输对象（备份文档、请求参数和响应结构体）
package dto

import (
	"strings"
	"time"

	"github.com/learncodes/mynote-sync/internal/domain"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// NoteRecord is the wire form of a single note inside the backup document.
// Timestamps travel as epoch milliseconds; image paths as a comma separated
// string and checklist items as an embedded JSON string, matching the stored
// column encodings so a document round-trips byte-stable.
// NoteRecord 是备份文档中单条笔记的线上形态。
// 时间戳以毫秒时间戳传输；图片路径为逗号分隔字符串，清单条目为嵌入式
// JSON 字符串，与存储列编码一致，保证文档往返稳定。
type NoteRecord struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	CreatedAt      int64  `json:"createdAt"`
	UpdatedAt      int64  `json:"updatedAt"`
	Color          int64  `json:"color"`
	Category       string `json:"category"`
	IsArchived     bool   `json:"isArchived"`
	IsTrashed      bool   `json:"isTrashed"`
	IsLocked       bool   `json:"isLocked"`
	IsPinned       bool   `json:"isPinned"`
	ImagePaths     string `json:"imagePaths"`
	ChecklistItems string `json:"checklistItems"`
}

// CategoryRecord 备份文档中单个分类的线上形态
type CategoryRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     int64  `json:"color"`
	CreatedAt int64  `json:"createdAt"`
}

// BackupDocument 备份文档：一次备份的完整快照，单个 JSON 文档
type BackupDocument struct {
	Notes      []NoteRecord     `json:"notes"`
	Categories []CategoryRecord `json:"categories"`
}

// NewBackupDocument 从领域快照构造备份文档
func NewBackupDocument(snapshot *domain.Snapshot) *BackupDocument {
	doc := &BackupDocument{
		Notes:      make([]NoteRecord, 0, len(snapshot.Notes)),
		Categories: make([]CategoryRecord, 0, len(snapshot.Categories)),
	}
	for _, note := range snapshot.Notes {
		record := NoteRecord{
			ID:         note.ID,
			Title:      note.Title,
			CreatedAt:  note.CreatedAt.UnixMilli(),
			UpdatedAt:  note.UpdatedAt.UnixMilli(),
			Color:      note.Color,
			Category:   note.Category,
			IsArchived: note.IsArchived,
			IsTrashed:  note.IsTrashed,
			IsLocked:   note.IsLocked,
			IsPinned:   note.IsPinned,
			ImagePaths: domain.JoinImagePaths(note.ImagePaths),
		}
		if note.Content.Kind == domain.ContentChecklist {
			record.ChecklistItems = domain.EncodeChecklist(note.Content.Checklist)
		} else {
			record.Content = note.Content.Text
		}
		doc.Notes = append(doc.Notes, record)
	}
	for _, category := range snapshot.Categories {
		doc.Categories = append(doc.Categories, CategoryRecord{
			ID:        category.ID,
			Name:      category.Name,
			Color:     category.Color,
			CreatedAt: category.CreatedAt.UnixMilli(),
		})
	}
	return doc
}

// Snapshot 将备份文档还原为领域快照
func (doc *BackupDocument) Snapshot() *domain.Snapshot {
	snapshot := &domain.Snapshot{
		Notes:      make([]*domain.Note, 0, len(doc.Notes)),
		Categories: make([]*domain.Category, 0, len(doc.Categories)),
	}
	for _, record := range doc.Notes {
		note := &domain.Note{
			ID:         record.ID,
			Title:      record.Title,
			Color:      record.Color,
			Category:   record.Category,
			IsArchived: record.IsArchived,
			IsTrashed:  record.IsTrashed,
			IsLocked:   record.IsLocked,
			IsPinned:   record.IsPinned,
			ImagePaths: domain.SplitImagePaths(record.ImagePaths),
			CreatedAt:  time.UnixMilli(record.CreatedAt),
			UpdatedAt:  time.UnixMilli(record.UpdatedAt),
		}
		if record.ChecklistItems != "" {
			note.Content = domain.ChecklistContent(domain.DecodeChecklist(record.ChecklistItems))
		} else {
			note.Content = domain.TextContent(record.Content)
		}
		snapshot.Notes = append(snapshot.Notes, note)
	}
	for _, record := range doc.Categories {
		snapshot.Categories = append(snapshot.Categories, &domain.Category{
			ID:        record.ID,
			Name:      record.Name,
			Color:     record.Color,
			CreatedAt: time.UnixMilli(record.CreatedAt),
		})
	}
	return snapshot
}

// EncodeBackup 将领域快照序列化为备份文档 JSON 字节
func EncodeBackup(snapshot *domain.Snapshot) ([]byte, error) {
	data, err := sonic.Marshal(NewBackupDocument(snapshot))
	if err != nil {
		return nil, errors.Wrap(err, "encode backup document")
	}
	return data, nil
}

// DecodeBackup deserializes backup document bytes. Empty or
// whitespace-only input decodes to an empty snapshot; malformed JSON is a
// hard error, never a partial result. The wire format carries no content
// kind discriminator, so a checklist note with zero items encodes as an
// empty checklistItems string and comes back as an empty text note.
// DecodeBackup 反序列化备份文档字节。空或纯空白输入解码为空快照；
// 畸形 JSON 是硬错误，绝不产生部分结果。线格式没有内容类型判别字段，
// 零条目的清单笔记编码为空 checklistItems 字符串，回读为空文本笔记。
func DecodeBackup(data []byte) (*domain.Snapshot, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return &domain.Snapshot{}, nil
	}
	var doc BackupDocument
	if err := sonic.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode backup document")
	}
	return doc.Snapshot(), nil
}
