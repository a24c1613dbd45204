package dto

import (
	"testing"
	"time"

	"github.com/learncodes/mynote-sync/internal/domain"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackup_RoundTrip(t *testing.T) {
	created := time.UnixMilli(1700000000000)
	updated := time.UnixMilli(1700000060000)

	snapshot := &domain.Snapshot{
		Notes: []*domain.Note{
			{
				ID:        1,
				Title:     "text note",
				Content:   domain.TextContent("hello"),
				Color:     domain.DefaultNoteColor,
				Category:  "General",
				IsPinned:  true,
				CreatedAt: created,
				UpdatedAt: updated,
			},
			{
				ID: 2,
				Content: domain.ChecklistContent([]domain.ChecklistItem{
					{ID: "a", Text: "one", IsChecked: true},
				}),
				Category:   "Work",
				IsArchived: true,
				ImagePaths: []string{"/img/a.png"},
				CreatedAt:  created,
				UpdatedAt:  updated,
			},
		},
		Categories: []*domain.Category{
			{ID: 1, Name: "General", Color: 0xFF6200EE, CreatedAt: created},
			{ID: 2, Name: "Work", Color: 0xFF2196F3, CreatedAt: created},
		},
	}

	data, err := EncodeBackup(snapshot)
	require.NoError(t, err)

	got, err := DecodeBackup(data)
	require.NoError(t, err)
	require.Len(t, got.Notes, 2)
	require.Len(t, got.Categories, 2)

	assert.Equal(t, "text note", got.Notes[0].Title)
	assert.Equal(t, domain.ContentText, got.Notes[0].Content.Kind)
	assert.Equal(t, "hello", got.Notes[0].Content.Text)
	assert.True(t, got.Notes[0].IsPinned)
	assert.Equal(t, updated.UnixMilli(), got.Notes[0].UpdatedAt.UnixMilli())

	assert.Equal(t, domain.ContentChecklist, got.Notes[1].Content.Kind)
	require.Len(t, got.Notes[1].Content.Checklist, 1)
	assert.Equal(t, "one", got.Notes[1].Content.Checklist[0].Text)
	assert.Equal(t, []string{"/img/a.png"}, got.Notes[1].ImagePaths)

	assert.Equal(t, "General", got.Categories[0].Name)
	assert.Equal(t, int64(0xFF2196F3), got.Categories[1].Color)
}

func TestBackup_WireFields(t *testing.T) {
	snapshot := &domain.Snapshot{
		Notes: []*domain.Note{
			{
				ID:        7,
				Title:     "plain",
				Content:   domain.TextContent("body"),
				Category:  "General",
				UpdatedAt: time.UnixMilli(1700000000000),
			},
		},
	}

	data, err := EncodeBackup(snapshot)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, sonic.Unmarshal(data, &raw))

	notes, ok := raw["notes"].([]any)
	require.True(t, ok)
	require.Len(t, notes, 1)

	note := notes[0].(map[string]any)
	// 文本笔记的清单字段编码为空字符串，而不是 null 或缺失
	assert.Equal(t, "", note["checklistItems"])
	assert.Equal(t, "", note["imagePaths"])
	assert.Equal(t, "body", note["content"])
	assert.Equal(t, float64(1700000000000), note["updatedAt"])

	// 无分类时仍输出空数组
	categories, ok := raw["categories"].([]any)
	require.True(t, ok)
	assert.Empty(t, categories)
}

func TestDecodeBackup_Empty(t *testing.T) {
	for _, input := range [][]byte{nil, []byte(""), []byte("   \n")} {
		got, err := DecodeBackup(input)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsEmpty())
	}

	// 字段缺失的文档解码为空快照，不报错
	got, err := DecodeBackup([]byte("{}"))
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestDecodeBackup_Malformed(t *testing.T) {
	for _, input := range [][]byte{
		[]byte("{not json"),
		[]byte(`{"notes": "oops"}`),
	} {
		_, err := DecodeBackup(input)
		assert.Error(t, err)
	}
}

func TestDecodeBackup_CorruptChecklistDegrades(t *testing.T) {
	doc := []byte(`{"notes":[{"id":1,"title":"t","checklistItems":"{broken","updatedAt":1}],"categories":[]}`)

	got, err := DecodeBackup(doc)
	require.NoError(t, err)
	require.Len(t, got.Notes, 1)
	// 清单负载损坏只影响该清单，退化为空清单而非整文档失败
	assert.Equal(t, domain.ContentChecklist, got.Notes[0].Content.Kind)
	assert.Empty(t, got.Notes[0].Content.Checklist)
}

// 线格式没有内容类型判别字段：零条目的清单笔记回读为空文本笔记
func TestBackup_EmptyChecklistDecodesAsText(t *testing.T) {
	snapshot := &domain.Snapshot{
		Notes: []*domain.Note{
			{
				ID:      7,
				Title:   "todo",
				Content: domain.ChecklistContent(nil),
			},
		},
	}

	data, err := EncodeBackup(snapshot)
	require.NoError(t, err)

	var doc BackupDocument
	require.NoError(t, sonic.Unmarshal(data, &doc))
	require.Len(t, doc.Notes, 1)
	assert.Equal(t, "", doc.Notes[0].ChecklistItems)

	decoded, err := DecodeBackup(data)
	require.NoError(t, err)
	require.Len(t, decoded.Notes, 1)
	assert.Equal(t, domain.ContentText, decoded.Notes[0].Content.Kind)
	assert.Empty(t, decoded.Notes[0].Content.Text)
	assert.Empty(t, decoded.Notes[0].Content.Checklist)
}
