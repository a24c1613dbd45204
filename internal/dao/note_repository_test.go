package dao

import (
	"context"
	"testing"
	"time"

	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// newTestDao 基于内存 sqlite 构建测试用 Dao
func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db, ""))

	return New(db)
}

func testNote(title string) *domain.Note {
	now := time.Now()
	return &domain.Note{
		Title:     title,
		Content:   domain.TextContent("content of " + title),
		Color:     domain.DefaultNoteColor,
		Category:  domain.DefaultCategoryName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestNoteRepository_CreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, testNote("shopping"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "shopping", created.Title)
	assert.Equal(t, domain.ContentText, created.Content.Kind)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "content of shopping", got.Content.Text)

	// 不存在的ID返回 (nil, nil)
	missing, err := repo.GetByID(ctx, 99999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNoteRepository_ChecklistRoundTrip(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	note := testNote("todo")
	note.Content = domain.ChecklistContent([]domain.ChecklistItem{
		{ID: "a", Text: "milk", IsChecked: false},
		{ID: "b", Text: "eggs", IsChecked: true},
	})
	note.ImagePaths = []string{"/img/1.png", "/img/2.png"}

	created, err := repo.Create(ctx, note)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ContentChecklist, got.Content.Kind)
	require.Len(t, got.Content.Checklist, 2)
	assert.Equal(t, "milk", got.Content.Checklist[0].Text)
	assert.True(t, got.Content.Checklist[1].IsChecked)
	assert.Equal(t, []string{"/img/1.png", "/img/2.png"}, got.ImagePaths)
}

func TestNoteRepository_SaveUpsert(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, testNote("draft"))
	require.NoError(t, err)

	// 已有ID的保存覆盖整行
	created.Title = "final"
	created.IsPinned = true
	_, err = repo.Save(ctx, created)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.True(t, got.IsPinned)

	// 指定不存在的ID则插入该ID
	fresh := testNote("imported")
	fresh.ID = 42
	_, err = repo.Save(ctx, fresh)
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "imported", got.Title)
}

func TestNoteRepository_ListByBucket(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	active := testNote("active")
	active.UpdatedAt = base

	pinned := testNote("pinned")
	pinned.IsPinned = true
	pinned.UpdatedAt = base.Add(-time.Hour)

	archived := testNote("archived")
	archived.IsArchived = true
	archived.UpdatedAt = base

	trashed := testNote("trashed")
	trashed.IsArchived = true
	trashed.IsTrashed = true
	trashed.UpdatedAt = base

	for _, n := range []*domain.Note{active, pinned, archived, trashed} {
		_, err := repo.Create(ctx, n)
		require.NoError(t, err)
	}

	// 回收站优先于归档：同时置位的笔记只出现在 trashed 桶
	got, err := repo.ListByBucket(ctx, domain.BucketTrashed)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "trashed", got[0].Title)

	got, err = repo.ListByBucket(ctx, domain.BucketArchived)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "archived", got[0].Title)

	// active 桶内 pinned 靠前，即使更新时间更早
	got, err = repo.ListByBucket(ctx, domain.BucketActive)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "pinned", got[0].Title)
	assert.Equal(t, "active", got[1].Title)
}

func TestNoteRepository_Search(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	groceries := testNote("Grocery List")
	groceries.Content = domain.TextContent("Apples and BANANAS")

	meeting := testNote("Meeting")
	meeting.Content = domain.TextContent("quarterly planning")

	binned := testNote("banana bread recipe")
	binned.IsTrashed = true

	for _, n := range []*domain.Note{groceries, meeting, binned} {
		_, err := repo.Create(ctx, n)
		require.NoError(t, err)
	}

	// 大小写不敏感，标题和正文均参与匹配，回收站排除
	got, err := repo.Search(ctx, "banana")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Grocery List", got[0].Title)

	got, err = repo.Search(ctx, "GROCERY")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.Search(ctx, "nothing-matches")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNoteRepository_DeleteTrashed(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx := context.Background()

	keep := testNote("keep")
	gone1 := testNote("gone1")
	gone1.IsTrashed = true
	gone2 := testNote("gone2")
	gone2.IsTrashed = true

	for _, n := range []*domain.Note{keep, gone1, gone2} {
		_, err := repo.Create(ctx, n)
		require.NoError(t, err)
	}

	count, err := repo.DeleteTrashed(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keep", all[0].Title)

	// 空回收站删除零行，不报错
	count, err = repo.DeleteTrashed(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNoteRepository_Watch(t *testing.T) {
	d := newTestDao(t)
	repo := NewNoteRepository(d)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := d.Subscribe(ctx)

	_, err := repo.Create(ctx, testNote("trigger"))
	require.NoError(t, err)

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("no change notification after create")
	}
}
