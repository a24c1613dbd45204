package service

import (
	"context"
	"testing"

	"github.com/learncodes/mynote-sync/internal/domain"
	"github.com/learncodes/mynote-sync/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockNoteRepo 基于内存 map 的笔记仓储
type mockNoteRepo struct {
	domain.NoteRepository
	notes  map[int64]*domain.Note
	nextID int64
}

func newMockNoteRepo() *mockNoteRepo {
	return &mockNoteRepo{notes: make(map[int64]*domain.Note)}
}

func (m *mockNoteRepo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	note, ok := m.notes[id]
	if !ok {
		return nil, nil
	}
	clone := *note
	return &clone, nil
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m.nextID++
	clone := *note
	clone.ID = m.nextID
	m.notes[clone.ID] = &clone
	return &clone, nil
}

func (m *mockNoteRepo) Save(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	clone := *note
	m.notes[clone.ID] = &clone
	if clone.ID > m.nextID {
		m.nextID = clone.ID
	}
	return &clone, nil
}

func (m *mockNoteRepo) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	clone := *note
	m.notes[clone.ID] = &clone
	return &clone, nil
}

func (m *mockNoteRepo) Delete(ctx context.Context, id int64) error {
	delete(m.notes, id)
	return nil
}

func (m *mockNoteRepo) DeleteTrashed(ctx context.Context) (int64, error) {
	var count int64
	for id, note := range m.notes {
		if note.IsTrashed {
			delete(m.notes, id)
			count++
		}
	}
	return count, nil
}

func (m *mockNoteRepo) ListAll(ctx context.Context) ([]*domain.Note, error) {
	notes := make([]*domain.Note, 0, len(m.notes))
	for id := int64(1); id <= m.nextID; id++ {
		if note, ok := m.notes[id]; ok {
			clone := *note
			notes = append(notes, &clone)
		}
	}
	return notes, nil
}

func (m *mockNoteRepo) CountActiveByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	for _, note := range m.notes {
		if note.Category == category && !note.IsTrashed {
			count++
		}
	}
	return count, nil
}

func newTestNoteService(repo *mockNoteRepo) *NoteService {
	return NewNoteService(repo, zap.NewNop())
}

func TestNoteService_SaveDefaults(t *testing.T) {
	repo := newMockNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	note, err := svc.Save(ctx, &domain.Note{
		Title:   "   ",
		Content: domain.TextContent("body"),
	})
	require.NoError(t, err)

	assert.NotZero(t, note.ID)
	assert.Equal(t, domain.DefaultTitle, note.Title)
	assert.Equal(t, int64(domain.DefaultNoteColor), note.Color)
	assert.Equal(t, domain.DefaultCategoryName, note.Category)
	assert.False(t, note.CreatedAt.IsZero())
	assert.False(t, note.UpdatedAt.IsZero())
}

func TestNoteService_SaveAssignsChecklistIDs(t *testing.T) {
	repo := newMockNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	note, err := svc.Save(ctx, &domain.Note{
		Title: "todo",
		Content: domain.ChecklistContent([]domain.ChecklistItem{
			{Text: "new item"},
			{ID: "keep-me", Text: "old item"},
		}),
	})
	require.NoError(t, err)

	require.Len(t, note.Content.Checklist, 2)
	assert.NotEmpty(t, note.Content.Checklist[0].ID)
	assert.Equal(t, "keep-me", note.Content.Checklist[1].ID)
}

func TestNoteService_SavePreservesFlagsAndCreatedAt(t *testing.T) {
	repo := newMockNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	created, err := svc.Save(ctx, &domain.Note{Title: "a", Content: domain.TextContent("v1")})
	require.NoError(t, err)

	_, err = svc.Pin(ctx, created.ID)
	require.NoError(t, err)

	// 内容编辑不改变生命周期标志和创建时间
	updated, err := svc.Save(ctx, &domain.Note{
		ID:      created.ID,
		Title:   "a",
		Content: domain.TextContent("v2"),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPinned)
	assert.Equal(t, created.CreatedAt.UnixMilli(), updated.CreatedAt.UnixMilli())
	assert.Equal(t, "v2", updated.Content.Text)

	_, err = svc.Save(ctx, &domain.Note{ID: 999, Title: "ghost", Content: domain.TextContent("")})
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)
}

func TestNoteService_BucketTransitions(t *testing.T) {
	repo := newMockNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	note, err := svc.Save(ctx, &domain.Note{Title: "n", Content: domain.TextContent("")})
	require.NoError(t, err)

	note, err = svc.Archive(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BucketArchived, note.Bucket())

	// 归档状态也可直接进回收站
	note, err = svc.Trash(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BucketTrashed, note.Bucket())

	// 回收站中归档/取消归档是空操作
	note, err = svc.Archive(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BucketTrashed, note.Bucket())
	note, err = svc.Unarchive(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, note.IsArchived)
	assert.True(t, note.IsTrashed)

	// 恢复回到活跃桶，不回到之前的归档状态
	note, err = svc.Restore(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BucketActive, note.Bucket())
	assert.False(t, note.IsArchived)
}

func TestNoteService_PinLockIndependentOfBucket(t *testing.T) {
	repo := newMockNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	note, err := svc.Save(ctx, &domain.Note{Title: "n", Content: domain.TextContent("")})
	require.NoError(t, err)

	_, err = svc.Trash(ctx, note.ID)
	require.NoError(t, err)

	// 置顶与锁定不受视图桶限制
	note, err = svc.Pin(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, note.IsPinned)

	note, err = svc.Lock(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, note.IsLocked)

	note, err = svc.Unlock(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, note.IsLocked)

	note, err = svc.Unpin(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, note.IsPinned)
}

func TestNoteService_PurgeAnyState(t *testing.T) {
	repo := newMockNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	note, err := svc.Save(ctx, &domain.Note{Title: "n", Content: domain.TextContent("")})
	require.NoError(t, err)

	// 未进回收站也可直接物理删除
	require.NoError(t, svc.Purge(ctx, note.ID))

	_, err = svc.Get(ctx, note.ID)
	assert.ErrorIs(t, err, code.ErrorNoteNotFound)

	assert.ErrorIs(t, svc.Purge(ctx, note.ID), code.ErrorNoteNotFound)
}

func TestNoteService_InsertUpsert(t *testing.T) {
	repo := newMockNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	// id 为零分配新标识
	fresh, err := svc.Insert(ctx, &domain.Note{Title: "imported", Content: domain.TextContent("")})
	require.NoError(t, err)
	assert.NotZero(t, fresh.ID)

	// 非零 id 原样落库，标志位保留
	archived, err := svc.Insert(ctx, &domain.Note{
		ID:         42,
		Title:      "from backup",
		Content:    domain.TextContent(""),
		IsArchived: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), archived.ID)
	assert.True(t, archived.IsArchived)

	// 重复应用同一记录幂等
	again, err := svc.Insert(ctx, &domain.Note{
		ID:         42,
		Title:      "from backup",
		Content:    domain.TextContent(""),
		IsArchived: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), again.ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestNoteService_EmptyTrash(t *testing.T) {
	repo := newMockNoteRepo()
	svc := newTestNoteService(repo)
	ctx := context.Background()

	keep, err := svc.Save(ctx, &domain.Note{Title: "keep", Content: domain.TextContent("")})
	require.NoError(t, err)
	gone, err := svc.Save(ctx, &domain.Note{Title: "gone", Content: domain.TextContent("")})
	require.NoError(t, err)
	_, err = svc.Trash(ctx, gone.ID)
	require.NoError(t, err)

	count, err := svc.EmptyTrash(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = svc.Get(ctx, keep.ID)
	assert.NoError(t, err)
}
