package dao

import (
	"context"
	"testing"
	"time"

	"github.com/learncodes/mynote-sync/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategory(name string, color int64) *domain.Category {
	return &domain.Category{
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}
}

func TestCategoryRepository_CreateAndGet(t *testing.T) {
	d := newTestDao(t)
	repo := NewCategoryRepository(d)
	ctx := context.Background()

	created, err := repo.Create(ctx, testCategory("Work", 0xFF2196F3))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := repo.GetByName(ctx, "Work")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, int64(0xFF2196F3), got.Color)

	// 名称区分大小写
	got, err = repo.GetByName(ctx, "work")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Work", got.Name)
}

func TestCategoryRepository_UniqueName(t *testing.T) {
	d := newTestDao(t)
	repo := NewCategoryRepository(d)
	ctx := context.Background()

	_, err := repo.Create(ctx, testCategory("Ideas", 0xFFFFEB3B))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testCategory("Ideas", 0xFF000000))
	assert.Error(t, err)
}

func TestCategoryRepository_ListAll(t *testing.T) {
	d := newTestDao(t)
	repo := NewCategoryRepository(d)
	ctx := context.Background()

	for _, name := range []string{"Work", "General", "Personal"} {
		_, err := repo.Create(ctx, testCategory(name, 0))
		require.NoError(t, err)
	}

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "General", got[0].Name)
	assert.Equal(t, "Personal", got[1].Name)
	assert.Equal(t, "Work", got[2].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCategoryRepository_DeleteWithReassign(t *testing.T) {
	d := newTestDao(t)
	categories := NewCategoryRepository(d)
	notes := NewNoteRepository(d)
	ctx := context.Background()

	work, err := categories.Create(ctx, testCategory("Work", 0))
	require.NoError(t, err)
	_, err = categories.Create(ctx, testCategory(domain.DefaultCategoryName, 0))
	require.NoError(t, err)

	report := testNote("report")
	report.Category = "Work"
	_, err = notes.Create(ctx, report)
	require.NoError(t, err)

	diary := testNote("diary")
	diary.Category = "Personal"
	_, err = notes.Create(ctx, diary)
	require.NoError(t, err)

	err = categories.DeleteWithReassign(ctx, work, domain.DefaultCategoryName)
	require.NoError(t, err)

	// 分类行已删除
	got, err := categories.GetByName(ctx, "Work")
	require.NoError(t, err)
	assert.Nil(t, got)

	// 引用该分类的笔记被改写为兜底分类，其余笔记不受影响
	all, err := notes.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, n := range all {
		switch n.Title {
		case "report":
			assert.Equal(t, domain.DefaultCategoryName, n.Category)
		case "diary":
			assert.Equal(t, "Personal", n.Category)
		}
	}
}
