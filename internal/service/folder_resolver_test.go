package service

import (
	"context"
	"sync"
	"testing"

	"github.com/learncodes/mynote-sync/pkg/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFolderResolver_CreatesWhenAbsent(t *testing.T) {
	provider := newMockProvider()
	resolver := NewFolderResolver(provider, "NoteAppBackup", zap.NewNop())
	ctx := context.Background()

	id, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, provider.folders, 1)
	assert.Equal(t, "NoteAppBackup", provider.folders[0].Name)

	// 会话内缓存：再次解析不发起远端请求
	calls := provider.listCalls
	again, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, again)
	assert.Equal(t, calls, provider.listCalls)
}

func TestFolderResolver_ReusesExisting(t *testing.T) {
	provider := newMockProvider()
	existing, err := provider.CreateFolder(context.Background(), "NoteAppBackup")
	require.NoError(t, err)

	resolver := NewFolderResolver(provider, "NoteAppBackup", zap.NewNop())
	id, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, existing.ID, id)
	assert.Len(t, provider.folders, 1)
}

func TestFolderResolver_DuplicatesPickFirst(t *testing.T) {
	provider := newMockProvider()
	ctx := context.Background()
	first, err := provider.CreateFolder(ctx, "NoteAppBackup")
	require.NoError(t, err)
	_, err = provider.CreateFolder(ctx, "NoteAppBackup")
	require.NoError(t, err)

	// 历史竞态产生的重复文件夹：确定性地取第一个，不纠正
	resolver := NewFolderResolver(provider, "NoteAppBackup", zap.NewNop())
	id, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)
}

func TestFolderResolver_InvalidateForcesReresolve(t *testing.T) {
	provider := newMockProvider()
	resolver := NewFolderResolver(provider, "NoteAppBackup", zap.NewNop())
	ctx := context.Background()

	_, err := resolver.Resolve(ctx)
	require.NoError(t, err)

	resolver.Invalidate()
	calls := provider.listCalls
	_, err = resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Greater(t, provider.listCalls, calls)
}

func TestFolderResolver_ErrorNotCached(t *testing.T) {
	provider := newMockProvider()
	provider.failWith = remote.ErrAuth
	resolver := NewFolderResolver(provider, "NoteAppBackup", zap.NewNop())
	ctx := context.Background()

	_, err := resolver.Resolve(ctx)
	require.Error(t, err)

	// 失败不落缓存，下次调用重新尝试
	provider.failWith = nil
	id, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestFolderResolver_ConcurrentResolve(t *testing.T) {
	provider := newMockProvider()
	resolver := NewFolderResolver(provider, "NoteAppBackup", zap.NewNop())
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := resolver.Resolve(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			ids[i] = id
		}(i)
	}
	wg.Wait()

	// 并发解析合并为一次创建，所有调用方得到同一标识
	require.Len(t, provider.folders, 1)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}
