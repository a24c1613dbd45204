// Package remote defines the provider contract for the private cloud backup area
// Package remote 定义私有云备份区域的存储提供方契约
package remote

import (
	"context"
	"errors"
	"time"
)

type Type = string

const Drive Type = "drive"
const WebDAV Type = "webdav"

var ProviderTypeMap = map[Type]bool{
	Drive:  true,
	WebDAV: true,
}

// Sentinel errors used for classification at the sync boundary
// 用于同步边界错误分类的哨兵错误
var (
	// ErrNotFound remote file or folder is absent
	// ErrNotFound 远端文件或文件夹不存在
	ErrNotFound = errors.New("remote: not found")

	// ErrAuth session invalid or expired
	// ErrAuth 会话无效或已过期
	ErrAuth = errors.New("remote: unauthorized")
)

// IsNotFound reports whether err means the remote object is absent
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuth reports whether err means the credential was rejected
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

// Entry is a provider-assigned remote object identity
// Entry 提供方分配的远端对象标识
type Entry struct {
	ID           string
	Name         string
	ModifiedTime time.Time
}

// Provider is the minimal surface the sync engine needs from a remote store.
// FindFile returns (nil, nil) when the file is absent; absence is state, not failure.
// Provider 是同步引擎需要远端存储提供的最小能力面。
// FindFile 在文件不存在时返回 (nil, nil)；不存在是一种状态而非失败。
type Provider interface {
	// ListFolders lists folders in the app-private namespace matching name
	// ListFolders 列出应用私有空间内匹配名称的文件夹
	ListFolders(ctx context.Context, name string) ([]*Entry, error)

	// CreateFolder creates a folder in the app-private namespace
	// CreateFolder 在应用私有空间创建文件夹
	CreateFolder(ctx context.Context, name string) (*Entry, error)

	// FindFile locates a file by name inside a folder
	// FindFile 在文件夹内按名称查找文件
	FindFile(ctx context.Context, folderID string, name string) (*Entry, error)

	// Create writes a new file inside a folder
	// Create 在文件夹内写入新文件
	Create(ctx context.Context, folderID string, name string, content []byte) (*Entry, error)

	// Update replaces the content of an existing file in place
	// Update 原位替换已存在文件的内容
	Update(ctx context.Context, fileID string, content []byte) error

	// Download reads the full content of a file
	// Download 读取文件全部内容
	Download(ctx context.Context, fileID string) ([]byte, error)

	// Delete removes a file; deleting an absent file returns ErrNotFound
	// Delete 删除文件；删除不存在的文件返回 ErrNotFound
	Delete(ctx context.Context, fileID string) error
}
