package webdav

import (
	"context"
	"os"
	"path"

	"github.com/learncodes/mynote-sync/pkg/remote"

	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"
)

// WebDAV has no opaque object ids; a folder or file identity is its remote path.
// WebDAV 没有不透明对象 ID；文件夹或文件的标识就是其远端路径。

// ListFolders 列出根路径下匹配名称的文件夹
func (w *WebDAV) ListFolders(ctx context.Context, name string) ([]*remote.Entry, error) {
	infos, err := w.Client.ReadDir(w.Config.Root)
	if err != nil {
		if gowebdav.IsErrNotFound(err) {
			return nil, nil
		}
		return nil, wrapErr(err)
	}

	var entries []*remote.Entry
	for _, info := range infos {
		if !info.IsDir() || info.Name() != name {
			continue
		}
		entries = append(entries, &remote.Entry{
			ID:           path.Join(w.Config.Root, info.Name()),
			Name:         info.Name(),
			ModifiedTime: info.ModTime(),
		})
	}
	return entries, nil
}

// CreateFolder 在根路径下创建文件夹
func (w *WebDAV) CreateFolder(ctx context.Context, name string) (*remote.Entry, error) {
	folderPath := path.Join(w.Config.Root, name)
	if err := w.Client.MkdirAll(folderPath, os.ModePerm); err != nil {
		return nil, wrapErr(err)
	}
	return &remote.Entry{ID: folderPath, Name: name}, nil
}

// FindFile 在文件夹内按名称查找文件，不存在时返回 (nil, nil)
func (w *WebDAV) FindFile(ctx context.Context, folderID string, name string) (*remote.Entry, error) {
	filePath := path.Join(folderID, name)
	info, err := w.Client.Stat(filePath)
	if err != nil {
		if gowebdav.IsErrNotFound(err) {
			return nil, nil
		}
		return nil, wrapErr(err)
	}
	return &remote.Entry{
		ID:           filePath,
		Name:         name,
		ModifiedTime: info.ModTime(),
	}, nil
}

// Create 在文件夹内写入新文件
func (w *WebDAV) Create(ctx context.Context, folderID string, name string, content []byte) (*remote.Entry, error) {
	filePath := path.Join(folderID, name)
	if err := w.Client.Write(filePath, content, os.ModePerm); err != nil {
		return nil, wrapErr(err)
	}
	return &remote.Entry{ID: filePath, Name: name}, nil
}

// Update 原位替换文件内容
func (w *WebDAV) Update(ctx context.Context, fileID string, content []byte) error {
	if err := w.Client.Write(fileID, content, os.ModePerm); err != nil {
		return wrapErr(err)
	}
	return nil
}

// Download 读取文件全部内容
func (w *WebDAV) Download(ctx context.Context, fileID string) ([]byte, error) {
	content, err := w.Client.Read(fileID)
	if err != nil {
		return nil, wrapErr(err)
	}
	return content, nil
}

// wrapErr maps WebDAV failures to the sentinel classification
// wrapErr 将 WebDAV 错误映射到哨兵错误分类
func wrapErr(err error) error {
	if gowebdav.IsErrNotFound(err) {
		return errors.Wrap(remote.ErrNotFound, err.Error())
	}
	if gowebdav.IsErrCode(err, 401) || gowebdav.IsErrCode(err, 403) {
		return errors.Wrap(remote.ErrAuth, err.Error())
	}
	return errors.Wrap(err, "webdav")
}
