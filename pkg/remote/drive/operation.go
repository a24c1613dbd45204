package drive

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/learncodes/mynote-sync/pkg/remote"

	"github.com/pkg/errors"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

// ListFolders 列出 appDataFolder 下匹配名称的文件夹
func (d *Drive) ListFolders(ctx context.Context, name string) ([]*remote.Entry, error) {
	q := "name='" + escapeQuery(name) + "' and mimeType='" + folderMimeType + "'"
	result, err := d.srv.Files.List().
		Spaces(appDataSpace).
		Q(q).
		Fields("files(id, name, modifiedTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}

	var entries []*remote.Entry
	for _, f := range result.Files {
		entries = append(entries, toEntry(f))
	}
	return entries, nil
}

// CreateFolder 在 appDataFolder 下创建文件夹
func (d *Drive) CreateFolder(ctx context.Context, name string) (*remote.Entry, error) {
	folder := &gdrive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{appDataSpace},
	}
	created, err := d.srv.Files.Create(folder).
		Fields("id, name, modifiedTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}
	return toEntry(created), nil
}

// FindFile 在文件夹内按名称查找文件，不存在时返回 (nil, nil)
func (d *Drive) FindFile(ctx context.Context, folderID string, name string) (*remote.Entry, error) {
	q := "name='" + escapeQuery(name) + "' and '" + escapeQuery(folderID) + "' in parents"
	result, err := d.srv.Files.List().
		Spaces(appDataSpace).
		Q(q).
		Fields("files(id, name, modifiedTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}
	if len(result.Files) == 0 {
		return nil, nil
	}
	return toEntry(result.Files[0]), nil
}

// Create 在文件夹内创建新文件
func (d *Drive) Create(ctx context.Context, folderID string, name string, content []byte) (*remote.Entry, error) {
	meta := &gdrive.File{
		Name:    name,
		Parents: []string{folderID},
	}
	created, err := d.srv.Files.Create(meta).
		Media(bytes.NewReader(content), googleapi.ContentType("application/json")).
		Fields("id, name, modifiedTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}
	return toEntry(created), nil
}

// Update 原位替换文件内容
func (d *Drive) Update(ctx context.Context, fileID string, content []byte) error {
	_, err := d.srv.Files.Update(fileID, &gdrive.File{}).
		Media(bytes.NewReader(content), googleapi.ContentType("application/json")).
		Context(ctx).
		Do()
	if err != nil {
		return wrapErr(err)
	}
	return nil
}

// Download 读取文件全部内容
func (d *Drive) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := d.srv.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, wrapErr(err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "drive")
	}
	return content, nil
}

func toEntry(f *gdrive.File) *remote.Entry {
	mtime, _ := time.Parse(time.RFC3339, f.ModifiedTime)
	return &remote.Entry{
		ID:           f.Id,
		Name:         f.Name,
		ModifiedTime: mtime,
	}
}

// wrapErr maps Drive API failures to the sentinel classification
// wrapErr 将 Drive API 错误映射到哨兵错误分类
func wrapErr(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 401, 403:
			return errors.Wrap(remote.ErrAuth, gerr.Message)
		case 404:
			return errors.Wrap(remote.ErrNotFound, gerr.Message)
		}
	}
	return errors.Wrap(err, "drive")
}
