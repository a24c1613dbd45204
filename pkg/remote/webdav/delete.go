package webdav

import (
	"context"
)

// Delete 删除文件
func (w *WebDAV) Delete(ctx context.Context, fileID string) error {
	if err := w.Client.Remove(fileID); err != nil {
		return wrapErr(err)
	}
	return nil
}
