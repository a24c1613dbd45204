package drive

import (
	"context"
)

// Delete 删除文件
func (d *Drive) Delete(ctx context.Context, fileID string) error {
	if err := d.srv.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return wrapErr(err)
	}
	return nil
}
