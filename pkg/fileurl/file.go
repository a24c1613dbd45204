// Package fileurl provides file path helpers
// Package fileurl 提供文件路径辅助函数
package fileurl

import (
	"os"
	"path/filepath"
)

// IsExist determines if a file or folder exists
// IsExist 判断文件或文件夹是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates the parent directory chain for the given destination
// CreatePath 为给定目标创建父目录链
func CreatePath(dst string, perm os.FileMode) error {
	dir := filepath.Dir(dst)
	if IsExist(dir) {
		return nil
	}
	return os.MkdirAll(dir, perm)
}
