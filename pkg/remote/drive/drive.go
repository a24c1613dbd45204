// Package drive implements the remote provider over the Google Drive appDataFolder
// Package drive 基于 Google Drive appDataFolder 实现远端存储提供方
package drive

import (
	"context"
	"strings"

	"github.com/learncodes/mynote-sync/pkg/remote"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"
const appDataSpace = "appDataFolder"

// Config 结构体用于存储 Drive 连接信息
type Config struct {
	// AccessToken 已获取的 OAuth2 访问令牌（drive.appdata 范围）
	AccessToken string
}

// Drive 结构体表示 Drive 客户端
type Drive struct {
	srv    *gdrive.Service
	config *Config
}

// NewClient 创建一个新的 Drive 客户端实例
func NewClient(ctx context.Context, conf *Config) (*Drive, error) {
	if conf == nil || conf.AccessToken == "" {
		return nil, remote.ErrAuth
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: conf.AccessToken})
	srv, err := gdrive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, errors.Wrap(err, "drive")
	}

	return &Drive{srv: srv, config: conf}, nil
}

// escapeQuery escapes single quotes and backslashes in Drive query literals
// escapeQuery 转义 Drive 查询字面量中的单引号和反斜杠
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
