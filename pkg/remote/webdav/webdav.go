// Package webdav implements the remote provider over a WebDAV endpoint
// Package webdav 基于 WebDAV 端点实现远端存储提供方
package webdav

import (
	"github.com/studio-b12/gowebdav"
)

// Config 结构体用于存储 WebDAV 连接信息。
type Config struct {
	Endpoint string `yaml:"endpoint"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	// Root 应用私有命名空间在远端的根路径
	Root string `yaml:"root"`
}

// WebDAV 结构体表示 WebDAV 客户端。
type WebDAV struct {
	Client *gowebdav.Client
	Config *Config
}

// NewClient 创建一个新的 WebDAV 客户端实例。
func NewClient(conf *Config) (*WebDAV, error) {
	c := gowebdav.NewClient(conf.Endpoint, conf.User, conf.Password)
	if err := c.Connect(); err != nil {
		return nil, wrapErr(err)
	}

	return &WebDAV{
		Client: c,
		Config: conf,
	}, nil
}
