package global

import (
	"os"
	"path/filepath"

	"github.com/learncodes/mynote-sync/pkg/remote/webdav"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Server 服务器配置
type Server struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// DefaultContextTimeout 请求上下文超时（秒）
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"30"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"warn"`
	// File 日志文件路径
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// Database 数据库配置
type Database struct {
	// Type 数据库类型 (sqlite, mysql)
	Type string `yaml:"type" default:"sqlite"`
	// Path SQLite 数据库文件路径
	Path string `yaml:"path" default:"storage/database/db.sqlite3"`
	// UserName 用户名
	UserName string `yaml:"username"`
	// Password 密码
	Password string `yaml:"password"`
	// Host 主机
	Host string `yaml:"host"`
	// Name 数据库名
	Name string `yaml:"name"`
	// TablePrefix 表前缀
	TablePrefix string `yaml:"table-prefix"`
	// AutoMigrate 是否启用自动迁移
	AutoMigrate bool `yaml:"auto-migrate" default:"true"`
	// Charset 字符集
	Charset string `yaml:"charset" default:"utf8mb4"`
	// ParseTime 是否解析时间
	ParseTime bool `yaml:"parse-time" default:"true"`
	// MaxIdleConns 最大闲置连接数
	MaxIdleConns int `yaml:"max-idle-conns" default:"10"`
	// MaxOpenConns 最大打开连接数
	MaxOpenConns int `yaml:"max-open-conns" default:"100"`
}

// Security 安全配置
type Security struct {
	// AuthToken API 访问令牌，为空时放行所有请求
	AuthToken string `yaml:"auth-token"`
}

// Sync 云端同步配置
type Sync struct {
	// Provider 远端提供方类型 (drive, webdav)
	Provider string `yaml:"provider" default:"drive"`
	// FolderName 应用私有文件夹的固定名称
	FolderName string `yaml:"folder-name" default:"NoteAppBackup"`
	// FileName 备份文档的固定文件名
	FileName string `yaml:"file-name" default:"notes_backup.json"`
	// Account 已登录身份的展示标签（如邮箱）
	Account string `yaml:"account"`
	// AccessToken 外部凭证流程已获取的 bearer 令牌
	AccessToken string `yaml:"access-token"`
	// AutoSync 开启后在设置变更时触发一次即发即忘备份
	AutoSync bool `yaml:"auto-sync"`
	// AutoBackupCron 周期备份的 cron 表达式，为空则不调度
	AutoBackupCron string `yaml:"auto-backup-cron"`
	// WebDAV provider=webdav 时的连接配置
	WebDAV webdav.Config `yaml:"webdav"`
}

type config struct {
	// File 配置文件路径，不序列化
	File     string    `yaml:"-"`
	Server   Server    `yaml:"server"`
	Log      LogConfig `yaml:"log"`
	Database Database  `yaml:"database"`
	Security Security  `yaml:"security"`
	Sync     Sync      `yaml:"sync"`
}

var Config *config

// ConfigLoad loads the YAML config file, applying struct-tag defaults first
// ConfigLoad 加载 YAML 配置文件，先应用结构体标签默认值
func ConfigLoad(path string) (*config, error) {
	c := &config{}
	if err := defaults.Set(c); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	c.File = absPath

	Config = c
	return c, nil
}

// Save writes the current config back to the file it was loaded from
// Save 将当前配置写回其加载来源文件
func (c *config) Save() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(c.File, content, 0666)
}
