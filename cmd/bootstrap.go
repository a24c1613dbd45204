package cmd

import (
	"os"
	"strings"

	"github.com/learncodes/mynote-sync/global"
	"github.com/learncodes/mynote-sync/pkg/fileurl"
	"github.com/learncodes/mynote-sync/pkg/util"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bootstrapLogger 启动阶段日志器
// 用于在主日志器初始化之前记录启动过程中的日志
var bootstrapLogger *zap.Logger

func init() {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	consoleWriter := zapcore.Lock(os.Stderr)

	level := zapcore.InfoLevel
	if os.Getenv("DEBUG") != "" {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(consoleEncoder, consoleWriter, level)
	bootstrapLogger = zap.New(core, zap.AddCaller())
}

// loadConfig resolves the config file (creating a default one with a random
// auth token when none exists), loads it and initializes the main logger.
// loadConfig 解析配置文件（不存在时以随机令牌生成默认配置），
// 加载后初始化主日志器。
func loadConfig(path string) error {
	if path == "" {
		switch {
		case fileurl.IsExist("config/config-dev.yaml"):
			path = "config/config-dev.yaml"
		case fileurl.IsExist("config.yaml"):
			path = "config.yaml"
		case fileurl.IsExist("config/config.yaml"):
			path = "config/config.yaml"
		default:
			bootstrapLogger.Warn("config file not found, creating default config")
			path = "config/config.yaml"

			content := strings.Replace(configDefault, "mynote-sync-Auth-Token", util.GetRandomString(32), 1)

			if err := fileurl.CreatePath(path, os.ModePerm); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(content), 0666); err != nil {
				return err
			}
			bootstrapLogger.Info("config file auto created", zap.String("path", path))
		}
	}

	if _, err := global.ConfigLoad(path); err != nil {
		return err
	}
	if err := global.LoggerInit(global.Config.Log); err != nil {
		return err
	}
	return nil
}
