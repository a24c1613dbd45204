package global

import (
	"os"

	"github.com/learncodes/mynote-sync/pkg/fileurl"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerInit builds the main logger from LogConfig and installs it as global.Logger
// LoggerInit 根据日志配置构建主日志器并安装为 global.Logger
func LoggerInit(c LogConfig) error {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		level = zapcore.WarnLevel
	}

	var core zapcore.Core
	if c.Production {
		// Production 模式输出 JSON 到日志文件
		if err := fileurl.CreatePath(c.File, os.ModePerm); err != nil {
			return err
		}
		file, err := os.OpenFile(c.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			return err
		}
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		core = zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.Lock(file), level)
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)
	}

	Logger = zap.New(core, zap.AddCaller())
	return nil
}
