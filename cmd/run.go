package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/learncodes/mynote-sync/global"
	internalApp "github.com/learncodes/mynote-sync/internal/app"
	"github.com/learncodes/mynote-sync/internal/routers"
	"github.com/learncodes/mynote-sync/internal/task"
	"github.com/learncodes/mynote-sync/pkg/convert"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

type runFlags struct {
	dir    string // 项目根目录
	port   string // 启动端口
	config string // 指定要使用的配置文件路径
}

func init() {
	runEnv := new(runFlags)

	var runCommand = &cobra.Command{
		Use:   "run [-c config_file] [-d working_dir] [-p port]",
		Short: "Run service",
		Run: func(cmd *cobra.Command, args []string) {
			if len(runEnv.dir) > 0 {
				if err := os.Chdir(runEnv.dir); err != nil {
					bootstrapLogger.Error("failed to change the current working directory", zap.Error(err))
					return
				}
				bootstrapLogger.Info("working directory changed", zap.String("dir", runEnv.dir))
			}

			if err := loadConfig(runEnv.config); err != nil {
				bootstrapLogger.Error("config load err", zap.Error(err))
				return
			}

			gin.SetMode(global.Config.Server.RunMode)
			if global.Config.Server.RunMode == gin.DebugMode {
				global.Dump(global.Config.Server, global.Config.Database)
			}

			logger := global.Log()
			ctx := context.Background()

			app, err := internalApp.NewApp(ctx, logger)
			if err != nil {
				bootstrapLogger.Error("app container init err", zap.Error(err))
				return
			}
			defer app.Close()

			port := global.Config.Server.HttpPort
			if len(runEnv.port) > 0 {
				if _, err := convert.StrTo(runEnv.port).Int(); err != nil {
					bootstrapLogger.Error("invalid port flag", zap.String("port", runEnv.port))
					return
				}
				port = ":" + runEnv.port
			}

			router := routers.NewRouter(app)
			server := &http.Server{
				Addr:           port,
				Handler:        router,
				ReadTimeout:    time.Duration(global.Config.Server.ReadTimeout) * time.Second,
				WriteTimeout:   time.Duration(global.Config.Server.WriteTimeout) * time.Second,
				MaxHeaderBytes: 1 << 20,
			}

			taskManager := task.NewManager(app, logger)
			if err := taskManager.RegisterTasks(); err != nil {
				logger.Error("task register err", zap.Error(err))
				return
			}
			taskManager.Start()

			go func() {
				logger.Info("http server starting",
					zap.String("service", global.Name),
					zap.String("addr", port))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal("http server err", zap.Error(err))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			logger.Info("received shutdown signal, initiating graceful shutdown")

			shutdownCtx, cancel := context.WithTimeout(ctx, DefaultShutdownTimeout)
			defer cancel()

			<-taskManager.Stop().Done()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("http server shutdown err", zap.Error(err))
				return
			}
			logger.Info("service has been shut down gracefully")
		},
	}

	rootCmd.AddCommand(runCommand)
	fs := runCommand.Flags()
	fs.StringVarP(&runEnv.dir, "dir", "d", "", "run dir")
	fs.StringVarP(&runEnv.port, "port", "p", "", "run port")
	fs.StringVarP(&runEnv.config, "config", "c", "", "config file")
}
