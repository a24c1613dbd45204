package cmd

import (
	"context"
	"fmt"

	"github.com/learncodes/mynote-sync/global"
	internalApp "github.com/learncodes/mynote-sync/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type syncFlags struct {
	config string
}

func init() {
	backupEnv := new(syncFlags)

	var backupCommand = &cobra.Command{
		Use:   "backup [-c config_file]",
		Short: "Upload a full snapshot to the remote backup // 上传全量快照到远端备份",
		Run: func(cmd *cobra.Command, args []string) {
			if err := loadConfig(backupEnv.config); err != nil {
				bootstrapLogger.Error("config load err", zap.Error(err))
				return
			}

			ctx := context.Background()
			app, err := internalApp.NewApp(ctx, global.Log())
			if err != nil {
				bootstrapLogger.Error("app container init err", zap.Error(err))
				return
			}
			defer app.Close()

			result, err := app.SyncService.Backup(ctx)
			if err != nil {
				bootstrapLogger.Error("backup err", zap.Error(err))
				return
			}
			fmt.Printf("backup uploaded: %d notes, %d categories\n", result.Notes, result.Categories)
		},
	}

	rootCmd.AddCommand(backupCommand)
	backupCommand.Flags().StringVarP(&backupEnv.config, "config", "c", "", "config file")
}
