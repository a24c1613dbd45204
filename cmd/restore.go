package cmd

import (
	"context"
	"fmt"

	"github.com/learncodes/mynote-sync/global"
	internalApp "github.com/learncodes/mynote-sync/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	restoreEnv := new(syncFlags)

	var restoreCommand = &cobra.Command{
		Use:   "restore [-c config_file]",
		Short: "Replay the remote backup into the local store // 将远端备份回放到本地存储",
		Run: func(cmd *cobra.Command, args []string) {
			if err := loadConfig(restoreEnv.config); err != nil {
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

			result, err := app.SyncService.Restore(ctx)
			if err != nil {
				bootstrapLogger.Error("restore err", zap.Error(err))
				return
			}
			fmt.Printf("backup restored: %d notes, %d categories\n", result.Notes, result.Categories)
		},
	}

	rootCmd.AddCommand(restoreCommand)
	restoreCommand.Flags().StringVarP(&restoreEnv.config, "config", "c", "", "config file")
}
