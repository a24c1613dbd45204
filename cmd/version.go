package cmd

import (
	"fmt"

	"github.com/learncodes/mynote-sync/global"
	"github.com/learncodes/mynote-sync/internal/app"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print out version info and exit. // 打印版本信息并退出。",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s ( Git:%s ) BuildTime:%s\n", global.Name, app.Version, app.GitTag, app.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
