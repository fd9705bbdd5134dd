package cmd

import (
	"os"

	"example.com/SshHostGen/pkg/logger"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shgen [command] [flags]",
	Short: "shgen 根据 ssh-host.ini 生成终端启动脚本和 ssh 客户端配置",
	Long: `shgen 使用 ssh-host.ini 保存 ssh 主机连接信息,
为每个主机生成 Tera Term 和 PuTTY 的启动批处理文件,
并汇总写出 ssh 客户端配置文件(覆盖前自动备份)。
不带子命令直接运行等价于执行 gen。`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		versionFlag, _ := cmd.Flags().GetBool("version")
		if versionFlag {
			printVersion()
			return nil
		}
		return runGen(defaultGenOptions())
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debugFlag, _ := cmd.Flags().GetBool("debug")
		if debugFlag {
			logger.Logger.SetLogLevel("debug")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "显示版本信息")
	rootCmd.PersistentFlags().Bool("debug", false, "开启调试模式")

	rootCmd.AddCommand(NewCmdGen())
	rootCmd.AddCommand(NewCmdVersion())
}
