package cmd

import (
	"example.com/SshHostGen/cmd/version"
	"github.com/spf13/cobra"
)

func printVersion() {
	version.PrintFullVersion()
}

func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Run: func(cmd *cobra.Command, args []string) {
			printVersion()
		},
	}
}
