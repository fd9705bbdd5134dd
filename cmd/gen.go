package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"example.com/SshHostGen/global"
	"example.com/SshHostGen/internal/gen"
	"example.com/SshHostGen/pkg/config"
	"example.com/SshHostGen/pkg/logger"
	"example.com/SshHostGen/pkg/settings"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type GenOptions struct {
	HostsFile    string
	UpperFile    string
	SettingsFile string
}

// defaultGenOptions 输入文件默认放在可执行文件所在目录
func defaultGenOptions() *GenOptions {
	baseDir := "."
	if exe, err := os.Executable(); err == nil {
		baseDir = filepath.Dir(exe)
	}
	return &GenOptions{
		HostsFile:    filepath.Join(baseDir, "ssh-host.ini"),
		UpperFile:    filepath.Join(baseDir, "upper-case.ini"),
		SettingsFile: filepath.Join(baseDir, "shgen.yaml"),
	}
}

func NewCmdGen() *cobra.Command {
	o := defaultGenOptions()
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "生成启动脚本和 ssh 配置文件",
		Long: `读取 ssh-host.ini 和 upper-case.ini,
为每个主机生成 Tera Term 和 PuTTY 的启动批处理文件,
并汇总写出 ssh 客户端配置文件。
upper-case.ini 不存在时键名原样输出, ssh-host.ini 是必须的。`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(o)
		},
	}
	cmd.Flags().StringVar(&o.HostsFile, "hosts", o.HostsFile, "主机配置文件路径")
	cmd.Flags().StringVar(&o.UpperFile, "upper", o.UpperFile, "键名大小写修正文件路径")
	cmd.Flags().StringVar(&o.SettingsFile, "settings", o.SettingsFile, "输出路径配置文件")
	return cmd
}

// showProgress 进度条只在交互式环境且没开调试日志时显示, 避免跟日志输出混在一起
func showProgress(isTerminal bool, level slog.Level) bool {
	return isTerminal && level > slog.LevelDebug
}

func runGen(o *GenOptions) error {
	cfg, err := settings.Load(o.SettingsFile, filepath.Dir(o.HostsFile))
	if err != nil {
		return err
	}
	logger.Logger.Debug("输出路径配置",
		"tth", cfg.TeraTermOutDir, "pth", cfg.PuttyOutDir, "user_cfg", cfg.UserCfgFile)

	g := &gen.Generator{
		Store:    config.NewIniStore(o.HostsFile, o.UpperFile),
		Settings: cfg,
		Echo:     os.Stdout,
	}
	if showProgress(global.IsTerminal, logger.Logger.Level()) {
		bar := progressbar.Default(-1, "生成主机脚本")
		g.OnHost = func(alias string) {
			_ = bar.Add(1)
		}
		defer func() {
			_ = bar.Finish()
		}()
	}
	return g.Run()
}
