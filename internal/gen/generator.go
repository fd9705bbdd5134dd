package gen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"example.com/SshHostGen/internal/render"
	"example.com/SshHostGen/pkg/config"
	"example.com/SshHostGen/pkg/logger"
	"example.com/SshHostGen/pkg/settings"
	"example.com/SshHostGen/pkg/utils/file"
)

// Generator 串联整个生成流程:
// 读大小写修正表和主机配置 -> 逐主机写两份启动脚本 -> 汇总写 ssh 配置
// 任一步失败都会中止后续步骤, 用户 ssh 配置必须先备份成功才会覆盖
type Generator struct {
	Store    config.Store
	Settings *settings.Settings

	Echo   io.Writer          // 回显生成的配置行, 可为 nil
	OnHost func(alias string) // 每处理完一个主机回调一次, 可为 nil
}

func (g *Generator) Run() error {
	caseMap, err := g.Store.LoadCaseMap()
	if err != nil {
		return &ConfigReadError{Err: err}
	}
	hosts, err := g.Store.LoadHosts()
	if err != nil {
		return &ConfigReadError{Err: err}
	}

	stager := &KeyStager{
		KeepDir: g.Settings.KeyKeepDir,
		OutDir:  g.Settings.KeyOutDir,
	}

	var cfgBlocks strings.Builder
	for _, profile := range hosts {
		spec, err := render.NewLaunchSpec(profile.Alias, profile, stager.Resolve)
		if err != nil {
			// 密钥处理失败时报告实际出错的文件, 读源文件和写输出目录都可能失败
			path := g.Settings.KeyOutDir
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				path = pathErr.Path
			}
			return &ConfigWriteError{Path: path, Err: err}
		}

		ttPath := filepath.Join(g.Settings.TeraTermOutDir, profile.Alias+".bat")
		if err := file.CreateFileRecursive(ttPath, []byte(spec.TeraTerm()), 0644); err != nil {
			return &ConfigWriteError{Path: ttPath, Err: err}
		}
		ptPath := filepath.Join(g.Settings.PuttyOutDir, profile.Alias+".bat")
		if err := file.CreateFileRecursive(ptPath, []byte(spec.PuTTY()), 0644); err != nil {
			return &ConfigWriteError{Path: ptPath, Err: err}
		}

		block := render.SSHConfigBlock(profile.Alias, profile, caseMap)
		cfgBlocks.WriteString(block)
		if g.Echo != nil {
			fmt.Fprint(g.Echo, block)
		}
		if g.OnHost != nil {
			g.OnHost(profile.Alias)
		}
	}
	content := []byte(cfgBlocks.String())

	// 自动生成目录下的副本不会生效, 不需要备份
	if err := file.CreateFileRecursive(g.Settings.AutoCfgFile, content, 0644); err != nil {
		return &ConfigWriteError{Path: g.Settings.AutoCfgFile, Err: err}
	}

	// 用户 ssh 配置先备份再覆盖, 备份失败时原文件保持不动
	bakPath, err := BackupFile(g.Settings.UserCfgFile)
	if err != nil {
		return &BackupError{Path: g.Settings.UserCfgFile, Err: err}
	}
	if bakPath != "" {
		logger.Logger.Info("已创建备份", "path", bakPath)
	}
	if err := file.CreateFileRecursive(g.Settings.UserCfgFile, content, 0600); err != nil {
		return &ConfigWriteError{Path: g.Settings.UserCfgFile, Err: err}
	}
	return nil
}
