package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings 输出路径配置
// 默认值面向 Windows 上的固定目录, 可以用 yaml 文件逐项覆盖
type Settings struct {
	TeraTermOutDir string `yaml:"teraterm_out_dir"` // tera term 批处理输出目录
	PuttyOutDir    string `yaml:"putty_out_dir"`    // putty 批处理输出目录
	AutoCfgFile    string `yaml:"auto_cfg_file"`    // 自动生成的 ssh 配置, 除非 ssh -F 指定否则不生效
	UserCfgFile    string `yaml:"user_cfg_file"`    // 用户默认 ssh 配置文件, 会生效
	KeyKeepDir     string `yaml:"key_keep_dir"`     // 密钥保存目录, IdentityFile 不是绝对路径时以此为基准
	KeyOutDir      string `yaml:"key_out_dir"`      // 密钥统一复制到的输出目录, 用于处理权限
}

// Default 返回默认路径配置, baseDir 是主机配置文件所在目录
func Default(baseDir string) *Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &Settings{
		TeraTermOutDir: filepath.Join("C:\\", "1", "tth"),
		PuttyOutDir:    filepath.Join("C:\\", "1", "pth"),
		AutoCfgFile:    filepath.Join("C:\\", "1", "ssh-cfg-auto-generate", "config"),
		UserCfgFile:    filepath.Join(home, ".ssh", "config"),
		KeyKeepDir:     filepath.Join(baseDir, "sshkey"),
		KeyOutDir:      filepath.Join("C:\\", "0", "sshkey"),
	}
}

// Load 读取 yaml 配置文件并覆盖默认值, 文件不存在时直接使用默认值
func Load(path, baseDir string) (*Settings, error) {
	settings := Default(baseDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
