package gen

import (
	"os"
	"path/filepath"
	"strings"

	"example.com/SshHostGen/pkg/utils/file"
)

// KeyStager 把 IdentityFile 指向的密钥统一复制到输出目录
// 原文件的权限可能不符合客户端要求, 复制后在输出目录统一处理
type KeyStager struct {
	KeepDir string // IdentityFile 不是绝对路径时以此为基准
	OutDir  string // 统一复制到的目录
}

// Resolve 展开 ~ 前缀, 补全相对路径, 再把密钥复制进输出目录
// 返回启动脚本应当引用的路径
func (k *KeyStager) Resolve(raw string) (string, error) {
	path := raw
	// 只展开当前用户的 ~, ~user 这类写法当普通相对路径处理
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(k.KeepDir, path)
	}
	if filepath.Dir(path) != k.OutDir {
		dst := filepath.Join(k.OutDir, filepath.Base(path))
		if err := file.CopyFile(path, dst); err != nil {
			return "", err
		}
		path = dst
	}
	return path, nil
}
