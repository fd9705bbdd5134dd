package render

import (
	"fmt"
	"path/filepath"
	"strings"
)

const puttyExe = `"%programfiles%\PuTTY\putty.exe"`

// corkscrew 走 http 代理建立 TCP 连接, 作为 putty 的 proxycmd 使用
const corkscrewExe = `C:\Program Files\Tencent\WeTERM\resources\external\win32\x86\corkscrew.exe`

// PuTTY 生成 PuTTY 的启动批处理内容
// 代理暂时只支持 http, 通过 corkscrew 转成 proxycmd
func (s *LaunchSpec) PuTTY() string {
	var b strings.Builder
	b.WriteString("@echo off" + crlf)

	var proxyArg string
	if s.ProxyType == "http" {
		if s.ProxyUser != "" {
			fmt.Fprintf(&b, "set CORKSCREW_AUTH=%s:%s%s", s.ProxyUser, s.ProxyPassword, crlf)
		}
		// 批处理里的引号和反斜杠都要转义, %host/%port 留给 putty 替换
		escaped := strings.ReplaceAll(corkscrewExe, `\`, `\\`)
		proxyArg = fmt.Sprintf(` -proxycmd "\"%s\" %s %s %%%%host %%%%port"`,
			escaped, s.ProxyHost, s.ProxyPort)
	}

	authArg := ""
	if s.User != "" {
		authArg += " -l " + s.User
	}
	if s.KeyFile != "" {
		authArg += fmt.Sprintf(" -i \"%s\"", PuttyKeyFileName(s.KeyFile))
	}
	if s.Password != "" {
		authArg += fmt.Sprintf(" -pw \"%s\"", s.Password)
	}

	fmt.Fprintf(&b, `start "" %s -ssh -noshare%s%s -P %s %s & `,
		puttyExe, proxyArg, authArg, s.Port, s.Host)
	b.WriteString(crlf)
	return b.String()
}

// PuttyKeyFileName 把密钥文件名换成 .ppk 后缀
// 以单个点开头的隐藏文件直接追加 .ppk, 有扩展名的替换扩展名, 没有的追加
func PuttyKeyFileName(path string) string {
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	var newName string
	switch {
	case strings.HasPrefix(name, ".") && strings.Count(name, ".") == 1:
		newName = name + ".ppk"
	case strings.Contains(name, "."):
		newName = name[:strings.LastIndex(name, ".")] + ".ppk"
	default:
		newName = name + ".ppk"
	}
	return filepath.Join(dir, newName)
}
