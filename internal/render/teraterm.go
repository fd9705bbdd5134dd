package render

import (
	"fmt"
	"strings"
)

// command for tera term ttssh
// https://teratermproject.github.io/manual/5/en/commandline/ttssh.html
const teraTermExe = `"%programfiles(x86)%\teraterm5\ttermpro.exe"`

// TeraTerm 生成 Tera Term 的启动批处理内容
func (s *LaunchSpec) TeraTerm() string {
	var proxyArg string
	if s.ProxyType != "" && s.ProxyType != "none" {
		if s.ProxyUser != "" {
			proxyArg = fmt.Sprintf("-proxy %s://%s:%s@%s:%s",
				s.ProxyType, s.ProxyUser, s.ProxyPassword, s.ProxyHost, s.ProxyPort)
		} else {
			proxyArg = fmt.Sprintf("-proxy %s://%s:%s", s.ProxyType, s.ProxyHost, s.ProxyPort)
		}
	} else {
		proxyArg = "-noproxy"
	}

	authArg := "/ask4passwd"
	if s.AuthType != "" {
		authArg = "/auth=" + s.AuthType
	}
	if s.User != "" {
		authArg += " /user=" + s.User
	}
	if s.KeyFile != "" {
		authArg += fmt.Sprintf(" /keyfile=\"%s\"", s.KeyFile)
	}
	if s.Password != "" {
		authArg += fmt.Sprintf(" /password=\"%s\"", s.Password)
	}

	var b strings.Builder
	b.WriteString("@echo off" + crlf)
	fmt.Fprintf(&b, `start "" %s %s %s:%s /ssh %s & `, teraTermExe, proxyArg, s.Host, s.Port, authArg)
	b.WriteString(crlf)
	return b.String()
}
