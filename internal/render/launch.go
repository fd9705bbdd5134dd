package render

import (
	"example.com/SshHostGen/pkg/config"
)

const crlf = "\r\n"

// KeyResolver 把 IdentityFile 的原始值转换为启动脚本可用的路径
type KeyResolver func(raw string) (string, error)

// LaunchSpec 从主机配置推导出的连接参数, 两个终端客户端的渲染都从这里取值
type LaunchSpec struct {
	Alias    string
	Host     string
	Port     string
	User     string
	Password string
	KeyFile  string
	AuthType string

	ProxyType     string
	ProxyHost     string
	ProxyPort     string
	ProxyUser     string
	ProxyPassword string
}

// NewLaunchSpec 读取主机配置构造启动参数
// 主机地址依次取 HostName / Host / 别名, 认证类型没有配置时按密钥和密码推断
func NewLaunchSpec(alias string, profile *config.HostProfile, resolve KeyResolver) (*LaunchSpec, error) {
	host := profile.Get("HostName")
	if host == "" {
		host = profile.Get("Host")
	}
	if host == "" {
		host = alias
	}

	keyFile := profile.Get("IdentityFile")
	if keyFile != "" && resolve != nil {
		resolved, err := resolve(keyFile)
		if err != nil {
			return nil, err
		}
		keyFile = resolved
	}

	spec := &LaunchSpec{
		Alias:    alias,
		Host:     host,
		Port:     profile.Get("Port"),
		User:     profile.Get("User"),
		Password: profile.Get("Password"),
		KeyFile:  keyFile,
		AuthType: profile.Get("AuthType"),

		ProxyType:     profile.Get("ProxyType"),
		ProxyHost:     profile.Get("ProxyHost"),
		ProxyPort:     profile.Get("ProxyPort"),
		ProxyUser:     profile.Get("ProxyUser"),
		ProxyPassword: profile.Get("ProxyPassword"),
	}

	if spec.AuthType == "" {
		if spec.KeyFile != "" {
			spec.AuthType = "publickey"
		} else if spec.Password != "" {
			spec.AuthType = "password"
		}
	}
	return spec, nil
}
