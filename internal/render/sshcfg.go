package render

import (
	"fmt"
	"strings"

	"example.com/SshHostGen/pkg/config"
)

// 这些键是给启动脚本用的代理参数, 不是 ssh 客户端认识的配置项
var proxyKeys = map[string]bool{
	"proxytype":     true,
	"proxyhost":     true,
	"proxyport":     true,
	"proxyuser":     true,
	"proxypassword": true,
}

// SSHConfigBlock 生成一个主机的 ssh 配置块
// 键名用 CaseMap 还原规范写法, 按文件内顺序输出
// http 代理改写为 ProxyCommand, 其他代理类型原样透传
func SSHConfigBlock(alias string, profile *config.HostProfile, caseMap config.CaseMap) string {
	proxyType := profile.Get("ProxyType")
	httpProxy := proxyType == "http" &&
		profile.Get("ProxyHost") != "" && profile.Get("ProxyPort") != ""

	var b strings.Builder
	fmt.Fprintf(&b, "Host %s\n", alias)
	for _, key := range profile.Keys() {
		if proxyKeys[strings.ToLower(key)] && proxyType == "http" {
			// 完整的 http 代理配置由下面的 ProxyCommand 表达
			// 不完整时代理信息不足以连接, 一概不输出
			continue
		}
		fmt.Fprintf(&b, "    %s %s\n", caseMap.Get(key), profile.Get(key))
	}
	if httpProxy {
		fmt.Fprintf(&b, "    ProxyCommand corkscrew %s %s %%h %%p\n",
			profile.Get("ProxyHost"), profile.Get("ProxyPort"))
	}
	return b.String()
}
