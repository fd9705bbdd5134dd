package config

import "strings"

// HostProfile 一个主机连接配置, 对应 ini 文件中的一个 section
// 键名按文件内出现顺序保存, 取值时忽略键名大小写
type HostProfile struct {
	Alias  string
	keys   []string
	values map[string]string
}

func NewHostProfile(alias string) *HostProfile {
	return &HostProfile{
		Alias:  alias,
		values: make(map[string]string),
	}
}

// Set 记录一个键值对, 重复键后写覆盖先写, 键名顺序保留首次出现的位置
func (p *HostProfile) Set(key, value string) {
	lower := strings.ToLower(key)
	if _, ok := p.values[lower]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[lower] = value
}

// Get 按键名取值, 忽略大小写, 不存在时返回空字符串
func (p *HostProfile) Get(key string) string {
	return p.values[strings.ToLower(key)]
}

// Has 判断键是否存在, 忽略大小写
func (p *HostProfile) Has(key string) bool {
	_, ok := p.values[strings.ToLower(key)]
	return ok
}

// Keys 返回原始键名, 保持文件内顺序
func (p *HostProfile) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}
