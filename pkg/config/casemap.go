package config

import "strings"

// CaseMap 键名大小写修正表: 小写键名 -> 规范写法
// ini 解析后键名统一按小写查询, 输出 ssh 配置时用这张表还原显示写法
type CaseMap map[string]string

// Get 查询键名的规范写法, 表中没有时原样返回
func (m CaseMap) Get(option string) string {
	if canonical, ok := m[strings.ToLower(option)]; ok {
		return canonical
	}
	return option
}
