package gen

import "fmt"

// 三类致命错误, 用来区分失败发生在哪个阶段
// 任何一类都会中止整个生成流程

// ConfigReadError 输入配置文件缺失或无法解析
type ConfigReadError struct {
	Err error
}

func (e *ConfigReadError) Error() string {
	return fmt.Sprintf("读取配置失败: %v", e.Err)
}

func (e *ConfigReadError) Unwrap() error { return e.Err }

// ConfigWriteError 输出目录或文件不可写
type ConfigWriteError struct {
	Path string
	Err  error
}

func (e *ConfigWriteError) Error() string {
	return fmt.Sprintf("写入 %s 失败: %v", e.Path, e.Err)
}

func (e *ConfigWriteError) Unwrap() error { return e.Err }

// BackupError 覆盖用户 ssh 配置前备份失败, 此时原文件保持不动
type BackupError struct {
	Path string
	Err  error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("备份 %s 失败: %v", e.Path, e.Err)
}

func (e *BackupError) Unwrap() error { return e.Err }
