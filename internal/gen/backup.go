package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"example.com/SshHostGen/pkg/utils/file"
)

// 备份文件名里的时间戳格式
const backupTimeFormat = "20060102-150405"

// BackupFile 若 path 存在则复制为带时间戳的 .bak 文件, 返回备份路径
// 文件不存在时返回空路径, 不算错误
func BackupFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s 是目录, 无法备份", path)
	}
	bakPath := fmt.Sprintf("%s.bak-%s", path, time.Now().Format(backupTimeFormat))
	if err := file.CopyFile(path, bakPath); err != nil {
		return "", err
	}
	return bakPath, nil
}
