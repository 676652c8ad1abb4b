// Package fileurl 提供文件路径辅助函数
package fileurl

import (
	"os"
	"path/filepath"
)

// IsExist checks whether the path exists
// IsExist 判断路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// CreatePath creates path
// CreatePath 创建路径
func CreatePath(dst string, perm os.FileMode) error {
	dir := filepath.Dir(dst)
	err := os.MkdirAll(dir, perm)
	if err != nil {
		return err
	}
	return nil
}
