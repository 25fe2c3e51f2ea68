// Package embedded 提供嵌入资源的统一访问接口
//
// embed.FS 变量声明在 data 包（data/embed.go），
// 本包提供包装函数，让其他包按 "data/..." 路径读取嵌入的配置数据。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// data 以 data/ 目录为根；必须在任何配置加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// normalize 统一路径格式，检查并去掉 "data/" 前缀
func normalize(path string) (string, error) {
	if !initialized {
		return "", fmt.Errorf("embedded package not initialized, call Init() first")
	}

	// 标准化路径分隔符为正斜杠（embed.FS 使用正斜杠）
	path = filepath.ToSlash(path)

	// 移除可能的 "./" 前缀
	path = strings.TrimPrefix(path, "./")

	rel, ok := strings.CutPrefix(path, "data/")
	if !ok {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return rel, nil
}

// ReadFile 读取嵌入的数据文件内容
// 路径必须以 "data/" 开头
func ReadFile(path string) ([]byte, error) {
	rel, err := normalize(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, rel)
}
