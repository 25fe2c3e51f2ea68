package utils

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

// OpenStorage 打开跨平台存储
//
// 参数:
//   - appName: 存储使用的应用名
//
// 返回:
//   - *gdata.Manager: 存储管理器
//   - error: 存储目录不可用时返回错误，调用方可退化为仅内存模式
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := ensureStorageDir(); err != nil {
		return nil, fmt.Errorf("prepare storage dir: %w", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open storage %q: %w", appName, err)
	}
	return manager, nil
}
