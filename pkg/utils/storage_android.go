//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ensureStorageDir 确保 Android 存储目录存在并可写
// gdata 在 Android 上使用 /data/data/{package}/ 作为存储路径，但不会预先创建子目录
func ensureStorageDir() error {
	pkg, err := androidPackage()
	if err != nil {
		return fmt.Errorf("detect android package: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// androidPackage 从 /proc/self/cmdline 读取应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(strings.ReplaceAll(string(data), "\x00", ""))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
