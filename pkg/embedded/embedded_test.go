package embedded

import (
	"testing"
	"testing/fstest"

	"github.com/dochi486/ZombieDefence/data"
)

// TestNotInitialized 测试未初始化时的错误
func TestNotInitialized(t *testing.T) {
	Init(nil)

	const want = "embedded package not initialized, call Init() first"
	if _, err := ReadFile("data/tower.yaml"); err == nil || err.Error() != want {
		t.Errorf("ReadFile: unexpected error %v", err)
	}
}

// TestReadFile 测试读取与路径规范化
func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"tower.yaml":     {Data: []byte("seed: 7\n")},
		"presets/a.yaml": {Data: []byte("a")},
	})
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"普通路径", "data/tower.yaml", "seed: 7\n", false},
		{"移除 ./ 前缀", "./data/tower.yaml", "seed: 7\n", false},
		{"子目录", "data/presets/a.yaml", "a", false},
		{"无效前缀", "assets/tower.yaml", "", true},
		{"缺少前缀", "tower.yaml", "", true},
		{"文件不存在", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestShippedData 测试内置的 data/tower.yaml 可以读取
func TestShippedData(t *testing.T) {
	Init(data.FS)
	defer Init(nil)

	content, err := ReadFile("data/tower.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(content) == 0 {
		t.Error("embedded tower.yaml is empty")
	}
}
