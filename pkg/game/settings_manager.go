package game

import (
	"fmt"
	"log"

	"github.com/dochi486/ZombieDefence/pkg/utils"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ViewerSettings 观察窗口设置
// 只影响显示，不影响模拟结果
type ViewerSettings struct {
	TPS       int     `yaml:"tps"`       // 每秒模拟帧数
	Zoom      float64 `yaml:"zoom"`      // 每米对应的像素数
	ShowSlots bool    `yaml:"showSlots"` // 是否绘制槽位网格
}

const (
	minZoom = 10.0
	maxZoom = 200.0
	minTPS  = 10
	maxTPS  = 240
)

// DefaultSettings 返回默认设置
func DefaultSettings() *ViewerSettings {
	return &ViewerSettings{
		TPS:       60,
		Zoom:      48,
		ShowSlots: true,
	}
}

// SettingsManager 设置管理器
// 负责观察窗口设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *ViewerSettings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	// 存档中的值可能来自旧版本，重新限制范围
	loaded.TPS = clampTPS(loaded.TPS)
	loaded.Zoom = utils.Clamp(loaded.Zoom, minZoom, maxZoom)
	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *ViewerSettings {
	return sm.settings
}

// SetTPS 设置模拟帧率，限制在 10 ~ 240
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetTPS(tps int) {
	sm.settings.TPS = clampTPS(tps)
}

// SetZoom 设置缩放，限制在 10 ~ 200 像素/米
func (sm *SettingsManager) SetZoom(zoom float64) {
	sm.settings.Zoom = utils.Clamp(zoom, minZoom, maxZoom)
}

// ToggleSlots 切换槽位网格显示
func (sm *SettingsManager) ToggleSlots() bool {
	sm.settings.ShowSlots = !sm.settings.ShowSlots
	return sm.settings.ShowSlots
}

func clampTPS(tps int) int {
	if tps < minTPS {
		return minTPS
	}
	if tps > maxTPS {
		return maxTPS
	}
	return tps
}
