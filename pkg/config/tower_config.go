package config

import (
	"fmt"
	"os"

	"github.com/dochi486/ZombieDefence/pkg/tower"
	"gopkg.in/yaml.v3"
)

// TowerConfig 叠塔模拟配置
//
// 配置文件位置: data/tower.yaml
// 坐标系为世界坐标（Y 轴向上，单位：米）。
type TowerConfig struct {
	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	Climber ClimberConfig `yaml:"climber"`
	Layout  LayoutConfig  `yaml:"layout"`
	Anchor  AnchorConfig  `yaml:"anchor"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Camera  CameraConfig  `yaml:"camera"`
	Scroll  ScrollConfig  `yaml:"scroll"`
}

// ClimberConfig 僵尸行走与跳跃参数
type ClimberConfig struct {
	WalkSpeed       float64 `yaml:"walkSpeed"`
	JumpHeight      float64 `yaml:"jumpHeight"`      // 额外跳跃高度
	JumpTime        float64 `yaml:"jumpTime"`        // 跳跃时间（秒）
	DetectionRadius float64 `yaml:"detectionRadius"` // 塔感知半径
	JumpProbability float64 `yaml:"jumpProbability"` // 每次评估的跳跃概率 0~1
	JumpCooldown    float64 `yaml:"jumpCooldown"`    // 两次评估之间的间隔（秒）
	Gravity         float64 `yaml:"gravity"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
}

// LayoutConfig 槽位布局
type LayoutConfig struct {
	PerRow            int     `yaml:"perRow"`
	HorizontalSpacing float64 `yaml:"horizontalSpacing"`
	RowHeight         float64 `yaml:"rowHeight"`
}

// AnchorConfig 锚点（卡车）参数
type AnchorConfig struct {
	X               float64      `yaml:"x"`
	Y               float64      `yaml:"y"`
	Width           float64      `yaml:"width"`
	Height          float64      `yaml:"height"`
	Speed           float64      `yaml:"speed"`
	Path            [][2]float64 `yaml:"path"`
	ArriveThreshold float64      `yaml:"arriveThreshold"`
}

// SpawnerConfig 僵尸生成参数
type SpawnerConfig struct {
	Interval float64 `yaml:"interval"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	MaxAlive int     `yaml:"maxAlive"`
}

// CameraConfig 镜头跟随参数
type CameraConfig struct {
	Lerp    float64 `yaml:"lerp"`
	OffsetX float64 `yaml:"offsetX"`
}

// ScrollConfig 背景滚动参数
type ScrollConfig struct {
	SpeedX float64 `yaml:"speedX"`
}

// DefaultTowerConfig 返回默认配置
func DefaultTowerConfig() *TowerConfig {
	return &TowerConfig{
		Climber: ClimberConfig{
			WalkSpeed:       1.5,
			JumpHeight:      1.8,
			JumpTime:        0.4,
			DetectionRadius: 2.0,
			JumpProbability: 0.3,
			JumpCooldown:    1.0,
			Gravity:         9.8,
			Width:           0.5,
			Height:          0.8,
		},
		Layout: LayoutConfig{
			PerRow:            5,
			HorizontalSpacing: 0.5,
			RowHeight:         0.8,
		},
		Anchor: AnchorConfig{
			X:               0,
			Y:               0.6,
			Width:           3.0,
			Height:          1.2,
			Speed:           2.0,
			ArriveThreshold: 0.1,
		},
		Spawner: SpawnerConfig{
			Interval: 1.5,
			X:        12,
			Y:        0.4,
		},
		Camera: CameraConfig{
			Lerp: 0.01,
		},
		Scroll: ScrollConfig{
			SpeedX: -1,
		},
	}
}

// LoadTowerConfig 加载叠塔配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tower.yaml"）
//
// 返回:
//   - *TowerConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadTowerConfig(path string) (*TowerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower config: %w", err)
	}
	return ParseTowerConfig(data)
}

// ParseTowerConfig 解析 YAML 格式的叠塔配置
//
// 未出现在 YAML 中的字段保留默认值。
func ParseTowerConfig(data []byte) (*TowerConfig, error) {
	config := DefaultTowerConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse tower config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tower config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 跳跃时间和重力为非正数会导致轨迹计算除零，属于致命配置错误。
func (c *TowerConfig) Validate() error {
	cl := c.Climber
	if !(cl.JumpTime > 0) {
		return fmt.Errorf("climber.jumpTime must be positive, got %v: %w", cl.JumpTime, tower.ErrInvalidDuration)
	}
	if !(cl.Gravity > 0) {
		return fmt.Errorf("climber.gravity must be positive, got %v: %w", cl.Gravity, tower.ErrInvalidGravity)
	}
	if cl.JumpHeight < 0 {
		return fmt.Errorf("climber.jumpHeight must not be negative, got %v: %w", cl.JumpHeight, tower.ErrInvalidExtraHeight)
	}
	if cl.WalkSpeed < 0 {
		return fmt.Errorf("climber.walkSpeed must not be negative, got %v", cl.WalkSpeed)
	}
	if !(cl.DetectionRadius > 0) {
		return fmt.Errorf("climber.detectionRadius must be positive, got %v", cl.DetectionRadius)
	}
	if cl.JumpProbability < 0 || cl.JumpProbability > 1 {
		return fmt.Errorf("climber.jumpProbability must be in [0,1], got %v", cl.JumpProbability)
	}
	if cl.JumpCooldown < 0 {
		return fmt.Errorf("climber.jumpCooldown must not be negative, got %v", cl.JumpCooldown)
	}
	if cl.Width <= 0 || cl.Height <= 0 {
		return fmt.Errorf("climber size must be positive, got %vx%v", cl.Width, cl.Height)
	}

	if err := c.TowerLayout().Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	if c.Anchor.Width <= 0 || c.Anchor.Height <= 0 {
		return fmt.Errorf("anchor size must be positive, got %vx%v", c.Anchor.Width, c.Anchor.Height)
	}
	if c.Anchor.Speed < 0 {
		return fmt.Errorf("anchor.speed must not be negative, got %v", c.Anchor.Speed)
	}
	if c.Anchor.ArriveThreshold < 0 {
		return fmt.Errorf("anchor.arriveThreshold must not be negative, got %v", c.Anchor.ArriveThreshold)
	}

	if c.Spawner.Interval <= 0 {
		return fmt.Errorf("spawner.interval must be positive, got %v", c.Spawner.Interval)
	}
	if c.Spawner.MaxAlive < 0 {
		return fmt.Errorf("spawner.maxAlive must not be negative, got %d", c.Spawner.MaxAlive)
	}

	if c.Camera.Lerp < 0 || c.Camera.Lerp > 1 {
		return fmt.Errorf("camera.lerp must be in [0,1], got %v", c.Camera.Lerp)
	}

	return nil
}

// TowerLayout 转换为 tower.Layout
func (c *TowerConfig) TowerLayout() tower.Layout {
	return tower.Layout{
		PerRow:            c.Layout.PerRow,
		HorizontalSpacing: c.Layout.HorizontalSpacing,
		RowHeight:         c.Layout.RowHeight,
	}
}
