// Package app 提供叠塔模拟观察窗口的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/dochi486/ZombieDefence/pkg/config"
	"github.com/dochi486/ZombieDefence/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TowerConfig 叠塔配置 YAML 内容，为空则使用默认配置
	TowerConfig []byte
	// Seed 非 0 时覆盖配置中的随机种子
	Seed int64
	// Settings 观察窗口设置，为 nil 时使用仅内存的默认设置
	Settings *game.SettingsManager
}

// App 是观察窗口的核心包装器，实现 ebiten.Game 接口
type App struct {
	world    *game.World
	settings *game.SettingsManager
	verbose  bool
	paused   bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化观察窗口
//
// 参数:
//   - cfg: 启动配置
//
// 返回:
//   - *App: 应用实例
//   - error: 叠塔配置无效时返回错误
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	towerConfig := config.DefaultTowerConfig()
	if len(cfg.TowerConfig) > 0 {
		parsed, err := config.ParseTowerConfig(cfg.TowerConfig)
		if err != nil {
			return nil, fmt.Errorf("叠塔配置加载失败: %w", err)
		}
		towerConfig = parsed
	}
	if cfg.Seed != 0 {
		towerConfig.Seed = cfg.Seed
	}

	world, err := game.NewWorld(towerConfig)
	if err != nil {
		return nil, fmt.Errorf("模拟初始化失败: %w", err)
	}

	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	ebiten.SetTPS(settings.GetSettings().TPS)

	log.Printf("[App] World %s started (seed=%d, tps=%d)", world.ID, towerConfig.Seed, settings.GetSettings().TPS)

	return &App{
		world:    world,
		settings: settings,
		verbose:  cfg.Verbose,
	}, nil
}

// Update 更新模拟
// 每个 tick 调用一次，返回错误时 Ebitengine 终止运行
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.togglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.toggleSlots()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		a.zoomBy(1.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		a.zoomBy(0.8)
	}

	return a.step()
}

// step 推进模拟一帧，暂停时不推进
func (a *App) step() error {
	if a.paused {
		return nil
	}
	return a.world.Step(1.0 / float64(a.settings.GetSettings().TPS))
}

func (a *App) togglePause() {
	a.paused = !a.paused
	log.Printf("[App] paused=%v", a.paused)
}

func (a *App) toggleSlots() {
	show := a.settings.ToggleSlots()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
	log.Printf("[App] showSlots=%v", show)
}

func (a *App) zoomBy(factor float64) {
	a.settings.SetZoom(a.settings.GetSettings().Zoom * factor)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制模拟画面
func (a *App) Draw(screen *ebiten.Image) {
	v := newViewport(a.world.Camera().X, a.settings.GetSettings().Zoom)
	drawWorld(screen, a.world, v, a.settings.GetSettings().ShowSlots)
	drawHUD(screen, a.world, a.paused)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// World 返回当前模拟
func (a *App) World() *game.World {
	return a.world
}

// Settings 返回观察窗口设置管理器
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
