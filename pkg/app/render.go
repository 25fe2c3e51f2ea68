package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// groundScreenY 世界坐标 y=0 在屏幕上的位置
const groundScreenY = ScreenHeight * 0.75

// backdropStripe 背景条纹间距（米）
const backdropStripe = 2.0

var (
	skyColor      = color.RGBA{R: 40, G: 44, B: 60, A: 255}
	stripeColor   = color.RGBA{R: 52, G: 57, B: 76, A: 255}
	groundColor   = color.RGBA{R: 70, G: 60, B: 45, A: 255}
	anchorColor   = color.RGBA{R: 150, G: 110, B: 70, A: 255}
	slotColor     = color.RGBA{R: 120, G: 120, B: 140, A: 255}
	walkingColor  = color.RGBA{R: 110, G: 170, B: 100, A: 255}
	jumpingColor  = color.RGBA{R: 230, G: 200, B: 80, A: 255}
	stackedColor  = color.RGBA{R: 200, G: 90, B: 80, A: 255}
	hudBackground = color.RGBA{A: 160}
)

// viewport 世界坐标（Y 轴向上，米）到屏幕坐标（Y 轴向下，像素）的变换
// 镜头 X 对准屏幕水平中心，地面固定在屏幕下方四分之一处
type viewport struct {
	cameraX float64
	zoom    float64
}

func newViewport(cameraX, zoom float64) viewport {
	return viewport{cameraX: cameraX, zoom: zoom}
}

func (v viewport) toScreen(x, y float64) (float32, float32) {
	sx := (x-v.cameraX)*v.zoom + ScreenWidth/2
	sy := groundScreenY - y*v.zoom
	return float32(sx), float32(sy)
}

// rect 把世界包围盒转换为屏幕矩形 (x, y, w, h)
func (v viewport) rect(minX, minY, maxX, maxY float64) (float32, float32, float32, float32) {
	x, y := v.toScreen(minX, maxY)
	return x, y, float32((maxX - minX) * v.zoom), float32((maxY - minY) * v.zoom)
}

func drawWorld(screen *ebiten.Image, world *game.World, v viewport, showSlots bool) {
	screen.Fill(skyColor)
	drawBackdrop(screen, world.BackdropX(), v)

	_, groundY := v.toScreen(0, 0)
	vector.DrawFilledRect(screen, 0, groundY, ScreenWidth, ScreenHeight-groundY, groundColor, false)

	anchor := world.AnchorBounds()
	if anchor.Available {
		x, y, w, h := v.rect(anchor.MinX, anchor.MinY, anchor.MaxX, anchor.MaxY)
		vector.DrawFilledRect(screen, x, y, w, h, anchorColor, false)
	}

	climbers := world.Climbers()
	if showSlots && anchor.Available {
		drawSlots(screen, world, climbers, v)
	}

	for _, c := range climbers {
		x, y, w, h := v.rect(c.X-c.Width/2, c.Y-c.Height/2, c.X+c.Width/2, c.Y+c.Height/2)
		vector.DrawFilledRect(screen, x, y, w, h, stateColor(c.State), true)
	}
}

// drawBackdrop 绘制随 BackdropX 平移的竖向条纹
func drawBackdrop(screen *ebiten.Image, offset float64, v viewport) {
	left := v.cameraX - ScreenWidth/2/v.zoom
	right := v.cameraX + ScreenWidth/2/v.zoom
	start := math.Floor((left-offset)/backdropStripe)*backdropStripe + offset

	for x := start; x <= right; x += backdropStripe {
		sx, _ := v.toScreen(x, 0)
		vector.StrokeLine(screen, sx, 0, sx, groundScreenY, 1, stripeColor, false)
	}
}

// drawSlots 绘制已占用的槽位以及下一行空槽位的轮廓
func drawSlots(screen *ebiten.Image, world *game.World, climbers []game.ClimberSnapshot, v viewport) {
	reg := world.Registry()
	if len(climbers) == 0 {
		return
	}
	width, height := climbers[0].Width, climbers[0].Height
	perRow := reg.Layout().PerRow
	count := (reg.Size()/perRow + 1) * perRow

	for i := 0; i < count; i++ {
		slot, err := reg.SlotPosition(i)
		if err != nil {
			return
		}
		x, y, w, h := v.rect(slot.X-width/2, slot.Y-height/2, slot.X+width/2, slot.Y+height/2)
		vector.StrokeRect(screen, x, y, w, h, 1, slotColor, false)
	}
}

func drawHUD(screen *ebiten.Image, world *game.World, paused bool) {
	counts := world.StateCounts()
	lines := []string{
		fmt.Sprintf("world %s  t=%.2fs  tick=%d", world.ID[:8], world.Now(), world.Tick()),
		fmt.Sprintf("walking=%d jumping=%d stacked=%d  tower=%d",
			counts[components.ClimberWalking], counts[components.ClimberJumping],
			counts[components.ClimberStacked], world.Registry().Size()),
		"[P] pause  [G] slots  [+/-] zoom  [F11] fullscreen",
	}
	if paused {
		lines = append(lines, "PAUSED")
	}

	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, float32(16*len(lines)+8), hudBackground, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, 4+16*i)
	}
}

func stateColor(s components.ClimberState) color.Color {
	switch s {
	case components.ClimberJumping:
		return jumpingColor
	case components.ClimberStacked:
		return stackedColor
	default:
		return walkingColor
	}
}
