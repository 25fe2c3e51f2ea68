package tower

import (
	"fmt"
	"math"
)

// Trajectory 一次跳跃的抛物线轨迹
//
// 由 Plan 计算得出，之后只读。x 方向匀速，y 方向受重力影响：
//
//	x(t) = x0 + Vx*t
//	y(t) = y0 + Vy*t - 0.5*g*t²
type Trajectory struct {
	Start    Point
	Target   Point
	Duration float64
	Gravity  float64
	Vx       float64
	Vy       float64
}

// Plan 计算从 start 跳到 target 的初速度
//
// 水平位移强制为非正值（僵尸只会向左跳，不会后退），
// 竖直位移额外加上 extraHeight，使轨迹高于两点连线。
//
// 参数:
//   - start: 起跳点
//   - target: 目标槽位
//   - duration: 跳跃时间 T（必须 > 0）
//   - extraHeight: 额外跳跃高度（必须 >= 0）
//   - gravity: 重力加速度（必须 > 0）
//
// 返回:
//   - Trajectory: 轨迹
//   - error: 参数无效时返回错误
func Plan(start, target Point, duration, extraHeight, gravity float64) (Trajectory, error) {
	if !(duration > 0) {
		return Trajectory{}, fmt.Errorf("plan jump (T=%v): %w", duration, ErrInvalidDuration)
	}
	if !(gravity > 0) {
		return Trajectory{}, fmt.Errorf("plan jump (g=%v): %w", gravity, ErrInvalidGravity)
	}
	if extraHeight < 0 {
		return Trajectory{}, fmt.Errorf("plan jump (h=%v): %w", extraHeight, ErrInvalidExtraHeight)
	}

	dx := -math.Abs(target.X - start.X)
	dy := (target.Y - start.Y) + extraHeight

	// dy = vy*T - 0.5*g*T² → vy = (dy + 0.5*g*T²) / T
	vx := dx / duration
	vy := (dy + 0.5*gravity*duration*duration) / duration

	return Trajectory{
		Start:    start,
		Target:   target,
		Duration: duration,
		Gravity:  gravity,
		Vx:       vx,
		Vy:       vy,
	}, nil
}

// PositionAt 返回 t 时刻的位置，t 会被限制在 [0, Duration]
func (tr Trajectory) PositionAt(t float64) Point {
	if t < 0 {
		t = 0
	} else if t > tr.Duration {
		t = tr.Duration
	}
	return Point{
		X: tr.Start.X + tr.Vx*t,
		Y: tr.Start.Y + tr.Vy*t - 0.5*tr.Gravity*t*t,
	}
}
