package utils

import "math"

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTowards 从 (x, y) 向 (tx, ty) 移动最多 maxDelta，不会越过目标
func MoveTowards(x, y, tx, ty, maxDelta float64) (float64, float64) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= maxDelta || dist == 0 {
		return tx, ty
	}
	return x + dx/dist*maxDelta, y + dy/dist*maxDelta
}
