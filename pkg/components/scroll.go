package components

// ScrollComponent 水平匀速平移（背景层）
type ScrollComponent struct {
	SpeedX float64 // 米/秒，负值向左
}
