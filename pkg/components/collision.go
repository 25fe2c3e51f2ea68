package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒中心 = 实体位置 + 偏移量，用于判断僵尸是否接触到卡车
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度
	Height  float64 // 碰撞盒高度
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移量，正值向右偏移
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移量，正值向上偏移
}

// Bounds 返回碰撞盒在世界坐标中的边界
func (c *CollisionComponent) Bounds(pos *PositionComponent) (minX, minY, maxX, maxY float64) {
	cx := pos.X + c.OffsetX
	cy := pos.Y + c.OffsetY
	return cx - c.Width/2, cy - c.Height/2, cx + c.Width/2, cy + c.Height/2
}
