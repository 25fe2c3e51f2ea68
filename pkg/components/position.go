package components

// PositionComponent 实体在世界坐标系中的位置（Y 轴向上，单位：米）
type PositionComponent struct {
	X, Y     float64
	Rotation float64 // 旋转角度（弧度），0 为初始朝向
}
