package components

// VelocityComponent 实体的线速度与角速度
// 由 PhysicsSystem 积分到 PositionComponent
type VelocityComponent struct {
	VX, VY  float64
	Angular float64 // 角速度（弧度/秒）
}
