package components

import "github.com/dochi486/ZombieDefence/pkg/ecs"

// CameraComponent 跟随目标实体的镜头
// 每帧将镜头X坐标按 Lerp 比例向目标靠近，Y 坐标不变
type CameraComponent struct {
	X, Y    float64
	Target  ecs.EntityID
	Lerp    float64 // 每帧插值比例 (0, 1]
	OffsetX float64
}
