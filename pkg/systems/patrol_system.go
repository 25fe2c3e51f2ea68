package systems

import (
	"math"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
	"github.com/dochi486/ZombieDefence/pkg/utils"
)

// PatrolSystem 让锚点沿路径点循环移动
// 每帧最多移动 Speed*deltaTime，不会越过目标点
type PatrolSystem struct {
	em *ecs.EntityManager
}

// NewPatrolSystem 创建巡逻系统
func NewPatrolSystem(em *ecs.EntityManager) *PatrolSystem {
	return &PatrolSystem{em: em}
}

// Update 更新所有巡逻实体的位置
func (s *PatrolSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.PatrolComponent, *components.PositionComponent](s.em)

	for _, id := range entities {
		patrol, _ := ecs.GetComponent[*components.PatrolComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if len(patrol.Points) == 0 {
			continue
		}
		if patrol.TargetIndex < 0 || patrol.TargetIndex >= len(patrol.Points) {
			patrol.TargetIndex = 0
		}

		target := patrol.Points[patrol.TargetIndex]
		pos.X, pos.Y = utils.MoveTowards(pos.X, pos.Y, target[0], target[1], patrol.Speed*deltaTime)

		if math.Hypot(target[0]-pos.X, target[1]-pos.Y) < patrol.ArriveThreshold {
			patrol.TargetIndex = (patrol.TargetIndex + 1) % len(patrol.Points)
		}
	}
}
