package systems

import (
	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

// ScrollSystem 背景层水平匀速平移
type ScrollSystem struct {
	em *ecs.EntityManager
}

// NewScrollSystem 创建滚动系统
func NewScrollSystem(em *ecs.EntityManager) *ScrollSystem {
	return &ScrollSystem{em: em}
}

// Update 平移所有滚动实体
func (s *ScrollSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ScrollComponent, *components.PositionComponent](s.em) {
		scroll, _ := ecs.GetComponent[*components.ScrollComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		pos.X += scroll.SpeedX * deltaTime
	}
}
