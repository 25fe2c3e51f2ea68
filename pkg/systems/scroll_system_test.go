package systems

import (
	"testing"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

func TestScrollSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	ss := NewScrollSystem(em)

	id := em.CreateEntity()
	pos := &components.PositionComponent{X: 0, Y: 1}
	ecs.AddComponent(em, id, pos)
	ecs.AddComponent(em, id, &components.ScrollComponent{SpeedX: -1})

	// 没有位置组件的滚动实体被忽略
	orphan := em.CreateEntity()
	ecs.AddComponent(em, orphan, &components.ScrollComponent{SpeedX: 5})

	ss.Update(0.5)
	ss.Update(0.5)

	if pos.X != -1 || pos.Y != 1 {
		t.Errorf("expected (-1, 1), got (%v, %v)", pos.X, pos.Y)
	}
}
