package systems

import (
	"testing"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

func newPatrolEntity(em *ecs.EntityManager, x, y float64, patrol *components.PatrolComponent) *components.PositionComponent {
	id := em.CreateEntity()
	pos := &components.PositionComponent{X: x, Y: y}
	ecs.AddComponent(em, id, pos)
	ecs.AddComponent(em, id, patrol)
	return pos
}

// TestPatrolSystemMovesTowardsTarget 每帧最多移动 Speed*dt
func TestPatrolSystemMovesTowardsTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPatrolSystem(em)
	patrol := &components.PatrolComponent{
		Speed:           2,
		Points:          [][2]float64{{-3, 0}, {3, 0}},
		ArriveThreshold: 0.1,
	}
	pos := newPatrolEntity(em, 0, 0, patrol)

	ps.Update(0.5)

	if pos.X != -1 || pos.Y != 0 {
		t.Errorf("expected (-1, 0), got (%v, %v)", pos.X, pos.Y)
	}
	if patrol.TargetIndex != 0 {
		t.Errorf("target should not advance yet, got %d", patrol.TargetIndex)
	}
}

// TestPatrolSystemCyclesPoints 到达后切换到下一个路径点并循环
func TestPatrolSystemCyclesPoints(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPatrolSystem(em)
	patrol := &components.PatrolComponent{
		Speed:           10,
		Points:          [][2]float64{{1, 0}, {0, 1}},
		ArriveThreshold: 0.1,
	}
	pos := newPatrolEntity(em, 0, 0, patrol)

	ps.Update(1)
	if pos.X != 1 || pos.Y != 0 || patrol.TargetIndex != 1 {
		t.Errorf("after first leg: pos=(%v, %v) target=%d", pos.X, pos.Y, patrol.TargetIndex)
	}

	ps.Update(1)
	if pos.X != 0 || pos.Y != 1 || patrol.TargetIndex != 0 {
		t.Errorf("after second leg: pos=(%v, %v) target=%d", pos.X, pos.Y, patrol.TargetIndex)
	}
}

// TestPatrolSystemEdgeCases 空路径保持静止，越界下标重置
func TestPatrolSystemEdgeCases(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPatrolSystem(em)

	still := newPatrolEntity(em, 5, 5, &components.PatrolComponent{Speed: 3})
	bad := &components.PatrolComponent{
		Speed:       1,
		Points:      [][2]float64{{0, 0}},
		TargetIndex: 7,
	}
	pos := newPatrolEntity(em, 2, 0, bad)

	ps.Update(1)

	if still.X != 5 || still.Y != 5 {
		t.Errorf("entity without path moved to (%v, %v)", still.X, still.Y)
	}
	if bad.TargetIndex != 0 || pos.X != 1 {
		t.Errorf("expected reset target and x=1, got target=%d x=%v", bad.TargetIndex, pos.X)
	}
}
