package systems

import (
	"testing"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/config"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
	"github.com/dochi486/ZombieDefence/pkg/entities"
	"github.com/dochi486/ZombieDefence/pkg/tower"
)

// fakeClock 手动推进的时钟
type fakeClock struct {
	now float64
}

func (c *fakeClock) Now() float64 { return c.now }

// fakeRandom 返回固定值并记录调用时间
type fakeRandom struct {
	value float64
	clock *fakeClock
	calls []float64
}

func (r *fakeRandom) Uniform01() float64 {
	r.calls = append(r.calls, r.clock.now)
	return r.value
}

// towerHarness 组装叠塔相关系统，不包含生成器
//
// 默认配置下锚点包围盒为 x∈[-1.5, 1.5], y∈[0, 1.2]，
// 因此槽位 i 的坐标为 (1.5 + col*0.5, row*0.8)。
type towerHarness struct {
	cfg        *config.TowerConfig
	em         *ecs.EntityManager
	anchorID   ecs.EntityID
	anchor     *EntityAnchor
	registry   *tower.Registry
	physics    *PhysicsSystem
	stabilizer *StabilizationSystem
	climbers   *ClimberSystem
	clock      *fakeClock
	rng        *fakeRandom
}

func newTowerHarness(t *testing.T) *towerHarness {
	t.Helper()

	cfg := config.DefaultTowerConfig()
	em := ecs.NewEntityManager()

	anchorID, err := entities.NewAnchorEntity(em, cfg.Anchor)
	if err != nil {
		t.Fatalf("failed to create anchor: %v", err)
	}
	anchor := NewEntityAnchor(em, anchorID)

	registry, err := tower.NewRegistry(cfg.TowerLayout(), anchor)
	if err != nil {
		t.Fatalf("failed to create registry: %v", err)
	}
	em.OnDestroy(func(id ecs.EntityID) { registry.Remove(id) })

	physics := NewPhysicsSystem(em)
	stabilizer := NewStabilizationSystem(em, registry, physics)
	clock := &fakeClock{}
	rng := &fakeRandom{value: 0.99, clock: clock}

	climbers, err := NewClimberSystem(em, cfg.Climber, ClimberDeps{
		Registry:   registry,
		Anchor:     anchor,
		AnchorID:   anchorID,
		Collisions: physics,
		Physics:    physics,
		Random:     rng,
		Clock:      clock,
		Stabilizer: stabilizer,
	})
	if err != nil {
		t.Fatalf("failed to create climber system: %v", err)
	}

	return &towerHarness{
		cfg:        cfg,
		em:         em,
		anchorID:   anchorID,
		anchor:     anchor,
		registry:   registry,
		physics:    physics,
		stabilizer: stabilizer,
		climbers:   climbers,
		clock:      clock,
		rng:        rng,
	}
}

// step 推进时钟，依次更新僵尸系统和物理系统
func (h *towerHarness) step(t *testing.T, dt float64) {
	t.Helper()
	h.clock.now += dt
	if err := h.climbers.Update(dt); err != nil {
		t.Fatalf("climber update failed: %v", err)
	}
	h.physics.Update(dt)
}

func (h *towerHarness) spawn(t *testing.T, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewClimberEntity(h.em, h.cfg.Climber, x, y)
	if err != nil {
		t.Fatalf("failed to spawn climber: %v", err)
	}
	return id
}

// stack 直接把一只僵尸放入注册表并标记为已叠塔
func (h *towerHarness) stack(t *testing.T) ecs.EntityID {
	t.Helper()
	id := h.spawn(t, 0, 0)
	slot, _ := h.registry.Append(id)
	c := h.climber(t, id)
	c.State = components.ClimberStacked
	c.SlotIndex = slot
	c.HasSlot = true
	if err := h.stabilizer.Stabilize(); err != nil {
		t.Fatalf("stabilize failed: %v", err)
	}
	return id
}

func (h *towerHarness) climber(t *testing.T, id ecs.EntityID) *components.ClimberComponent {
	t.Helper()
	c, ok := ecs.GetComponent[*components.ClimberComponent](h.em, id)
	if !ok {
		t.Fatalf("entity %d has no ClimberComponent", id)
	}
	return c
}

func (h *towerHarness) position(t *testing.T, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	p, ok := ecs.GetComponent[*components.PositionComponent](h.em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return p
}

func (h *towerHarness) rigidbody(t *testing.T, id ecs.EntityID) *components.RigidbodyComponent {
	t.Helper()
	rb, ok := ecs.GetComponent[*components.RigidbodyComponent](h.em, id)
	if !ok {
		t.Fatalf("entity %d has no RigidbodyComponent", id)
	}
	return rb
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
