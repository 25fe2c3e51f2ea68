package entities

import (
	"testing"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/config"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

// TestNewClimberEntity 测试僵尸实体的组件组成
func TestNewClimberEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultTowerConfig().Climber

	id, err := NewClimberEntity(em, cfg, 12, 0.4)
	if err != nil {
		t.Fatalf("NewClimberEntity() error: %v", err)
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("missing PositionComponent")
	}
	if pos.X != 12 || pos.Y != 0.4 || pos.Rotation != 0 {
		t.Errorf("position: got %+v", pos)
	}

	if !ecs.HasComponent[*components.VelocityComponent](em, id) {
		t.Error("missing VelocityComponent")
	}

	rb, ok := ecs.GetComponent[*components.RigidbodyComponent](em, id)
	if !ok {
		t.Fatal("missing RigidbodyComponent")
	}
	if rb.Constraints != components.ConstraintFreezeRotation {
		t.Errorf("rigidbody constraints: got %v, want FreezeRotation", rb.Constraints)
	}

	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		t.Fatal("missing CollisionComponent")
	}
	if col.Width != cfg.Width || col.Height != cfg.Height {
		t.Errorf("collision size: got %vx%v", col.Width, col.Height)
	}

	climber, ok := ecs.GetComponent[*components.ClimberComponent](em, id)
	if !ok {
		t.Fatal("missing ClimberComponent")
	}
	if climber.State != components.ClimberWalking || climber.HasSlot || climber.Arc != nil {
		t.Errorf("new climber should be walking without slot: %+v", climber)
	}
}

// TestNewClimberEntityInvalid 测试参数校验
func TestNewClimberEntityInvalid(t *testing.T) {
	cfg := config.DefaultTowerConfig().Climber

	if _, err := NewClimberEntity(nil, cfg, 0, 0); err == nil {
		t.Error("expected error for nil entity manager")
	}

	bad := cfg
	bad.Width = 0
	em := ecs.NewEntityManager()
	if _, err := NewClimberEntity(em, bad, 0, 0); err == nil {
		t.Error("expected error for zero width")
	}
	if em.Count() != 0 {
		t.Errorf("no entity should be created on error, got %d", em.Count())
	}
}
