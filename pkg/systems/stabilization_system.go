package systems

import (
	"fmt"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
	"github.com/dochi486/ZombieDefence/pkg/tower"
)

// StabilizationSystem 把已叠塔的僵尸固定在各自的槽位上
//
// 按注册表下标逐个处理：跳过尚未进入 Stacked 状态的成员（包括仍在跳跃中、
// 已预订槽位的僵尸），其余成员清零速度、完全冻结，并把位置/旋转设为槽位坐标/0。
// 锚点移动或外力造成的漂移都会在这里被修正。多次执行结果相同。
type StabilizationSystem struct {
	em       *ecs.EntityManager
	registry *tower.Registry
	physics  tower.PhysicsResolver
}

// NewStabilizationSystem 创建叠塔稳定系统
//
// 参数:
//   - em: 实体管理器
//   - registry: 塔注册表
//   - physics: 刚体控制查找
func NewStabilizationSystem(em *ecs.EntityManager, registry *tower.Registry, physics tower.PhysicsResolver) *StabilizationSystem {
	return &StabilizationSystem{
		em:       em,
		registry: registry,
		physics:  physics,
	}
}

// Stabilize 执行一次稳定处理
//
// 返回:
//   - error: 锚点不可用时返回错误（致命配置错误）
func (s *StabilizationSystem) Stabilize() error {
	for i := 0; i < s.registry.Size(); i++ {
		id, _ := s.registry.MemberAt(i)

		climber, ok := ecs.GetComponent[*components.ClimberComponent](s.em, id)
		if !ok || climber.State != components.ClimberStacked {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !ok {
			continue
		}

		slot, err := s.registry.SlotPosition(i)
		if err != nil {
			return fmt.Errorf("stabilize member %d: %w", id, err)
		}

		body := s.physics.Body(id)
		body.SetVelocityZero()
		body.FreezeAll()

		pos.X = slot.X
		pos.Y = slot.Y
		pos.Rotation = 0
	}
	return nil
}

// Update 每帧兜底执行一次稳定处理
func (s *StabilizationSystem) Update(deltaTime float64) error {
	return s.Stabilize()
}
