package entities

import (
	"fmt"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/config"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

// NewClimberEntity 创建叠塔僵尸实体
// 新僵尸处于 Walking 状态，刚体仅冻结旋转
//
// 参数:
//   - em: 实体管理器
//   - cfg: 僵尸参数（决定碰撞盒大小）
//   - x, y: 生成点（世界坐标）
//
// 返回:
//   - ecs.EntityID: 创建的僵尸实体ID
//   - error: 参数无效时返回错误
func NewClimberEntity(em *ecs.EntityManager, cfg config.ClimberConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, fmt.Errorf("invalid climber size %vx%v", cfg.Width, cfg.Height)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.RigidbodyComponent{
		Constraints: components.ConstraintFreezeRotation,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	ecs.AddComponent(em, id, &components.ClimberComponent{
		State: components.ClimberWalking,
	})

	return id, nil
}
