package systems

import (
	"log"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/config"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
	"github.com/dochi486/ZombieDefence/pkg/entities"
)

// SpawnSystem 按固定间隔在生成点创建僵尸
type SpawnSystem struct {
	em  *ecs.EntityManager
	cfg config.ClimberConfig
}

// NewSpawnSystem 创建生成系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 新僵尸使用的参数
func NewSpawnSystem(em *ecs.EntityManager, cfg config.ClimberConfig) *SpawnSystem {
	return &SpawnSystem{em: em, cfg: cfg}
}

// Update 推进所有生成器的计时
func (s *SpawnSystem) Update(deltaTime float64) {
	spawners := ecs.GetEntitiesWith1[*components.SpawnerComponent](s.em)

	for _, id := range spawners {
		spawner, _ := ecs.GetComponent[*components.SpawnerComponent](s.em, id)
		if spawner.Interval <= 0 {
			continue
		}

		spawner.Timer -= deltaTime
		for spawner.Timer <= 0 {
			spawner.Timer += spawner.Interval
			if spawner.MaxAlive > 0 && s.walkingCount() >= spawner.MaxAlive {
				continue
			}
			climberID, err := entities.NewClimberEntity(s.em, s.cfg, spawner.X, spawner.Y)
			if err != nil {
				log.Printf("[SpawnSystem] 生成僵尸失败: %v", err)
				continue
			}
			spawner.Spawned++
			log.Printf("[SpawnSystem] 生成僵尸 %d (第 %d 只)", climberID, spawner.Spawned)
		}
	}
}

// walkingCount 统计仍在行走的僵尸数量
func (s *SpawnSystem) walkingCount() int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ClimberComponent](s.em) {
		climber, _ := ecs.GetComponent[*components.ClimberComponent](s.em, id)
		if climber.State == components.ClimberWalking {
			count++
		}
	}
	return count
}
