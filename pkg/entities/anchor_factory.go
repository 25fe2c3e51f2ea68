package entities

import (
	"fmt"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/config"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

// NewAnchorEntity 创建锚点（卡车）实体
// 路径为空时卡车静止不动
func NewAnchorEntity(em *ecs.EntityManager, cfg config.AnchorConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, fmt.Errorf("invalid anchor size %vx%v", cfg.Width, cfg.Height)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.AnchorComponent{})
	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.X, Y: cfg.Y})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Width,
		Height: cfg.Height,
	})

	points := make([][2]float64, len(cfg.Path))
	copy(points, cfg.Path)
	ecs.AddComponent(em, id, &components.PatrolComponent{
		Speed:           cfg.Speed,
		Points:          points,
		ArriveThreshold: cfg.ArriveThreshold,
	})

	return id, nil
}

// NewSpawnerEntity 创建僵尸生成器实体，第一只僵尸在首帧生成
func NewSpawnerEntity(em *ecs.EntityManager, cfg config.SpawnerConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SpawnerComponent{
		Interval: cfg.Interval,
		X:        cfg.X,
		Y:        cfg.Y,
		MaxAlive: cfg.MaxAlive,
	})
	return id
}

// NewCameraEntity 创建跟随 target 的镜头实体
func NewCameraEntity(em *ecs.EntityManager, cfg config.CameraConfig, target ecs.EntityID) ecs.EntityID {
	id := em.CreateEntity()
	cam := &components.CameraComponent{
		Target:  target,
		Lerp:    cfg.Lerp,
		OffsetX: cfg.OffsetX,
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, target); ok {
		cam.X = pos.X + cfg.OffsetX
		cam.Y = pos.Y
	}
	ecs.AddComponent(em, id, cam)
	return id
}

// NewBackdropEntity 创建匀速滚动的背景层
func NewBackdropEntity(em *ecs.EntityManager, cfg config.ScrollConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.ScrollComponent{SpeedX: cfg.SpeedX})
	return id
}
