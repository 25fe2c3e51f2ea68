package game

import (
	"fmt"
	"log"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/config"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
	"github.com/dochi486/ZombieDefence/pkg/entities"
	"github.com/dochi486/ZombieDefence/pkg/systems"
	"github.com/dochi486/ZombieDefence/pkg/tower"
	"github.com/google/uuid"
)

// World 一次独立的叠塔模拟
//
// World 拥有实体管理器、塔注册表和所有系统，多个 World 之间不共享任何状态。
// 所有方法都必须在同一个帧循环（goroutine）中调用。
type World struct {
	ID string

	cfg      *config.TowerConfig
	em       *ecs.EntityManager
	registry *tower.Registry
	anchor   *systems.EntityAnchor

	anchorID   ecs.EntityID
	cameraID   ecs.EntityID
	backdropID ecs.EntityID

	now  float64
	tick uint64

	physicsSystem       *systems.PhysicsSystem
	patrolSystem        *systems.PatrolSystem
	spawnSystem         *systems.SpawnSystem
	climberSystem       *systems.ClimberSystem
	stabilizationSystem *systems.StabilizationSystem
	cameraSystem        *systems.CameraSystem
	scrollSystem        *systems.ScrollSystem
}

// Option 修改 World 的构造参数
type Option func(*worldOptions)

type worldOptions struct {
	random  tower.RandomSource
	spawner bool
}

// WithRandomSource 使用指定的随机数源（测试中用于控制跳跃判定）
func WithRandomSource(r tower.RandomSource) Option {
	return func(o *worldOptions) {
		o.random = r
	}
}

// WithoutSpawner 不创建生成器，僵尸只能通过 SpawnClimber 手动添加
func WithoutSpawner() Option {
	return func(o *worldOptions) {
		o.spawner = false
	}
}

// NewWorld 根据配置创建模拟世界
//
// 参数:
//   - cfg: 叠塔配置（会先执行 Validate）
//   - opts: 可选参数
//
// 返回:
//   - *World: 模拟世界
//   - error: 配置无效时返回错误
func NewWorld(cfg *config.TowerConfig, opts ...Option) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tower config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tower config: %w", err)
	}

	o := worldOptions{spawner: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.random == nil {
		o.random = NewRandSource(cfg.Seed)
	}

	w := &World{
		ID:  uuid.NewString(),
		cfg: cfg,
		em:  ecs.NewEntityManager(),
	}

	anchorID, err := entities.NewAnchorEntity(w.em, cfg.Anchor)
	if err != nil {
		return nil, fmt.Errorf("failed to create anchor: %w", err)
	}
	w.anchorID = anchorID
	w.anchor = systems.NewEntityAnchor(w.em, anchorID)

	w.registry, err = tower.NewRegistry(cfg.TowerLayout(), w.anchor)
	if err != nil {
		return nil, err
	}

	// 实体销毁时同步移除出注册表，其余成员保持原有顺序
	w.em.OnDestroy(func(id ecs.EntityID) {
		if w.registry.Remove(id) {
			log.Printf("[World %s] 僵尸 %d 离开叠塔，剩余 %d", w.shortID(), id, w.registry.Size())
		}
	})

	w.physicsSystem = systems.NewPhysicsSystem(w.em)
	w.patrolSystem = systems.NewPatrolSystem(w.em)
	w.spawnSystem = systems.NewSpawnSystem(w.em, cfg.Climber)
	w.stabilizationSystem = systems.NewStabilizationSystem(w.em, w.registry, w.physicsSystem)
	w.climberSystem, err = systems.NewClimberSystem(w.em, cfg.Climber, systems.ClimberDeps{
		Registry:   w.registry,
		Anchor:     w.anchor,
		AnchorID:   anchorID,
		Collisions: w.physicsSystem,
		Physics:    w.physicsSystem,
		Random:     o.random,
		Clock:      w,
		Stabilizer: w.stabilizationSystem,
	})
	if err != nil {
		return nil, err
	}
	w.cameraSystem = systems.NewCameraSystem(w.em)
	w.scrollSystem = systems.NewScrollSystem(w.em)

	if o.spawner {
		entities.NewSpawnerEntity(w.em, cfg.Spawner)
	}
	w.cameraID = entities.NewCameraEntity(w.em, cfg.Camera, anchorID)
	w.backdropID = entities.NewBackdropEntity(w.em, cfg.Scroll)

	log.Printf("[World %s] 创建模拟: perRow=%d, spacing=%.2f, rowHeight=%.2f",
		w.shortID(), cfg.Layout.PerRow, cfg.Layout.HorizontalSpacing, cfg.Layout.RowHeight)
	return w, nil
}

// Step 推进模拟一帧
//
// 参数:
//   - deltaTime: 帧时间（秒），必须为正数
//
// 返回:
//   - error: 致命配置错误（如锚点丢失），出现后不应继续推进
func (w *World) Step(deltaTime float64) error {
	if !(deltaTime > 0) {
		return fmt.Errorf("deltaTime must be positive, got %v", deltaTime)
	}
	w.now += deltaTime
	w.tick++

	// 按顺序更新所有系统（顺序影响逻辑正确性）
	w.patrolSystem.Update(deltaTime) // 1. 锚点巡逻（槽位随之移动）
	w.spawnSystem.Update(deltaTime)  // 2. 生成新僵尸
	if err := w.climberSystem.Update(deltaTime); err != nil {
		return w.fatal(err) // 3. 僵尸状态机（行走、起跳、着陆）
	}
	w.physicsSystem.Update(deltaTime) // 4. 积分外力
	if err := w.stabilizationSystem.Update(deltaTime); err != nil {
		return w.fatal(err) // 5. 兜底稳定：修正锚点移动与外力造成的漂移
	}
	w.cameraSystem.Update(deltaTime) // 6. 镜头跟随
	w.scrollSystem.Update(deltaTime) // 7. 背景滚动
	w.em.RemoveMarkedEntities()      // 8. 清理已删除实体（总是最后）
	return nil
}

func (w *World) fatal(err error) error {
	log.Printf("[World %s] 致命错误 (tick %d): %v", w.shortID(), w.tick, err)
	return err
}

// Now 返回模拟时间（秒），实现 tower.Clock
func (w *World) Now() float64 {
	return w.now
}

// Tick 返回已推进的帧数
func (w *World) Tick() uint64 {
	return w.tick
}

// SpawnClimber 在指定位置立即生成一只僵尸
func (w *World) SpawnClimber(x, y float64) (ecs.EntityID, error) {
	return entities.NewClimberEntity(w.em, w.cfg.Climber, x, y)
}

// DestroyClimber 立即销毁僵尸，并同步将其移出注册表
// 不能在 Step 执行过程中调用
func (w *World) DestroyClimber(id ecs.EntityID) {
	if !w.em.Exists(id) || !ecs.HasComponent[*components.ClimberComponent](w.em, id) {
		return
	}
	w.em.DestroyEntity(id)
	w.em.RemoveMarkedEntities()
}

// DestroyAnchor 移除锚点实体（之后任何槽位计算都会失败）
func (w *World) DestroyAnchor() {
	w.em.DestroyEntity(w.anchorID)
	w.em.RemoveMarkedEntities()
}

// Stabilize 立即执行一次叠塔稳定
func (w *World) Stabilize() error {
	return w.stabilizationSystem.Stabilize()
}

// EntityManager 返回实体管理器
func (w *World) EntityManager() *ecs.EntityManager {
	return w.em
}

// Registry 返回塔注册表
func (w *World) Registry() *tower.Registry {
	return w.registry
}

// Anchor 返回锚点
func (w *World) Anchor() *systems.EntityAnchor {
	return w.anchor
}

// Camera 返回镜头组件
func (w *World) Camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](w.em, w.cameraID)
	return cam
}

// BackdropX 返回背景层当前的水平偏移
func (w *World) BackdropX() float64 {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, w.backdropID)
	if !ok {
		return 0
	}
	return pos.X
}

// Config 返回模拟配置
func (w *World) Config() *config.TowerConfig {
	return w.cfg
}

func (w *World) shortID() string {
	return w.ID[:8]
}
