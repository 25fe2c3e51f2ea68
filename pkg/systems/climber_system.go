package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/config"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
	"github.com/dochi486/ZombieDefence/pkg/tower"
	"github.com/dochi486/ZombieDefence/pkg/utils"
)

const (
	// jumpGateFactor 跳跃评估距离 = 感知半径 × 1.2
	jumpGateFactor = 1.2
	// minSlowFactor 靠近塔时的最低速度比例
	minSlowFactor = 0.3
)

// ClimberSystem 叠塔僵尸的状态机
//
// 状态转换:
//
//	Walking → Stacked   注册表为空且接触到锚点（塔底僵尸，全局只发生一次）
//	Walking → Jumping   冷却结束、距离塔底足够近且随机判定成功
//	Jumping → Stacked   跳跃时间用完，吸附到槽位
//
// 起跳时就把自己追加到注册表以预订槽位，同一时刻起跳的僵尸不会抢到同一个槽位；
// 着陆时的追加是幂等的空操作。
//
// 行走只写入水平速度，位置由随后运行的 PhysicsSystem 积分。
type ClimberSystem struct {
	em         *ecs.EntityManager
	registry   *tower.Registry
	anchor     tower.AnchorProvider
	anchorID   ecs.EntityID
	collisions tower.CollisionQuery
	physics    tower.PhysicsResolver
	rng        tower.RandomSource
	clock      tower.Clock
	stabilizer *StabilizationSystem
	cfg        config.ClimberConfig
}

// ClimberDeps ClimberSystem 的外部依赖
type ClimberDeps struct {
	Registry   *tower.Registry
	Anchor     tower.AnchorProvider
	AnchorID   ecs.EntityID // 用于碰撞查询的锚点实体
	Collisions tower.CollisionQuery
	Physics    tower.PhysicsResolver
	Random     tower.RandomSource
	Clock      tower.Clock
	Stabilizer *StabilizationSystem
}

// NewClimberSystem 创建叠塔僵尸系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 僵尸行走与跳跃参数
//   - deps: 外部依赖，全部必填
//
// 返回:
//   - *ClimberSystem: 系统实例
//   - error: 依赖缺失或跳跃参数无效时返回错误
func NewClimberSystem(em *ecs.EntityManager, cfg config.ClimberConfig, deps ClimberDeps) (*ClimberSystem, error) {
	if deps.Anchor == nil {
		return nil, fmt.Errorf("climber system: %w", tower.ErrAnchorUnavailable)
	}
	if deps.Registry == nil || deps.Collisions == nil || deps.Physics == nil ||
		deps.Random == nil || deps.Clock == nil || deps.Stabilizer == nil {
		return nil, fmt.Errorf("climber system: missing dependency")
	}
	if !(cfg.JumpTime > 0) {
		return nil, fmt.Errorf("climber system: %w", tower.ErrInvalidDuration)
	}
	if !(cfg.Gravity > 0) {
		return nil, fmt.Errorf("climber system: %w", tower.ErrInvalidGravity)
	}

	return &ClimberSystem{
		em:         em,
		registry:   deps.Registry,
		anchor:     deps.Anchor,
		anchorID:   deps.AnchorID,
		collisions: deps.Collisions,
		physics:    deps.Physics,
		rng:        deps.Random,
		clock:      deps.Clock,
		stabilizer: deps.Stabilizer,
		cfg:        cfg,
	}, nil
}

// Update 推进所有僵尸一帧，按实体创建顺序处理
//
// 返回:
//   - error: 锚点不可用等致命配置错误
func (s *ClimberSystem) Update(deltaTime float64) error {
	climbers := ecs.GetEntitiesWith2[
		*components.ClimberComponent,
		*components.PositionComponent,
	](s.em)

	for _, id := range climbers {
		climber, _ := ecs.GetComponent[*components.ClimberComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		var err error
		switch climber.State {
		case components.ClimberWalking:
			err = s.updateWalking(id, climber, pos, deltaTime)
		case components.ClimberJumping:
			err = s.updateJumping(id, climber, pos, deltaTime)
		case components.ClimberStacked:
			// 位置由 StabilizationSystem 维持
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *ClimberSystem) updateWalking(id ecs.EntityID, climber *components.ClimberComponent, pos *components.PositionComponent, deltaTime float64) error {
	if s.registry.Size() == 0 {
		if !s.anchor.Available() {
			return fmt.Errorf("climber %d: %w", id, tower.ErrAnchorUnavailable)
		}
		if s.collisions.IsTouching(id, s.anchorID) {
			return s.becomeBase(id, climber)
		}
	}

	// 靠近塔时逐渐减速，最低保留 30% 速度
	speed := s.cfg.WalkSpeed
	if distance := s.distanceToBase(pos); distance < s.cfg.DetectionRadius {
		speed *= utils.Clamp(distance/s.cfg.DetectionRadius, minSlowFactor, 1)
	}

	dx := -speed * deltaTime
	if s.registry.Size() > 0 {
		limit, err := s.blockedAt(id, pos)
		if err != nil {
			return err
		}
		dx = math.Max(dx, limit)
	}
	if deltaTime > 0 {
		// 位移由 PhysicsSystem 积分
		s.physics.Body(id).SetVelocityX(dx / deltaTime)
	}

	now := s.clock.Now()
	if now > climber.NextJumpCheckTime {
		// 无论判定结果如何都重新进入冷却
		climber.NextJumpCheckTime = now + s.cfg.JumpCooldown
		return s.tryJump(id, climber, pos)
	}
	return nil
}

func (s *ClimberSystem) tryJump(id ecs.EntityID, climber *components.ClimberComponent, pos *components.PositionComponent) error {
	if s.registry.Size() == 0 {
		return nil
	}
	if s.distanceToBase(pos) > s.cfg.DetectionRadius*jumpGateFactor {
		return nil
	}
	if s.rng.Uniform01() > s.cfg.JumpProbability {
		return nil
	}
	return s.startJump(id, climber, pos)
}

func (s *ClimberSystem) startJump(id ecs.EntityID, climber *components.ClimberComponent, pos *components.PositionComponent) error {
	slot, _ := s.registry.Append(id)

	target, err := s.registry.SlotPosition(slot)
	if err != nil {
		s.registry.Remove(id)
		return fmt.Errorf("climber %d jump: %w", id, err)
	}

	arc, err := tower.Plan(tower.Point{X: pos.X, Y: pos.Y}, target, s.cfg.JumpTime, s.cfg.JumpHeight, s.cfg.Gravity)
	if err != nil {
		s.registry.Remove(id)
		return fmt.Errorf("climber %d jump: %w", id, err)
	}

	body := s.physics.Body(id)
	body.SetVelocityZero()
	body.FreezeRotationOnly()

	climber.State = components.ClimberJumping
	climber.JumpElapsed = 0
	climber.Arc = &arc
	climber.SlotIndex = slot
	climber.HasSlot = true

	log.Printf("[ClimberSystem] 僵尸 %d 起跳: slot=%d (%.2f, %.2f) → (%.2f, %.2f)",
		id, slot, pos.X, pos.Y, target.X, target.Y)
	return nil
}

func (s *ClimberSystem) updateJumping(id ecs.EntityID, climber *components.ClimberComponent, pos *components.PositionComponent, deltaTime float64) error {
	if climber.Arc == nil {
		return fmt.Errorf("climber %d: jumping without trajectory", id)
	}

	climber.JumpElapsed += deltaTime
	if climber.JumpElapsed < climber.Arc.Duration {
		p := climber.Arc.PositionAt(climber.JumpElapsed)
		pos.X, pos.Y = p.X, p.Y
		return nil
	}

	// 着陆：直接吸附到目标，消除离散积分误差
	pos.X, pos.Y = climber.Arc.Target.X, climber.Arc.Target.Y
	pos.Rotation = 0
	s.registry.Append(id)

	body := s.physics.Body(id)
	body.SetVelocityZero()
	body.FreezeAll()

	climber.State = components.ClimberStacked
	climber.Arc = nil
	climber.JumpElapsed = 0

	log.Printf("[ClimberSystem] 僵尸 %d 着陆: slot=%d, 塔高=%d", id, climber.SlotIndex, s.registry.Size())
	return s.stabilizer.Stabilize()
}

// becomeBase 第一只接触锚点的僵尸成为塔底
func (s *ClimberSystem) becomeBase(id ecs.EntityID, climber *components.ClimberComponent) error {
	body := s.physics.Body(id)
	body.SetVelocityZero()
	body.FreezeAll()

	slot, _ := s.registry.Append(id)
	climber.State = components.ClimberStacked
	climber.SlotIndex = slot
	climber.HasSlot = true

	log.Printf("[ClimberSystem] 僵尸 %d 成为塔底", id)
	return s.stabilizer.Stabilize()
}

// blockedAt 返回僵尸本帧允许的最小水平位移
//
// 塔底出现后卡车的碰撞体挡住行走的僵尸：碰撞盒左边界不能越过锚点右边界，
// 已经重叠时（例如卡车向右巡逻）返回正值把僵尸推出。
// 僵尸没有碰撞盒时不受阻挡。
func (s *ClimberSystem) blockedAt(id ecs.EntityID, pos *components.PositionComponent) (float64, error) {
	if !s.anchor.Available() {
		return 0, fmt.Errorf("climber %d: %w", id, tower.ErrAnchorUnavailable)
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
	if !ok {
		return math.Inf(-1), nil
	}
	minX, _, _, _ := col.Bounds(pos)
	return s.anchor.BoundsMaxX() - minX, nil
}

// distanceToBase 到塔底僵尸的距离，没有塔底时返回 +Inf
func (s *ClimberSystem) distanceToBase(pos *components.PositionComponent) float64 {
	base, ok := s.registry.Base()
	if !ok {
		return math.Inf(1)
	}
	basePos, ok := ecs.GetComponent[*components.PositionComponent](s.em, base)
	if !ok {
		return math.Inf(1)
	}
	return math.Hypot(pos.X-basePos.X, pos.Y-basePos.Y)
}
