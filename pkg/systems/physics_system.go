package systems

import (
	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
	"github.com/dochi486/ZombieDefence/pkg/tower"
)

// PhysicsSystem 处理刚体的速度积分和碰撞查询
//
// 没有重力：僵尸在地面上行走，跳跃由轨迹直接驱动位置。
// 行走速度由 ClimberSystem 写入，已冻结的分量不会被积分。
type PhysicsSystem struct {
	em *ecs.EntityManager
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(em *ecs.EntityManager) *PhysicsSystem {
	return &PhysicsSystem{em: em}
}

// Update 积分所有未冻结刚体的速度
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	bodies := ecs.GetEntitiesWith3[
		*components.RigidbodyComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](ps.em)

	for _, id := range bodies {
		rb, _ := ecs.GetComponent[*components.RigidbodyComponent](ps.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)

		if !rb.FreezesTranslation() {
			pos.X += vel.VX * deltaTime
			pos.Y += vel.VY * deltaTime
		}
		if !rb.FreezesRotation() {
			pos.Rotation += vel.Angular * deltaTime
		}
	}
}

// IsTouching 检查两个实体的AABB（轴对齐边界框）是否接触
// 边界相切也视为接触；任一实体缺少位置或碰撞组件时返回 false
func (ps *PhysicsSystem) IsTouching(a, b ecs.EntityID) bool {
	pos1, ok := ecs.GetComponent[*components.PositionComponent](ps.em, a)
	if !ok {
		return false
	}
	col1, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, a)
	if !ok {
		return false
	}
	pos2, ok := ecs.GetComponent[*components.PositionComponent](ps.em, b)
	if !ok {
		return false
	}
	col2, ok := ecs.GetComponent[*components.CollisionComponent](ps.em, b)
	if !ok {
		return false
	}

	left1, bottom1, right1, top1 := col1.Bounds(pos1)
	left2, bottom2, right2, top2 := col2.Bounds(pos2)

	// 如果任一轴上没有重叠，则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		top1 >= bottom2 &&
		bottom1 <= top2
}

// Body 返回实体的刚体控制
func (ps *PhysicsSystem) Body(id ecs.EntityID) tower.PhysicsHandle {
	return &rigidbodyHandle{em: ps.em, id: id}
}

// rigidbodyHandle 基于 ECS 组件的 tower.PhysicsHandle 实现
// 实体缺少对应组件时各操作为空操作
type rigidbodyHandle struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

func (h *rigidbodyHandle) SetVelocityZero() {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](h.em, h.id); ok {
		vel.VX, vel.VY, vel.Angular = 0, 0, 0
	}
}

func (h *rigidbodyHandle) SetVelocityX(vx float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](h.em, h.id); ok {
		vel.VX = vx
	}
}

func (h *rigidbodyHandle) FreezeAll() {
	if rb, ok := ecs.GetComponent[*components.RigidbodyComponent](h.em, h.id); ok {
		rb.Constraints = components.ConstraintFreezeAll
	}
}

func (h *rigidbodyHandle) FreezeRotationOnly() {
	if rb, ok := ecs.GetComponent[*components.RigidbodyComponent](h.em, h.id); ok {
		rb.Constraints = components.ConstraintFreezeRotation
	}
}

// EntityAnchor 把带碰撞盒的实体包装成 tower.AnchorProvider
// 每次查询都读取实体当前位置
type EntityAnchor struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

// NewEntityAnchor 创建实体锚点
func NewEntityAnchor(em *ecs.EntityManager, id ecs.EntityID) *EntityAnchor {
	return &EntityAnchor{em: em, id: id}
}

// ID 返回锚点实体ID
func (a *EntityAnchor) ID() ecs.EntityID {
	return a.id
}

// Available 锚点实体是否存在且拥有位置和碰撞组件
func (a *EntityAnchor) Available() bool {
	return ecs.HasComponent[*components.PositionComponent](a.em, a.id) &&
		ecs.HasComponent[*components.CollisionComponent](a.em, a.id)
}

// BoundsMaxX 碰撞盒右边界，锚点不可用时返回 0（调用方应先检查 Available）
func (a *EntityAnchor) BoundsMaxX() float64 {
	pos, col, ok := a.components()
	if !ok {
		return 0
	}
	_, _, maxX, _ := col.Bounds(pos)
	return maxX
}

// BoundsMinY 碰撞盒下边界
func (a *EntityAnchor) BoundsMinY() float64 {
	pos, col, ok := a.components()
	if !ok {
		return 0
	}
	_, minY, _, _ := col.Bounds(pos)
	return minY
}

func (a *EntityAnchor) components() (*components.PositionComponent, *components.CollisionComponent, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](a.em, a.id)
	if !ok {
		return nil, nil, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](a.em, a.id)
	if !ok {
		return nil, nil, false
	}
	return pos, col, true
}
