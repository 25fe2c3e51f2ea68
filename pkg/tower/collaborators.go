// Package tower 实现僵尸叠塔的核心逻辑：抛物线跳跃规划与塔注册表。
//
// 本包不依赖具体的物理引擎或渲染层，所需的外部能力（锚点包围盒、
// 碰撞查询、刚体冻结、随机数、时钟）全部通过本文件中的接口注入。
package tower

import (
	"errors"

	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

var (
	// ErrAnchorUnavailable 锚点（卡车）不可用，无法计算槽位
	ErrAnchorUnavailable = errors.New("tower: anchor unavailable")
	// ErrInvalidDuration 跳跃时间必须为正数
	ErrInvalidDuration = errors.New("tower: jump duration must be positive")
	// ErrInvalidGravity 重力必须为正数
	ErrInvalidGravity = errors.New("tower: gravity must be positive")
	// ErrInvalidExtraHeight 额外跳跃高度不能为负数
	ErrInvalidExtraHeight = errors.New("tower: extra height must not be negative")
	// ErrInvalidLayout 叠塔布局参数无效
	ErrInvalidLayout = errors.New("tower: invalid layout")
)

// Point 二维世界坐标（Y 轴向上）
type Point struct {
	X, Y float64
}

// AnchorProvider 提供锚点当前的包围盒
//
// 每次计算槽位都会重新查询，因为锚点可能在巡逻中移动。
type AnchorProvider interface {
	// Available 锚点是否仍然存在
	Available() bool
	// BoundsMaxX 包围盒右边界
	BoundsMaxX() float64
	// BoundsMinY 包围盒下边界
	BoundsMinY() float64
}

// CollisionQuery 判断两个实体的碰撞体是否接触
type CollisionQuery interface {
	IsTouching(a, b ecs.EntityID) bool
}

// PhysicsHandle 单个实体的刚体控制
type PhysicsHandle interface {
	SetVelocityZero()
	// SetVelocityX 设置水平速度，竖直速度保持不变
	SetVelocityX(vx float64)
	// FreezeAll 冻结平移和旋转（叠塔后）
	FreezeAll()
	// FreezeRotationOnly 仅冻结旋转（跳跃中）
	FreezeRotationOnly()
}

// PhysicsResolver 根据实体查找其刚体控制
type PhysicsResolver interface {
	Body(id ecs.EntityID) PhysicsHandle
}

// RandomSource 均匀分布随机数，返回 [0,1)
type RandomSource interface {
	Uniform01() float64
}

// Clock 单调时钟，由帧循环推进
type Clock interface {
	Now() float64
}
