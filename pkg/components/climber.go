package components

import "github.com/dochi486/ZombieDefence/pkg/tower"

// ClimberState 叠塔僵尸的状态
type ClimberState int

const (
	// ClimberWalking 行走中（初始状态）：向左移动，靠近塔时减速并尝试跳跃
	ClimberWalking ClimberState = iota
	// ClimberJumping 跳跃中：沿抛物线飞向预订的槽位，不可中断
	ClimberJumping
	// ClimberStacked 已叠塔（终止状态）：位置由 StabilizationSystem 维持
	ClimberStacked
)

// String 返回状态名称（用于日志）
func (s ClimberState) String() string {
	switch s {
	case ClimberWalking:
		return "Walking"
	case ClimberJumping:
		return "Jumping"
	case ClimberStacked:
		return "Stacked"
	default:
		return "Unknown"
	}
}

// ClimberComponent 叠塔僵尸的状态机数据
type ClimberComponent struct {
	State ClimberState

	// NextJumpCheckTime 在此时间之前不评估跳跃
	NextJumpCheckTime float64

	// JumpElapsed 本次跳跃已经过的时间（仅 Jumping 状态有效）
	JumpElapsed float64

	// Arc 本次跳跃的轨迹（仅 Jumping 状态有效，着陆后清空）
	Arc *tower.Trajectory

	// SlotIndex 预订的槽位下标，进入注册表时赋值一次，之后不再改变
	SlotIndex int
	HasSlot   bool
}
