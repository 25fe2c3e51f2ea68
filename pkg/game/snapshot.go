package game

import (
	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

// ClimberSnapshot 单只僵尸的只读快照（供渲染和命令行输出使用）
type ClimberSnapshot struct {
	ID            ecs.EntityID
	X, Y          float64
	Width, Height float64
	State         components.ClimberState
	SlotIndex     int
	HasSlot       bool
	RegistryIndex int // 当前在注册表中的下标，不在注册表中为 -1
}

// AnchorSnapshot 锚点包围盒
type AnchorSnapshot struct {
	MinX, MinY, MaxX, MaxY float64
	Available              bool
}

// Climbers 返回所有僵尸的快照，按实体创建顺序排列
func (w *World) Climbers() []ClimberSnapshot {
	ids := ecs.GetEntitiesWith2[*components.ClimberComponent, *components.PositionComponent](w.em)
	out := make([]ClimberSnapshot, 0, len(ids))

	for _, id := range ids {
		climber, _ := ecs.GetComponent[*components.ClimberComponent](w.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)

		snap := ClimberSnapshot{
			ID:            id,
			X:             pos.X,
			Y:             pos.Y,
			State:         climber.State,
			SlotIndex:     climber.SlotIndex,
			HasSlot:       climber.HasSlot,
			RegistryIndex: w.registry.IndexOf(id),
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](w.em, id); ok {
			snap.Width, snap.Height = col.Width, col.Height
		}
		out = append(out, snap)
	}
	return out
}

// AnchorBounds 返回锚点当前的包围盒
func (w *World) AnchorBounds() AnchorSnapshot {
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, w.anchorID)
	if !ok {
		return AnchorSnapshot{}
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](w.em, w.anchorID)
	if !ok {
		return AnchorSnapshot{}
	}
	minX, minY, maxX, maxY := col.Bounds(pos)
	return AnchorSnapshot{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY, Available: true}
}

// StateCounts 统计各状态的僵尸数量
func (w *World) StateCounts() map[components.ClimberState]int {
	counts := make(map[components.ClimberState]int)
	for _, c := range w.Climbers() {
		counts[c.State]++
	}
	return counts
}
