package tower

import (
	"fmt"

	"github.com/dochi486/ZombieDefence/pkg/ecs"
)

// Layout 叠塔的槽位布局
type Layout struct {
	PerRow            int     // 每行僵尸数
	HorizontalSpacing float64 // 同一行相邻僵尸的水平间距
	RowHeight         float64 // 行高
}

// Validate 检查布局参数
func (l Layout) Validate() error {
	if l.PerRow <= 0 {
		return fmt.Errorf("perRow must be positive, got %d: %w", l.PerRow, ErrInvalidLayout)
	}
	if !(l.HorizontalSpacing > 0) {
		return fmt.Errorf("horizontalSpacing must be positive, got %v: %w", l.HorizontalSpacing, ErrInvalidLayout)
	}
	if !(l.RowHeight > 0) {
		return fmt.Errorf("rowHeight must be positive, got %v: %w", l.RowHeight, ErrInvalidLayout)
	}
	return nil
}

// Cell 返回注册表下标 i 对应的 (row, col)
func (l Layout) Cell(i int) (row, col int) {
	return i / l.PerRow, i % l.PerRow
}

// Registry 已登塔（或已预订槽位）的僵尸的有序列表
//
// 插入顺序即叠塔顺序，只会追加或在实体销毁时移除，从不重新排序。
// 槽位坐标不缓存，每次都从锚点的实时包围盒计算。
//
// Registry 不是并发安全的：所有调用都发生在同一个帧循环里。
type Registry struct {
	layout  Layout
	anchor  AnchorProvider
	members []ecs.EntityID
}

// NewRegistry 创建塔注册表
//
// 参数:
//   - layout: 槽位布局
//   - anchor: 锚点包围盒提供者（不能为 nil）
//
// 返回:
//   - *Registry: 注册表
//   - error: 锚点缺失或布局无效时返回错误
func NewRegistry(layout Layout, anchor AnchorProvider) (*Registry, error) {
	if anchor == nil {
		return nil, fmt.Errorf("new registry: %w", ErrAnchorUnavailable)
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("new registry: %w", err)
	}
	return &Registry{
		layout:  layout,
		anchor:  anchor,
		members: make([]ecs.EntityID, 0),
	}, nil
}

// Layout 返回布局参数
func (r *Registry) Layout() Layout {
	return r.layout
}

// Append 将实体追加到塔尾
//
// 幂等：实体已存在时不做任何修改。
//
// 返回:
//   - int: 实体在注册表中的下标（新追加时等于追加前的大小）
//   - bool: 本次是否真正追加
func (r *Registry) Append(id ecs.EntityID) (int, bool) {
	if i := r.IndexOf(id); i >= 0 {
		return i, false
	}
	r.members = append(r.members, id)
	return len(r.members) - 1, true
}

// Remove 移除实体，保持其余成员的相对顺序
//
// 实体不在注册表中时为空操作。
func (r *Registry) Remove(id ecs.EntityID) bool {
	i := r.IndexOf(id)
	if i < 0 {
		return false
	}
	r.members = append(r.members[:i], r.members[i+1:]...)
	return true
}

// Size 返回成员数量
func (r *Registry) Size() int {
	return len(r.members)
}

// MemberAt 返回下标 i 的成员
func (r *Registry) MemberAt(i int) (ecs.EntityID, bool) {
	if i < 0 || i >= len(r.members) {
		return 0, false
	}
	return r.members[i], true
}

// Base 返回塔底（下标 0）的成员
func (r *Registry) Base() (ecs.EntityID, bool) {
	return r.MemberAt(0)
}

// Contains 检查实体是否在注册表中
func (r *Registry) Contains(id ecs.EntityID) bool {
	return r.IndexOf(id) >= 0
}

// IndexOf 返回实体下标，不存在时返回 -1
func (r *Registry) IndexOf(id ecs.EntityID) int {
	for i, m := range r.members {
		if m == id {
			return i
		}
	}
	return -1
}

// Members 返回成员快照
func (r *Registry) Members() []ecs.EntityID {
	out := make([]ecs.EntityID, len(r.members))
	copy(out, r.members)
	return out
}

// SlotPosition 计算下标 i 对应的槽位世界坐标
//
//	x = anchorMaxX + col*HorizontalSpacing
//	y = anchorMinY + row*RowHeight
//
// 锚点不可用时返回 ErrAnchorUnavailable，不会返回任何默认坐标。
func (r *Registry) SlotPosition(i int) (Point, error) {
	if i < 0 {
		return Point{}, fmt.Errorf("slot position: negative index %d", i)
	}
	if !r.anchor.Available() {
		return Point{}, fmt.Errorf("slot position %d: %w", i, ErrAnchorUnavailable)
	}
	row, col := r.layout.Cell(i)
	return Point{
		X: r.anchor.BoundsMaxX() + float64(col)*r.layout.HorizontalSpacing,
		Y: r.anchor.BoundsMinY() + float64(row)*r.layout.RowHeight,
	}, nil
}
