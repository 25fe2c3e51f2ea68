package components

// RigidbodyConstraints 刚体约束
type RigidbodyConstraints int

const (
	// ConstraintNone 不冻结
	ConstraintNone RigidbodyConstraints = iota
	// ConstraintFreezeRotation 仅冻结旋转（跳跃中）
	ConstraintFreezeRotation
	// ConstraintFreezeAll 冻结平移和旋转（已叠塔）
	ConstraintFreezeAll
)

// RigidbodyComponent 刚体组件
// PhysicsSystem 只对未冻结的分量积分速度
type RigidbodyComponent struct {
	Constraints RigidbodyConstraints
}

// FreezesTranslation 是否冻结平移
func (r *RigidbodyComponent) FreezesTranslation() bool {
	return r.Constraints == ConstraintFreezeAll
}

// FreezesRotation 是否冻结旋转
func (r *RigidbodyComponent) FreezesRotation() bool {
	return r.Constraints != ConstraintNone
}
