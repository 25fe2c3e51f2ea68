package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// DestroyHook 在实体被真正移除之前同步调用
// 此时实体的组件仍然可以读取
type DestroyHook func(id EntityID)

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	destroyHooks      []DestroyHook
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// Exists 检查实体是否仍然存活（标记删除但尚未清理的实体仍视为存活）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// Count 返回当前存活的实体数量
func (em *EntityManager) Count() int {
	return len(em.components)
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	for _, pending := range em.entitiesToDestroy {
		if pending == id {
			return
		}
	}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// OnDestroy 注册实体销毁回调
//
// 回调在 RemoveMarkedEntities 中、组件被删除之前同步执行，
// 用于让其他模块（如塔注册表）及时清理对该实体的引用。
func (em *EntityManager) OnDestroy(hook DestroyHook) {
	em.destroyHooks = append(em.destroyHooks, hook)
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		if _, exists := em.components[id]; !exists {
			continue
		}
		for _, hook := range em.destroyHooks {
			hook(id)
		}
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
}

// addComponent 为实体添加组件（按组件的动态类型存储）
func (em *EntityManager) addComponent(id EntityID, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// entitiesWith 查询拥有指定组件类型组合的所有实体
// 结果按实体ID升序排列，保证系统的遍历顺序与创建顺序一致
func (em *EntityManager) entitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// ========================================
// 泛型 API
// ========================================

// AddComponent 为实体添加组件
//
// 参数:
//   - em: 实体管理器
//   - id: 实体ID
//   - component: 组件实例（通常为指针类型）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.addComponent(id, component)
}

// GetComponent 获取实体的特定类型组件
//
// 返回:
//   - T: 组件实例
//   - bool: 实体不存在或没有该组件时返回 false
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf((*T)(nil)).Elem()]
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 检查实体是否拥有特定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	compMap, exists := em.components[id]
	if !exists {
		return false
	}
	_, found := compMap[reflect.TypeOf((*T)(nil)).Elem()]
	return found
}

// GetEntitiesWith1 查询拥有组件 T1 的所有实体
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 查询同时拥有组件 T1、T2、T3 的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.entitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
