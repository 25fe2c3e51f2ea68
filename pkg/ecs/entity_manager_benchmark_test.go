package ecs

import (
	"fmt"
	"testing"
)

type benchPosition struct {
	X, Y float64
}

type benchClimber struct {
	State int
}

type benchCollider struct {
	Width, Height float64
}

// setupBenchmarkEntities 创建 count 个实体，其中每隔一个带碰撞盒
func setupBenchmarkEntities(count int) *EntityManager {
	em := NewEntityManager()
	for i := 0; i < count; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &benchPosition{X: float64(i)})
		AddComponent(em, id, &benchClimber{})
		if i%2 == 0 {
			AddComponent(em, id, &benchCollider{Width: 0.5, Height: 0.8})
		}
	}
	return em
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	for _, count := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("%d", count), func(b *testing.B) {
			em := setupBenchmarkEntities(count)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = GetEntitiesWith2[*benchPosition, *benchClimber](em)
			}
		})
	}
}

func BenchmarkGetEntitiesWith3(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith3[*benchPosition, *benchClimber, *benchCollider](em)
	}
}

func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := EntityID(i%1000 + 1)
		_, _ = GetComponent[*benchPosition](em, id)
	}
}

func BenchmarkCreateDestroy(b *testing.B) {
	em := NewEntityManager()
	em.OnDestroy(func(EntityID) {})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &benchPosition{})
		em.DestroyEntity(id)
		em.RemoveMarkedEntities()
	}
}
