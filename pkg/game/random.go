package game

import (
	"math/rand"
	"time"
)

// RandSource 基于 math/rand 的 tower.RandomSource 实现
// 相同种子产生相同的跳跃判定序列
type RandSource struct {
	r *rand.Rand
}

// NewRandSource 创建随机数源，seed 为 0 时使用当前时间
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{r: rand.New(rand.NewSource(seed))}
}

// Uniform01 返回 [0,1) 内的均匀随机数
func (s *RandSource) Uniform01() float64 {
	return s.r.Float64()
}
