package components

// SpawnerComponent 固定间隔生成僵尸
type SpawnerComponent struct {
	Interval float64 // 生成间隔（秒）
	Timer    float64 // 距离下次生成的剩余时间，<= 0 时生成
	X, Y     float64 // 生成点
	MaxAlive int     // 场上行走中僵尸上限，0 表示不限
	Spawned  int     // 已生成数量
}
