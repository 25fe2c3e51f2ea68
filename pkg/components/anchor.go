package components

// AnchorComponent 标记叠塔的锚点实体（卡车）
type AnchorComponent struct{}

// PatrolComponent 沿路径点循环巡逻
type PatrolComponent struct {
	Speed           float64      // 移动速度（米/秒）
	Points          [][2]float64 // 路径点
	TargetIndex     int          // 当前目标路径点
	ArriveThreshold float64      // 距离小于该值视为到达
}
