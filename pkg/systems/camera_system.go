package systems

import (
	"github.com/dochi486/ZombieDefence/pkg/components"
	"github.com/dochi486/ZombieDefence/pkg/ecs"
	"github.com/dochi486/ZombieDefence/pkg/utils"
)

// CameraSystem 镜头水平跟随目标实体
// 每帧按固定比例插值，只影响 X 坐标
type CameraSystem struct {
	em *ecs.EntityManager
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(em *ecs.EntityManager) *CameraSystem {
	return &CameraSystem{em: em}
}

// Update 更新所有镜头
func (cs *CameraSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CameraComponent](cs.em) {
		cam, _ := ecs.GetComponent[*components.CameraComponent](cs.em, id)
		target, ok := ecs.GetComponent[*components.PositionComponent](cs.em, cam.Target)
		if !ok {
			continue
		}
		cam.X = utils.Lerp(cam.X, target.X+cam.OffsetX, cam.Lerp)
	}
}
