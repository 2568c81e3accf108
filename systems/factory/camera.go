package factory

import (
	"github.com/automoto/lab-escape/archetypes"
	"github.com/automoto/lab-escape/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
