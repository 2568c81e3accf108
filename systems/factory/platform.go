package factory

import (
	"github.com/automoto/lab-escape/archetypes"
	"github.com/automoto/lab-escape/assets"
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, spawn assets.PlatformSpawn, index int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	decorative := spawn.Decorative()
	tag := tags.ResolvSolid
	if decorative {
		tag = tags.ResolvDecorative
	}
	object := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tag)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	components.Platform.SetValue(platform, components.PlatformData{
		Kind:       spawn.Kind,
		Decorative: decorative,
		Index:      index,
	})

	return platform
}

// CreatePickup creates an uncollected pickup. Its sprite bobs up and down
// using a *gween.Sequence; the collision box stays put.
func CreatePickup(ecs *ecs.ECS, spawn assets.PickupSpawn) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	object := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvPickup)
	object.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: object})
	components.Pickup.SetValue(pickup, components.PickupData{ID: spawn.ID})

	bob := float32(cfg.Render.PickupBob)
	secs := cfg.Render.PickupBobSecs
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -bob, secs, ease.InOutSine),
		gween.New(-bob, 0, secs, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Tween.Set(pickup, tw)

	return pickup
}

func CreateEndpoint(ecs *ecs.ECS, spawn assets.EndpointSpawn) *donburi.Entry {
	endpoint := archetypes.Endpoint.Spawn(ecs)

	object := resolv.NewObject(spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvEndpoint)
	object.Data = endpoint
	components.Object.SetValue(endpoint, components.ObjectData{Object: object})
	components.Endpoint.SetValue(endpoint, components.EndpointData{Label: spawn.Label})

	return endpoint
}
