package factory

import (
	"time"

	"github.com/automoto/lab-escape/archetypes"
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y, size float64, variant cfg.VariantID, now time.Time) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))

	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.FacingRight,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Inventory.SetValue(player, components.InventoryData{
		HealthPotions: cfg.Inventory.HealthPotions,
		Shields:       cfg.Inventory.Shields,
	})
	components.Animation.SetValue(player, GenerateAnimations(variant, now))

	return player
}
