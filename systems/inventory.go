package systems

import (
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInventory uses an item on the key press that asked for it.
func UpdateInventory(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionUsePotion).JustPressed {
		UseHealthPotion(e)
	}
	if GetAction(input, cfg.ActionUseShield).JustPressed {
		UseShield(e)
	}
}

// UseHealthPotion drinks a potion if one is left and the player is hurt.
// It reports whether the potion was used.
func UseHealthPotion(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	inv := components.Inventory.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	if inv.HealthPotions <= 0 || health.Current >= health.Max {
		return false
	}
	inv.HealthPotions--
	health.Current = min(health.Max, health.Current+cfg.Inventory.PotionHeal)
	QueueSFX(e, cfg.SoundPotion)
	return true
}

// UseShield raises a shield if one is left and none is active. It reports
// whether the shield was used.
func UseShield(e *ecs.ECS) bool {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	inv := components.Inventory.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	if inv.Shields <= 0 || player.ShieldActive {
		return false
	}
	inv.Shields--
	player.ShieldActive = true
	player.ShieldHits = 0
	QueueSFX(e, cfg.SoundShield)
	return true
}
