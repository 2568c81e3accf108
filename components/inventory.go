package components

import "github.com/yohamta/donburi"

// InventoryData holds consumables. Counts only go down during a run.
type InventoryData struct {
	HealthPotions int
	Shields       int
}

var Inventory = donburi.NewComponentType[InventoryData]()
