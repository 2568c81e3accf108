package systems

import (
	"testing"

	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestHealthPotion(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		potions    int
		wantUsed   bool
		wantHealth int
	}{
		{"heals", 40, 2, true, 90},
		{"caps at max", 80, 2, true, 100},
		{"not when healthy", 100, 2, false, 100},
		{"not without potions", 40, 0, false, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player := newRun(t, cfg.VariantPickup)
			components.Health.Get(player).Current = tt.health
			inv := components.Inventory.Get(player)
			inv.HealthPotions = tt.potions

			if used := UseHealthPotion(e); used != tt.wantUsed {
				t.Fatalf("used = %v, want %v", used, tt.wantUsed)
			}
			if h := components.Health.Get(player).Current; h != tt.wantHealth {
				t.Errorf("health = %d, want %d", h, tt.wantHealth)
			}
			wantPotions := tt.potions
			if tt.wantUsed {
				wantPotions--
			}
			if inv.HealthPotions != wantPotions {
				t.Errorf("potions = %d, want %d", inv.HealthPotions, wantPotions)
			}
		})
	}
}

func TestShieldUse(t *testing.T) {
	e, player := newRun(t, cfg.VariantPickup)
	inv := components.Inventory.Get(player)

	if !UseShield(e) {
		t.Fatal("first shield refused")
	}
	if !components.Player.Get(player).ShieldActive || inv.Shields != 0 {
		t.Fatalf("shield not raised: %+v", inv)
	}
	inv.Shields = 1
	if UseShield(e) {
		t.Error("raised a second shield over an active one")
	}
	if inv.Shields != 1 {
		t.Error("refused shield was consumed")
	}
}

func TestInventoryKeys(t *testing.T) {
	e, player := newRun(t, cfg.VariantPickup)
	components.Health.Get(player).Current = 30

	hold(e, ebiten.KeyH, ebiten.KeyS)
	RefreshActions(GetInput(e))
	UpdateInventory(e)
	// held keys act once
	RefreshActions(GetInput(e))
	UpdateInventory(e)

	if h := components.Health.Get(player).Current; h != 80 {
		t.Errorf("health = %d, want 80", h)
	}
	inv := components.Inventory.Get(player)
	if inv.HealthPotions != 1 || inv.Shields != 0 {
		t.Errorf("inventory = %+v", inv)
	}
	if queued(e, cfg.SoundPotion) != 1 || queued(e, cfg.SoundShield) != 1 {
		t.Error("item sounds not queued once")
	}
}
