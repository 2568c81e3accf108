package factory

import (
	"testing"
	"time"

	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func pickupsByID(e *ecs.ECS) map[int]*components.PickupData {
	out := map[int]*components.PickupData{}
	tags.Pickup.Each(e.World, func(entry *donburi.Entry) {
		p := components.Pickup.Get(entry)
		out[p.ID] = p
	})
	return out
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func TestBuildLevelPickupVariant(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	player := BuildLevel(e, nil, cfg.VariantPickup, 1024, 512, time.Unix(0, 0))

	game := gameOf(e)
	if game.State != cfg.GameStatePlaying {
		t.Errorf("pickup variant starts in %s, want playing", game.State)
	}
	if game.TotalPickups != 4 || game.CollectedPickups != 0 {
		t.Errorf("pickups %d/%d, want 0/4", game.CollectedPickups, game.TotalPickups)
	}
	if n := count(e, tags.Platform); n != 4 {
		t.Errorf("platforms = %d, want 4", n)
	}

	obj := components.Object.Get(player)
	if obj.W != 109 || obj.X != 50 || obj.Y != 65-109 {
		t.Errorf("player rect = %+v", obj.Rect())
	}
	if h := components.Health.Get(player); h.Current != 100 || h.Max != 100 {
		t.Errorf("health = %+v", h)
	}
	inv := components.Inventory.Get(player)
	if inv.HealthPotions != 2 || inv.Shields != 1 {
		t.Errorf("inventory = %+v", inv)
	}

	space := spaceOf(e)
	if got := len(space.Objects()); got != 4+4+1 {
		t.Errorf("space holds %d objects, want 9", got)
	}
}

func TestBuildLevelStoryVariant(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	BuildLevel(e, nil, cfg.VariantStory, 1024, 512, time.Unix(0, 0))

	if game := gameOf(e); game.State != cfg.GameStateStory {
		t.Errorf("story variant starts in %s", game.State)
	}
	if n := count(e, tags.Endpoint); n != 1 {
		t.Errorf("endpoints = %d, want 1", n)
	}
}

func TestRelayoutKeepsCollectedPickups(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	player := BuildLevel(e, nil, cfg.VariantPickup, 1024, 512, time.Unix(0, 0))
	pickupsByID(e)[2].Collected = true
	gameOf(e).CollectedPickups = 1
	components.Health.Get(player).Current = 40

	Relayout(e, 800, 600, true)

	pickups := pickupsByID(e)
	if len(pickups) != 4 {
		t.Fatalf("pickups after relayout = %d, want 4", len(pickups))
	}
	for id, p := range pickups {
		if p.Collected != (id == 2) {
			t.Errorf("pickup %d collected = %v", id, p.Collected)
		}
	}
	if gameOf(e).CollectedPickups != 1 {
		t.Errorf("collected counter = %d, want 1", gameOf(e).CollectedPickups)
	}
	if n := count(e, tags.Platform); n != 4 {
		t.Errorf("platforms after relayout = %d, want 4", n)
	}

	obj := components.Object.Get(player)
	level := PickupLayout(800, 600)
	if obj.W != 127 || obj.X != level.PlayerSpawn.X || obj.Y != level.PlayerSpawn.Y {
		t.Errorf("player not re-anchored: %+v", obj.Rect())
	}
	if components.Health.Get(player).Current != 40 {
		t.Error("relayout changed player health")
	}

	entry, _ := components.World.First(e.World)
	if w := components.World.Get(entry); w.ViewWidth != 800 || w.Height != 600 {
		t.Errorf("world = %+v", w)
	}

	Relayout(e, 800, 600, false)
	for id, p := range pickupsByID(e) {
		if p.Collected {
			t.Errorf("pickup %d still collected after reset", id)
		}
	}
	if gameOf(e).CollectedPickups != 0 {
		t.Errorf("collected counter = %d after reset", gameOf(e).CollectedPickups)
	}
}
