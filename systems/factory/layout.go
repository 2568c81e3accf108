package factory

import (
	"math"

	"github.com/automoto/lab-escape/assets"
	cfg "github.com/automoto/lab-escape/config"
)

// Level art is authored against a 512px tall background; the ratios below
// place each piece relative to the viewport.
const designH = 512.0

func scaled(viewH, px float64) float64 {
	return math.Floor(viewH * px / designH)
}

// PlayerSize returns the side length of the square player for a viewport.
func PlayerSize(viewH float64) float64 {
	return math.Floor(viewH * cfg.Player.SizeRatio)
}

// StoryLayout is the single-road layout with the lab entrance past its
// right end.
func StoryLayout(viewW, viewH float64) assets.Level {
	roadW := math.Floor(viewW * 171 / 247)
	roadH := math.Floor(viewH * 171 / 247)
	roadX := 0.0
	roadY := viewH - 97 - roadH

	return assets.Level{
		Name:   "story",
		Width:  cfg.World.Width,
		Height: viewH,
		Platforms: []assets.PlatformSpawn{
			{X: roadX, Y: roadY, Width: roadW, Height: roadH, Kind: "road-1"},
		},
		Endpoint: &assets.EndpointSpawn{
			X: roadX + roadW + 50, Y: roadY - 50, Width: 100, Height: 80, Label: "LAB",
		},
		PlayerSpawn: &assets.PlayerSpawn{
			X: roadX + cfg.Player.SpawnOffsetX,
			Y: roadY - PlayerSize(viewH),
		},
	}
}

// PickupLayout is the street scene with a sign, a raised road under a house
// and four hp logos above it.
func PickupLayout(viewW, viewH float64) assets.Level {
	roadW := math.Floor(viewW * 171 / 247)
	roadH := math.Floor(viewH * 171 / 247)
	roadX := 0.0
	roadY := viewH - scaled(viewH, 93) - roadH

	kanbanH := scaled(viewH, 105)
	kanbanW := math.Floor(kanbanH * 94 / 105)
	kanbanX := scaled(viewH, 37)
	kanbanY := roadY - kanbanH

	road2H := scaled(viewH, 32)
	road2W := math.Floor(road2H * 171 / 32)
	road2X := math.Floor(viewW * 135 / designH)
	road2Y := viewH - scaled(viewH, 202) - road2H

	houseH := scaled(viewH, 221)
	houseW := math.Floor(houseH * 4 / 3)
	houseX := road2X + road2W - houseW - scaled(viewH, 33)
	houseY := road2Y - houseH

	level := assets.Level{
		Name:   "pickup",
		Width:  cfg.World.Width,
		Height: viewH,
		Platforms: []assets.PlatformSpawn{
			{X: roadX, Y: roadY, Width: roadW, Height: roadH, Kind: "road-1"},
			{X: kanbanX, Y: kanbanY, Width: kanbanW, Height: kanbanH, Kind: "road-kanban"},
			{X: road2X, Y: road2Y, Width: road2W, Height: road2H, Kind: "road-2"},
			{X: houseX, Y: houseY, Width: houseW, Height: houseH, Kind: "house-1"},
		},
		PlayerSpawn: &assets.PlayerSpawn{
			X: roadX + cfg.Player.SpawnOffsetX,
			Y: roadY - PlayerSize(viewH),
		},
	}

	logo := scaled(viewH, 41)
	spacing := scaled(viewH, 8)
	firstX := road2X + scaled(viewH, 15)
	logoY := road2Y - scaled(viewH, 121) - logo
	for i := 0; i < 4; i++ {
		level.Pickups = append(level.Pickups, assets.PickupSpawn{
			X:      firstX + float64(i)*(logo+spacing),
			Y:      logoY,
			Width:  logo,
			Height: logo,
			ID:     i,
		})
	}
	return level
}

// LayoutFor returns the built-in layout of a variant.
func LayoutFor(variant cfg.VariantID, viewW, viewH float64) assets.Level {
	if variant == cfg.VariantPickup {
		return PickupLayout(viewW, viewH)
	}
	return StoryLayout(viewW, viewH)
}

// ScaleLevel maps a level authored in map pixels onto a viewport of the
// given height. The player spawn, when present, is kept standing on the
// same spot: its bottom edge is scaled and the player's scaled size placed
// above it.
func ScaleLevel(level assets.Level, viewH float64) assets.Level {
	if level.Height <= 0 {
		return level
	}
	s := viewH / level.Height
	sc := func(v float64) float64 { return math.Floor(v * s) }

	out := assets.Level{
		Name:   level.Name,
		Width:  sc(level.Width),
		Height: viewH,
	}
	for _, p := range level.Platforms {
		out.Platforms = append(out.Platforms, assets.PlatformSpawn{
			X: sc(p.X), Y: sc(p.Y), Width: sc(p.Width), Height: sc(p.Height), Kind: p.Kind,
		})
	}
	for _, p := range level.Pickups {
		out.Pickups = append(out.Pickups, assets.PickupSpawn{
			X: sc(p.X), Y: sc(p.Y), Width: sc(p.Width), Height: sc(p.Height), ID: p.ID,
		})
	}
	if e := level.Endpoint; e != nil {
		out.Endpoint = &assets.EndpointSpawn{
			X: sc(e.X), Y: sc(e.Y), Width: sc(e.Width), Height: sc(e.Height), Label: e.Label,
		}
	}

	size := PlayerSize(viewH)
	if sp := level.PlayerSpawn; sp != nil {
		feet := sc(sp.Y + designPlayerSize(level.Height))
		out.PlayerSpawn = &assets.PlayerSpawn{X: sc(sp.X), Y: feet - size}
	} else if first, ok := firstSolid(out.Platforms); ok {
		out.PlayerSpawn = &assets.PlayerSpawn{
			X: first.X + cfg.Player.SpawnOffsetX,
			Y: first.Y - size,
		}
	}
	return out
}

// designPlayerSize is the player size in the level's own units.
func designPlayerSize(levelH float64) float64 {
	return levelH * cfg.Player.SizeRatio
}

func firstSolid(platforms []assets.PlatformSpawn) (assets.PlatformSpawn, bool) {
	for _, p := range platforms {
		if !p.Decorative() {
			return p, true
		}
	}
	return assets.PlatformSpawn{}, false
}
