package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuiltinLab(t *testing.T) {
	level, err := NewLevelLoader().LoadLevel(BuiltinLevelPrefix + "lab")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Width != 4000 || level.Height != 512 {
		t.Errorf("size = %vx%v, want 4000x512", level.Width, level.Height)
	}
	if len(level.Platforms) != 10 {
		t.Errorf("platforms = %d, want 10", len(level.Platforms))
	}

	decorative := 0
	for _, p := range level.Platforms {
		if p.Decorative() {
			decorative++
		}
	}
	if decorative != 2 {
		t.Errorf("decorative platforms = %d, want 2", decorative)
	}

	if len(level.Pickups) != 4 {
		t.Fatalf("pickups = %d, want 4", len(level.Pickups))
	}
	for i, p := range level.Pickups {
		if p.ID != i {
			t.Errorf("pickup %d has id %d", i, p.ID)
		}
	}

	if level.Endpoint == nil || level.Endpoint.Label != "LAB" {
		t.Errorf("endpoint = %+v, want LAB", level.Endpoint)
	}
	if level.PlayerSpawn == nil || level.PlayerSpawn.X != 50 {
		t.Errorf("player spawn = %+v", level.PlayerSpawn)
	}
}

func TestBuiltinLevels(t *testing.T) {
	names := BuiltinLevels()
	found := false
	for _, n := range names {
		if n == "lab" {
			found = true
		}
	}
	if !found {
		t.Errorf("BuiltinLevels() = %v, missing lab", names)
	}
}

func TestLoadLevelErrors(t *testing.T) {
	dir := t.TempDir()
	onlyScenery := filepath.Join(dir, "scenery.tmx")
	data := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Platforms">
  <object id="1" type="house-1" x="0" y="0" width="50" height="50"/>
 </objectgroup>
</map>
`
	if err := os.WriteFile(onlyScenery, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing builtin", BuiltinLevelPrefix + "nope", nil},
		{"missing file", filepath.Join(dir, "absent.tmx"), nil},
		{"no solid platform", onlyScenery, ErrNoPlatforms},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLevelLoader().LoadLevel(tt.path)
			if err == nil {
				t.Fatal("LoadLevel succeeded, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
