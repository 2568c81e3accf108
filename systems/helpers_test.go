package systems

import (
	"testing"
	"time"

	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var testStart = time.Unix(1000, 0)

const tick = 16 * time.Millisecond

// newRun builds the code layout of a variant in a 1024x512 viewport.
func newRun(t *testing.T, variant cfg.VariantID) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	cfg.SetDefaults()
	e := ecs.NewECS(donburi.NewWorld())
	player := factory.BuildLevel(e, nil, variant, 1024, 512, testStart)
	return e, player
}

// step runs one playing tick the way the scene orders it.
func step(e *ecs.ECS, dt time.Duration) {
	SetClock(e, GetClock(e).Now.Add(dt))
	RefreshActions(GetInput(e))
	WithPlayingCheck(UpdatePlayer)(e)
	WithPlayingCheck(UpdateCamera)(e)
	WithPlayingCheck(UpdateCollisions)(e)
	WithPlayingCheck(UpdateEndpoint)(e)
}

func hold(e *ecs.ECS, keys ...ebiten.Key) {
	input := GetInput(e)
	for _, k := range keys {
		PressKey(input, k)
	}
}

func release(e *ecs.ECS, keys ...ebiten.Key) {
	input := GetInput(e)
	for _, k := range keys {
		ReleaseKey(input, k)
	}
}

func queued(e *ecs.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == id {
			n++
		}
	}
	return n
}

// startStory pages through the intro of a story run.
func startStory(t *testing.T, e *ecs.ECS) {
	t.Helper()
	for range cfg.Story.Pages {
		AdvanceStory(e)
	}
	if !IsPlaying(e) {
		t.Fatalf("story did not start the run, state %s", GetGame(e).State)
	}
}
