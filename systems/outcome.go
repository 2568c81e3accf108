package systems

import (
	"github.com/automoto/lab-escape/components"
	cfg "github.com/automoto/lab-escape/config"
	"github.com/automoto/lab-escape/gamemath"
	"github.com/automoto/lab-escape/systems/factory"
	"github.com/automoto/lab-escape/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEndpoint ends the run successfully once the player touches the
// endpoint.
func UpdateEndpoint(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	endpointEntry, ok := tags.Endpoint.First(e.World)
	if !ok {
		return
	}
	endpoint := components.Endpoint.Get(endpointEntry)
	if endpoint.Reached {
		return
	}
	player := components.Object.Get(playerEntry).Rect()
	if !gamemath.Overlaps(player, components.Object.Get(endpointEntry).Rect()) {
		return
	}
	endpoint.Reached = true
	EndRun(e, cfg.OutcomeSuccess)
}

// TakeDamage hurts the player. An active shield absorbs the hit.
func TakeDamage(e *ecs.ECS, amount int) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	ApplyDamage(e, playerEntry, amount, false)
}

// ApplyDamage lowers the player's health, clamped at zero. Unless
// bypassShield is set, an active shield takes the hit instead and breaks
// after absorbing its configured number of hits. Reaching zero health
// always ends the run as a failure.
func ApplyDamage(e *ecs.ECS, playerEntry *donburi.Entry, amount int, bypassShield bool) {
	if amount <= 0 {
		return
	}
	player := components.Player.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	if player.ShieldActive && !bypassShield {
		player.ShieldHits++
		if player.ShieldHits >= cfg.Inventory.ShieldHits {
			player.ShieldActive = false
			QueueSFX(e, cfg.SoundShieldBreak)
		}
		return
	}

	health.Current -= amount
	if health.Current > 0 {
		return
	}
	health.Current = 0
	EndRun(e, cfg.OutcomeFailure)
}

// EndRun moves the run to the ended state. Ending an already ended run is
// ignored.
func EndRun(e *ecs.ECS, outcome cfg.OutcomeID) {
	game := GetGame(e)
	if game == nil || game.State == cfg.GameStateEnded {
		return
	}
	if err := game.End(outcome); err != nil {
		log.Warn("cannot end run", "state", game.State, "err", err)
		return
	}
	log.Info("run ended", "outcome", outcome, "pickups", game.CollectedPickups)
	// a key pressed on the final tick must not dismiss the ending
	ClearInput(getOrCreateInput(e))
	if outcome == cfg.OutcomeSuccess {
		QueueSFX(e, cfg.SoundWin)
	} else {
		QueueSFX(e, cfg.SoundLose)
	}
}

// UpdateStory pages through the intro and starts the run after the last
// page.
func UpdateStory(e *ecs.ECS) {
	game := GetGame(e)
	if game == nil || game.State != cfg.GameStateStory {
		return
	}
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionConfirm).JustPressed && !GetAction(input, cfg.ActionJump).JustPressed {
		return
	}
	AdvanceStory(e)
}

// AdvanceStory shows the next story page, or starts playing from the last
// one.
func AdvanceStory(e *ecs.ECS) {
	game := GetGame(e)
	if game == nil || game.State != cfg.GameStateStory {
		return
	}
	if game.StoryPage < len(cfg.Story.Pages)-1 {
		game.StoryPage++
		return
	}
	if err := game.Transition(cfg.GameStatePlaying); err != nil {
		log.Warn("cannot start run", "err", err)
		return
	}
	// keys used to page through the story must not leak into the run
	ClearInput(getOrCreateInput(e))
}

// UpdateEnding restarts the run from the ending screen.
func UpdateEnding(e *ecs.ECS) {
	game := GetGame(e)
	if game == nil || game.State != cfg.GameStateEnded {
		return
	}
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionConfirm).JustPressed || GetAction(input, cfg.ActionJump).JustPressed {
		Restart(e)
	}
}

// Restart fully resets the run: player, animation, inventory, camera,
// pickups, held keys and the level layout. The story variant goes back to
// the first story page.
func Restart(e *ecs.ECS) {
	game := GetGame(e)
	if game == nil {
		return
	}
	if err := game.Transition(game.RestartState()); err != nil {
		log.Warn("cannot restart", "err", err)
		return
	}
	game.StoryPage = 0
	game.CollectedPickups = 0

	now := GetClock(e).Now
	if playerEntry, ok := tags.Player.First(e.World); ok {
		components.Player.SetValue(playerEntry, components.PlayerData{Facing: cfg.FacingRight})
		components.Physics.SetValue(playerEntry, components.PhysicsData{})
		components.Health.SetValue(playerEntry, components.HealthData{
			Current: cfg.Player.Health,
			Max:     cfg.Player.Health,
		})
		components.Inventory.SetValue(playerEntry, components.InventoryData{
			HealthPotions: cfg.Inventory.HealthPotions,
			Shields:       cfg.Inventory.Shields,
		})
		components.Animation.SetValue(playerEntry, factory.GenerateAnimations(game.Variant, now))
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.SetValue(cameraEntry, components.CameraData{})
	}
	ClearInput(getOrCreateInput(e))

	world := getWorld(e)
	factory.Relayout(e, world.ViewWidth, world.ViewHeight, false)
	log.Info("run restarted", "state", game.State)
}
