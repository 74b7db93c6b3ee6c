package game

import (
	"math/rand"

	"github.com/pgalkin/skyhop/internal/config"
	"github.com/pgalkin/skyhop/internal/core"
)

// Game is the session state machine. It owns the single player, the current
// level, and the death/level counters, and advances everything one tick at a
// time. The platform layer drives Step at a fixed rate and renders whatever
// Render draws into the screen buffer.
type Game struct {
	conf    config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand
	gen     *Generator

	player   player
	level    Level
	anchor   core.Point // Last respawn point; survives level transitions
	onGround bool

	deaths    int
	levels    int
	gameOver  bool
	paused    bool
	tickCount uint64
}

// New creates a game with the given tunables.
func New(conf config.Config) *Game {
	return &Game{conf: conf}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyhop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Hop"
}

// Reset initializes or restarts a session. The RuntimeConfig supplies the
// RNG seed and may override the configured world extent.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	if g.runtime.WorldW <= 0 {
		g.runtime.WorldW = g.conf.World.Width
	}
	if g.runtime.WorldH <= 0 {
		g.runtime.WorldH = g.conf.World.Height
	}

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.gen = NewGenerator(g.conf.Generator, g.conf.Player, g.rng)

	g.player = player{W: g.conf.Player.Width, H: g.conf.Player.Height}
	g.anchor = core.Point{}
	g.deaths = 0
	g.levels = 0
	g.gameOver = false
	g.paused = false
	g.onGround = false
	g.tickCount = 0

	g.generateLevel()
}

// bounds returns the world rectangle the simulation runs in.
func (g *Game) bounds() core.Rect {
	return core.NewRect(0, 0, g.runtime.WorldW, g.runtime.WorldH)
}

// generateLevel replaces the whole level object set and moves the player to
// the spawn point. Velocity is deliberately left alone; the anchor only
// changes when generation picks a new spawn.
func (g *Game) generateLevel() {
	g.level = g.gen.Generate(g.levels, g.anchor, g.bounds())
	g.anchor = g.level.Spawn
	g.player.X = g.level.Spawn.X
	g.player.Y = g.level.Spawn.Y
}

// Step advances the simulation by one fixed tick. Order within a tick:
// physics, then the goal check (which regenerates the level), then the first
// spike hit. Ticks are no-ops once the session is over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.onGround = stepPhysics(&g.player, g.level.Platforms, in, g.bounds(), g.conf.Physics)

	if g.level.Goal.Touches(g.player.rect()) {
		g.levels++
		g.generateLevel()
	}

	for _, s := range g.level.Spikes {
		if g.player.rect().Intersects(s.Bounds()) {
			g.deaths++
			// Teleport to the anchor. Velocity is not reset, matching the
			// observed behaviour: a fast fall carries into the respawn tick.
			g.player.X = g.anchor.X
			g.player.Y = g.anchor.Y
			break
		}
	}

	if g.deaths >= g.conf.Gameplay.Lives {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current session state for the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		LevelsWon: g.levels,
		LivesLeft: g.conf.Gameplay.Lives - g.deaths,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}

// Level returns the current level layout.
func (g *Game) Level() Level {
	return g.level
}
