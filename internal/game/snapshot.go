package game

// StateType names the session state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the complete observable game state for determinism
// testing and replay comparison.
type Snapshot struct {
	Tick      uint64
	Levels    int
	Deaths    int
	PlayerX   float64
	PlayerY   float64
	Vel       int
	OnGround  bool
	AnchorX   float64
	AnchorY   float64
	GoalX     float64
	GoalY     float64
	Platforms int
	Spikes    int
	State     StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.gameOver {
		state = StateGameOver
	}

	return Snapshot{
		Tick:      g.tickCount,
		Levels:    g.levels,
		Deaths:    g.deaths,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		Vel:       g.player.Vel,
		OnGround:  g.onGround,
		AnchorX:   g.anchor.X,
		AnchorY:   g.anchor.Y,
		GoalX:     g.level.Goal.X,
		GoalY:     g.level.Goal.Y,
		Platforms: len(g.level.Platforms),
		Spikes:    len(g.level.Spikes),
		State:     state,
	}
}
