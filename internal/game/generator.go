package game

import (
	"math"
	"math/rand"

	"github.com/pgalkin/skyhop/internal/config"
	"github.com/pgalkin/skyhop/internal/core"
)

// Spike triangle dimensions, tied to the platform surface.
const (
	spikeWidth  = 20.0
	spikeHeight = 10.0
)

// Generator builds level layouts. All randomness comes from the supplied
// seeded source so identical seeds produce identical campaigns.
type Generator struct {
	cfg     config.GeneratorConfig
	playerW float64
	playerH float64
	rng     *rand.Rand
}

// NewGenerator creates a generator with the given parameters.
func NewGenerator(cfg config.GeneratorConfig, player config.PlayerConfig, rng *rand.Rand) *Generator {
	return &Generator{
		cfg:     cfg,
		playerW: player.Width,
		playerH: player.Height,
		rng:     rng,
	}
}

// Generate produces the layout for the given level index within bounds.
// anchor is the player's current respawn point; the zero point (or index 0)
// selects the bootstrap layout.
func (g *Generator) Generate(index int, anchor core.Point, bounds core.Rect) Level {
	if index == 0 || anchor == (core.Point{}) {
		return g.bootstrap(index, bounds)
	}
	return g.generate(index, anchor, bounds)
}

// bootstrap builds the fixed first layout: spawn at the bottom center with
// one platform directly beneath, goal a short walk to the left.
func (g *Generator) bootstrap(index int, bounds core.Rect) Level {
	spawn := core.Point{
		X: bounds.X + bounds.W/2,
		Y: bounds.Bottom() - g.playerH,
	}

	goal := Goal{
		X:        spawn.X - 100,
		Y:        bounds.Bottom() - 50,
		Diameter: g.cfg.GoalDiameter,
	}

	// Platform centered under the spawn point, guaranteeing footing.
	base := Platform{core.NewRect(
		spawn.X-(g.cfg.BasePlatformWidth-g.playerW)/2,
		spawn.Y+g.playerH,
		g.cfg.BasePlatformWidth,
		g.cfg.PlatformHeight,
	)}

	return Level{
		Index:     index,
		Spawn:     spawn,
		Goal:      goal,
		Platforms: []Platform{base},
	}
}

// generate builds a random layout: a distant goal in the top half, a column
// of path platforms between spawn and goal height, and a few safe platforms
// near the goal.
func (g *Generator) generate(index int, anchor core.Point, bounds core.Rect) Level {
	spawn := anchor

	// Sample the goal over the full width and the top half of the world,
	// far enough from spawn that every level requires traversal.
	var goalPos core.Point
	for attempt := 0; ; attempt++ {
		goalPos = core.Point{
			X: bounds.X + g.rng.Float64()*bounds.W,
			Y: bounds.Y + g.rng.Float64()*bounds.H/2,
		}
		if spawn.Dist(goalPos) >= g.cfg.MinGoalDistance || attempt >= g.cfg.MaxAttempts {
			break
		}
	}

	lvl := Level{
		Index: index,
		Spawn: spawn,
		Goal:  Goal{X: goalPos.X, Y: goalPos.Y, Diameter: g.cfg.GoalDiameter},
	}

	// Path platforms in evenly spaced vertical bands between spawn and goal
	// height, so density scales with the vertical gap.
	n := g.cfg.PathPlatforms
	stepY := (spawn.Y - goalPos.Y) / float64(n)
	for i := 0; i < n; i++ {
		y := spawn.Y - float64(i)*stepY

		// Resample X until the platform leaves the spawn exclusion zone,
		// so nothing blocks the player's first steps.
		var x float64
		for attempt := 0; ; attempt++ {
			x = bounds.X + g.rng.Float64()*(bounds.W-g.cfg.PlatformWidth)
			excluded := math.Abs(x-spawn.X) < g.cfg.ExclusionWidth &&
				math.Abs(y-spawn.Y) < g.cfg.ExclusionHeight
			if !excluded || attempt >= g.cfg.MaxAttempts {
				break
			}
		}

		lvl.Platforms = append(lvl.Platforms, Platform{
			core.NewRect(x, y, g.cfg.PlatformWidth, g.cfg.PlatformHeight),
		})

		if g.rng.Intn(100) < g.cfg.SpikeChance {
			lvl.Spikes = append(lvl.Spikes, g.spikeOn(x, y))
		}
	}

	// A few extra platforms scattered below the goal to ease landing.
	count := g.cfg.SafeMinCount
	if spread := g.cfg.SafeMaxCount - g.cfg.SafeMinCount; spread > 0 {
		count += g.rng.Intn(spread + 1)
	}
	for i := 0; i < count; i++ {
		px := goalPos.X + (g.rng.Float64()*2-1)*g.cfg.SafeSpreadX
		py := goalPos.Y + g.cfg.SafeDropMin + g.rng.Float64()*(g.cfg.SafeDropMax-g.cfg.SafeDropMin)
		px = core.ClampF(px, bounds.X, bounds.Right()-g.cfg.PlatformWidth)
		py = core.ClampF(py, bounds.Y, bounds.Bottom()-g.cfg.PlatformHeight)

		lvl.Platforms = append(lvl.Platforms, Platform{
			core.NewRect(px, py, g.cfg.PlatformWidth, g.cfg.PlatformHeight),
		})
	}

	return lvl
}

// spikeOn places a spike triangle on top of the platform at (x, y), offset
// a random amount from the platform's left edge.
func (g *Generator) spikeOn(x, y float64) Spike {
	off := g.cfg.SpikeMinOffset + g.rng.Float64()*(g.cfg.SpikeMaxOffset-g.cfg.SpikeMinOffset)
	left := x + off
	return Spike{Tri: core.Triangle{P: [3]core.Point{
		{X: left + spikeWidth/2, Y: y - spikeHeight}, // apex
		{X: left, Y: y},
		{X: left + spikeWidth, Y: y},
	}}}
}
