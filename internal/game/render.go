package game

import (
	"fmt"

	"github.com/pgalkin/skyhop/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlatformChar = '▀'
	SpikeChar    = '▲'
	GoalChar     = '◉'
	FloorChar    = '═'
)

// Minimum terminal size the projection stays readable at.
const (
	minScreenW = 40
	minScreenH = 12
)

// Render draws the current state into the screen buffer. The world is
// projected onto however many cells are available, so terminal size changes
// fidelity, never physics.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	sx := float64(dst.Width()) / g.runtime.WorldW
	sy := float64(dst.Height()-1) / g.runtime.WorldH // Bottom row is the floor

	// Floor
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), FloorChar, core.ColorGray)

	for _, p := range g.level.Platforms {
		w := core.Max(1, int(p.W*sx))
		dst.DrawHLine(int(p.X*sx), int(p.Y*sy), w, PlatformChar, core.ColorGray)
	}

	for _, s := range g.level.Spikes {
		b := s.Bounds()
		c := b.Center()
		dst.SetC(int(c.X*sx), int(b.Y*sy), SpikeChar, core.ColorBrightRed)
	}

	goal := g.level.Goal.Center()
	dst.SetC(int(goal.X*sx), int(goal.Y*sy), GoalChar, core.ColorBrightYellow)

	pw := core.Max(1, int(g.player.W*sx))
	ph := core.Max(1, int(g.player.H*sy))
	dst.FillRect(int(g.player.X*sx), int(g.player.Y*sy), pw, ph, PlayerChar, core.ColorBrightBlue)

	// HUD
	hud := fmt.Sprintf(" Lives left: %d   Levels won: %d ", g.conf.Gameplay.Lives-g.deaths, g.levels)
	dst.DrawText(1, 0, hud, core.ColorBrightWhite)

	if g.paused && !g.gameOver {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		drawCenteredMessage(dst,
			"Game Over!",
			fmt.Sprintf("You passed %d levels.  |  Press R to restart", g.levels))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
