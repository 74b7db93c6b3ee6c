package game

import (
	"github.com/pgalkin/skyhop/internal/config"
	"github.com/pgalkin/skyhop/internal/core"
)

// player is the single controllable body. Positions are world units with Y
// growing downward; velocity is integer with positive meaning upward, so the
// tentative next Y is the current Y minus velocity.
type player struct {
	X, Y float64
	W, H float64
	Vel  int
}

// rect returns the player's bounding box at its current position.
func (p *player) rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// stepPhysics advances the player one tick against the platform set.
// Returns whether the player ends the tick resting on a surface.
//
// Horizontal input translates at constant speed regardless of vertical
// state. Gravity decrements velocity every tick with no terminal cap.
// Landing only catches descent from above: the tentative box must overlap a
// platform while the player is moving downward-or-stationary and the current
// bottom edge is at or above the platform top. The first matching platform
// wins; there is no distance tie-break. Platform sides are intentionally
// pass-through. The world floor acts as an infinite platform and the side
// walls are hard clamps.
func stepPhysics(p *player, platforms []Platform, in core.InputFrame, bounds core.Rect, phys config.PhysicsConfig) bool {
	if in.Has(core.ActionRight) {
		p.X += phys.MoveSpeed
	}
	if in.Has(core.ActionLeft) {
		p.X -= phys.MoveSpeed
	}

	p.Vel -= phys.Gravity
	nextY := p.Y - float64(p.Vel)

	onGround := false
	next := core.NewRect(p.X, nextY, p.W, p.H)
	for _, plat := range platforms {
		if next.Intersects(plat.Rect) && p.Vel <= 0 && p.Y+p.H <= plat.Y {
			nextY = plat.Y - p.H
			p.Vel = 0
			onGround = true
			break
		}
	}

	if nextY >= bounds.Bottom()-p.H {
		nextY = bounds.Bottom() - p.H
		p.Vel = 0
		onGround = true
	}

	if in.Has(core.ActionJump) && onGround {
		p.Vel = phys.JumpVelocity
	}

	p.X = core.ClampF(p.X, bounds.X, bounds.Right()-p.W)
	p.Y = nextY

	return onGround
}
