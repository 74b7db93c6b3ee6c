package game

import (
	"testing"

	"github.com/pgalkin/skyhop/internal/config"
	"github.com/pgalkin/skyhop/internal/core"
)

func testPhysics() config.PhysicsConfig {
	return config.Default().Physics
}

func TestGravityAccumulates(t *testing.T) {
	p := player{X: 500, Y: 100, W: 20, H: 20}
	bounds := worldBounds()

	// No platforms: velocity drops by one every tick with no cap
	for i := 1; i <= 5; i++ {
		stepPhysics(&p, nil, core.NewInputFrame(), bounds, testPhysics())
		if p.Vel != -i {
			t.Fatalf("after tick %d: vel = %d, want %d", i, p.Vel, -i)
		}
	}
	// Fall distance is the sum 1+2+3+4+5
	if p.Y != 115 {
		t.Errorf("y = %v, want 115", p.Y)
	}
}

func TestHorizontalMovement(t *testing.T) {
	bounds := worldBounds()
	floor := bounds.Bottom() - 20

	p := player{X: 500, Y: floor, W: 20, H: 20}
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		stepPhysics(&p, nil, in, bounds, testPhysics())
	}
	if p.X != 570 {
		t.Errorf("x after 10 ticks right = %v, want 570", p.X)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 3; i++ {
		stepPhysics(&p, nil, in, bounds, testPhysics())
	}
	if p.X != 549 {
		t.Errorf("x after 3 ticks left = %v, want 549", p.X)
	}
}

func TestWallClamp(t *testing.T) {
	bounds := worldBounds()
	floor := bounds.Bottom() - 20

	p := player{X: 950, Y: floor, W: 20, H: 20}
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 20; i++ {
		stepPhysics(&p, nil, in, bounds, testPhysics())
	}
	if p.X != 980 {
		t.Errorf("x = %v, want clamp at 980", p.X)
	}

	p.X = 30
	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	for i := 0; i < 20; i++ {
		stepPhysics(&p, nil, in, bounds, testPhysics())
	}
	if p.X != 0 {
		t.Errorf("x = %v, want clamp at 0", p.X)
	}
}

func TestFloorStopsFall(t *testing.T) {
	bounds := worldBounds()
	p := player{X: 500, Y: 470, W: 20, H: 20}

	for i := 0; i < 10; i++ {
		onGround := stepPhysics(&p, nil, core.NewInputFrame(), bounds, testPhysics())
		if p.Y > bounds.Bottom()-20 {
			t.Fatalf("tick %d: y = %v, below the floor", i, p.Y)
		}
		if p.Y == bounds.Bottom()-20 {
			if !onGround {
				t.Fatal("resting on the floor should report grounded")
			}
			if p.Vel != 0 {
				t.Fatalf("vel = %d on the floor, want 0", p.Vel)
			}
			return
		}
	}
	t.Fatal("player never reached the floor")
}

func TestLandingOnPlatform(t *testing.T) {
	bounds := worldBounds()
	platforms := []Platform{{core.NewRect(480, 300, 80, 10)}}

	p := player{X: 500, Y: 250, W: 20, H: 20}
	grounded := false
	for i := 0; i < 60; i++ {
		if stepPhysics(&p, platforms, core.NewInputFrame(), bounds, testPhysics()) {
			grounded = true
			break
		}
	}
	if !grounded {
		t.Fatal("falling player never landed on the platform")
	}
	if p.Y != 280 {
		t.Errorf("y = %v, want snapped to 280 (platform top minus height)", p.Y)
	}
	if p.Vel != 0 {
		t.Errorf("vel = %d after landing, want 0", p.Vel)
	}

	// At rest the landing holds tick after tick
	for i := 0; i < 5; i++ {
		if !stepPhysics(&p, platforms, core.NewInputFrame(), bounds, testPhysics()) {
			t.Fatal("player resting on a platform should stay grounded")
		}
	}
	if p.Y != 280 {
		t.Errorf("y drifted to %v while at rest", p.Y)
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	bounds := worldBounds()
	phys := testPhysics()
	floor := bounds.Bottom() - 20

	p := player{X: 500, Y: floor, W: 20, H: 20}
	in := core.NewInputFrame()
	in.Set(core.ActionJump)

	stepPhysics(&p, nil, in, bounds, phys)
	if p.Vel != phys.JumpVelocity {
		t.Fatalf("vel after grounded jump = %d, want %d", p.Vel, phys.JumpVelocity)
	}

	// Mid-air jump input must not add impulse
	stepPhysics(&p, nil, in, bounds, phys)
	if p.Vel != phys.JumpVelocity-phys.Gravity {
		t.Errorf("vel after airborne jump input = %d, want %d",
			p.Vel, phys.JumpVelocity-phys.Gravity)
	}
}

func TestPlatformSidesArePassThrough(t *testing.T) {
	bounds := worldBounds()
	platforms := []Platform{{core.NewRect(520, 400, 80, 10)}}

	// Player level with the platform, moving right into its side
	p := player{X: 490, Y: 395, W: 20, H: 20}
	in := core.NewInputFrame()
	in.Set(core.ActionRight)

	// Upward velocity keeps the landing predicate false
	p.Vel = 30
	stepPhysics(&p, platforms, in, bounds, testPhysics())
	if p.X != 497 {
		t.Errorf("x = %v, want 497: sides must not block horizontal motion", p.X)
	}
}

func TestNoLandingFromBelow(t *testing.T) {
	bounds := worldBounds()
	platforms := []Platform{{core.NewRect(480, 300, 80, 10)}}

	// Player under the platform moving up through it
	p := player{X: 500, Y: 330, W: 20, H: 20, Vel: 15}
	for i := 0; i < 3; i++ {
		if stepPhysics(&p, platforms, core.NewInputFrame(), bounds, testPhysics()) {
			t.Fatal("rising player must pass through the platform from below")
		}
	}
	if p.Y >= 330 {
		t.Errorf("y = %v, player should have moved up", p.Y)
	}
}

func TestFirstPlatformWins(t *testing.T) {
	bounds := worldBounds()
	// Two overlapping candidates at different heights; slice order decides
	platforms := []Platform{
		{core.NewRect(480, 305, 80, 10)},
		{core.NewRect(480, 300, 80, 10)},
	}

	p := player{X: 500, Y: 250, W: 20, H: 20}
	for i := 0; i < 60; i++ {
		if stepPhysics(&p, platforms, core.NewInputFrame(), bounds, testPhysics()) {
			break
		}
	}
	if p.Y != 285 {
		t.Errorf("y = %v, want 285: the first matching platform takes the landing", p.Y)
	}
}
