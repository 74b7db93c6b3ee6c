package core

import "testing"

func TestInputFrame(t *testing.T) {
	in := NewInputFrame()
	if in.Has(ActionJump) {
		t.Error("new frame should have no actions")
	}

	in.Set(ActionJump)
	in.Set(ActionLeft)
	if !in.Has(ActionJump) || !in.Has(ActionLeft) {
		t.Error("set actions should be reported")
	}
	if in.Has(ActionRight) {
		t.Error("unset action reported as set")
	}

	clone := in.Clone()
	in.Clear()
	if in.Has(ActionJump) {
		t.Error("cleared frame should have no actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("clone should be independent of the original")
	}
}

func TestHeldKeysExpiry(t *testing.T) {
	h := NewHeldKeys(3)

	h.Press(ActionRight)
	if !h.Held(ActionRight) {
		t.Fatal("action should be held immediately after press")
	}

	// The latch survives the ticks strictly before the expiry tick
	for i := 0; i < 2; i++ {
		h.Advance()
		if !h.Held(ActionRight) {
			t.Fatalf("action released too early, after %d advances", i+1)
		}
	}

	h.Advance()
	if h.Held(ActionRight) {
		t.Error("action should expire after holdTicks passes without a repeat")
	}
}

func TestHeldKeysRefresh(t *testing.T) {
	h := NewHeldKeys(2)

	h.Press(ActionLeft)
	h.Advance()
	// Auto-repeat arrives before the latch lapses
	h.Press(ActionLeft)
	h.Advance()
	if !h.Held(ActionLeft) {
		t.Error("repeated press should extend the hold window")
	}
	h.Advance()
	if h.Held(ActionLeft) {
		t.Error("hold should lapse once repeats stop")
	}
}

func TestHeldKeysFrame(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(ActionRight)
	h.Press(ActionJump)

	in := h.Frame()
	if !in.Has(ActionRight) || !in.Has(ActionJump) {
		t.Error("frame should carry all held actions")
	}
	if in.Has(ActionLeft) {
		t.Error("frame carries an action that was never pressed")
	}

	h.Reset()
	if h.Held(ActionRight) || h.Held(ActionJump) {
		t.Error("reset should release everything")
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() == "" {
		t.Error("actions should have names")
	}
	if ActionLeft.String() == ActionRight.String() {
		t.Error("distinct actions should have distinct names")
	}
}
