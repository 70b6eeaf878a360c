package player

import (
	"testing"

	"github.com/ardentis/runeway/internal/config"
	"github.com/ardentis/runeway/internal/core"
)

const dt = 1.0 / 60.0

func newTestPlayer() *Player {
	cfg := config.Default()
	return New(&cfg)
}

func TestStartsGroundedInCenter(t *testing.T) {
	p := newTestPlayer()
	if p.Lane() != 0 {
		t.Errorf("Expected center lane, got %d", p.Lane())
	}
	if !p.Grounded() {
		t.Error("Expected grounded start")
	}
	pos := p.Position()
	if pos.X != 0 || pos.Y != 0 || pos.Z != 0 {
		t.Errorf("Expected origin position, got %+v", pos)
	}
}

func TestLaneSwitchClampsToCorridor(t *testing.T) {
	p := newTestPlayer()
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)

	// Three lanes: indices -1..1
	for i := 0; i < 5; i++ {
		p.Apply(in, 3)
	}
	if p.Lane() != -1 {
		t.Errorf("Expected clamp at lane -1, got %d", p.Lane())
	}

	in.Clear()
	in.Set(core.ActionRight)
	for i := 0; i < 5; i++ {
		p.Apply(in, 3)
	}
	if p.Lane() != 1 {
		t.Errorf("Expected clamp at lane 1, got %d", p.Lane())
	}
}

func TestLateralMotionEasesTowardLane(t *testing.T) {
	p := newTestPlayer()
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	p.Apply(in, 3)

	prev := p.Position().X
	for i := 0; i < 60; i++ {
		p.Update(dt)
		x := p.Position().X
		if x < prev {
			t.Fatalf("Lateral motion reversed: %v after %v", x, prev)
		}
		prev = x
	}

	cfg := config.Default()
	target := cfg.Physics.LaneWidth
	if core.AbsF(prev-target) > 0.1 {
		t.Errorf("Expected position near %v after easing, got %v", target, prev)
	}
}

func TestJumpOnlyWhileGrounded(t *testing.T) {
	p := newTestPlayer()
	in := core.NewInputFrame()
	in.Set(core.ActionJump)

	p.Apply(in, 3)
	if p.Grounded() {
		t.Fatal("Jump did not leave the ground")
	}
	p.Update(dt)
	vyAfterFirst := p.vy

	// A second jump mid-air must not re-impulse
	p.Apply(in, 3)
	if p.vy > vyAfterFirst {
		t.Error("Mid-air jump re-applied the impulse")
	}
}

func TestJumpArcReturnsToGround(t *testing.T) {
	p := newTestPlayer()
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	p.Apply(in, 3)

	peak := 0.0
	for i := 0; i < 600; i++ {
		p.Update(dt)
		if h := p.Height(); h > peak {
			peak = h
		}
		if p.Grounded() {
			break
		}
	}

	if !p.Grounded() {
		t.Fatal("Player never landed")
	}
	if p.Height() != 0 {
		t.Errorf("Landed at height %v", p.Height())
	}
	if peak <= 1.0 {
		t.Errorf("Jump peak %v too low to clear anything", peak)
	}
}

func TestClampToCorridorAfterNarrowing(t *testing.T) {
	p := newTestPlayer()
	in := core.NewInputFrame()
	in.Set(core.ActionRight)

	// Walk out to lane 3 in a 7-lane corridor
	for i := 0; i < 3; i++ {
		p.Apply(in, 7)
	}
	if p.Lane() != 3 {
		t.Fatalf("Expected lane 3, got %d", p.Lane())
	}

	p.ClampToCorridor(3)
	if p.Lane() != 1 {
		t.Errorf("Expected clamp to lane 1, got %d", p.Lane())
	}
}

func TestResetRecenters(t *testing.T) {
	p := newTestPlayer()
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionJump)
	p.Apply(in, 5)
	for i := 0; i < 10; i++ {
		p.Update(dt)
	}

	p.Reset()

	if p.Lane() != 0 || p.Position().X != 0 {
		t.Errorf("Reset left lane %d at x=%v", p.Lane(), p.Position().X)
	}
	if !p.Grounded() || p.Height() != 0 {
		t.Error("Reset left the player airborne")
	}
}
