// Package player implements the player movement component: discrete lane
// switching with eased lateral motion and a jump arc. The simulation core
// only ever reads the resulting 3-coordinate position; hit handling stays
// on the platform side so movement mechanics could intercept it.
package player

import (
	"github.com/ardentis/runeway/internal/config"
	"github.com/ardentis/runeway/internal/core"
	"github.com/ardentis/runeway/internal/sim"
)

// Player holds the movement state between ticks.
type Player struct {
	cfg config.PlayerConfig

	laneWidth float64
	lane      int     // Target lane index
	x         float64 // Actual lateral position, eased toward the target lane
	y         float64 // Height above ground
	vy        float64
	grounded  bool
}

// New creates a grounded player in the center lane.
func New(cfg *config.Config) *Player {
	return &Player{
		cfg:       cfg.Player,
		laneWidth: cfg.Physics.LaneWidth,
		grounded:  true,
	}
}

// Reset recenters the player. Called on every game (re)start.
func (p *Player) Reset() {
	p.lane = 0
	p.x = 0
	p.y = 0
	p.vy = 0
	p.grounded = true
}

// Apply consumes this tick's commands. Lane switches clamp to the
// corridor; jumping is only possible while grounded.
func (p *Player) Apply(in core.InputFrame, laneCount int) {
	half := laneCount / 2
	if in.Has(core.ActionLeft) {
		p.lane = core.Clamp(p.lane-1, -half, half)
	}
	if in.Has(core.ActionRight) {
		p.lane = core.Clamp(p.lane+1, -half, half)
	}
	if in.Has(core.ActionJump) && p.grounded {
		p.vy = p.cfg.JumpImpulse
		p.grounded = false
	}
}

// ClampToCorridor pulls the target lane back inside a narrowed corridor.
// Only relevant after a restart while the corridor width changed.
func (p *Player) ClampToCorridor(laneCount int) {
	half := laneCount / 2
	p.lane = core.Clamp(p.lane, -half, half)
}

// Update advances the movement physics by dt seconds.
func (p *Player) Update(dt float64) {
	target := float64(p.lane) * p.laneWidth
	p.x = core.Lerp(p.x, target, p.cfg.LaneEase*dt)

	if !p.grounded {
		p.vy += p.cfg.Gravity * dt
		p.y += p.vy * dt
		if p.y <= 0 {
			p.y = 0
			p.vy = 0
			p.grounded = true
		}
	}
}

// Position returns the player's world position for the simulation step.
// The player sits at the scroll origin; the world moves past it.
func (p *Player) Position() sim.Vec3 {
	return sim.Vec3{X: p.x, Y: p.y, Z: 0}
}

// Lane returns the current target lane index.
func (p *Player) Lane() int {
	return p.lane
}

// Height returns the current height above ground.
func (p *Player) Height() float64 {
	return p.y
}

// Grounded reports whether the player can jump.
func (p *Player) Grounded() bool {
	return p.grounded
}
