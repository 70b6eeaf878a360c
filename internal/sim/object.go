// Package sim implements the runner's simulation core: the game state
// store, the live object registry, the per-tick simulation step and the
// distance-based spawn scheduler. It is pure logic with no rendering or
// terminal dependencies; the platform drives it once per frame and drains
// the events each tick produces.
package sim

import "github.com/ardentis/runeway/internal/core"

// Vec3 is a position in world space: X is the lane axis, Y the height
// axis and Z the scroll axis. Objects spawn at negative Z downrange and
// advance toward the player near Z=0.
type Vec3 struct {
	X, Y, Z float64
}

// Kind identifies a world object archetype. It never changes for the
// lifetime of an object.
type Kind int

const (
	KindObstacle    Kind = iota // Ground spike, damages on contact
	KindGem                     // Scoring pickup
	KindLetter                  // One character of the level's target word
	KindImmortality             // Timed damage-immunity buff
	KindHeart                   // Restores one life
	KindAlien                   // Damaging enemy that fires one missile
	KindMissile                 // Alien projectile, extra forward speed
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObstacle:
		return "Obstacle"
	case KindGem:
		return "Gem"
	case KindLetter:
		return "Letter"
	case KindImmortality:
		return "Immortality"
	case KindHeart:
		return "Heart"
	case KindAlien:
		return "Alien"
	case KindMissile:
		return "Missile"
	default:
		return "Unknown"
	}
}

// Damages reports whether contact with this kind hurts the player.
// Every other kind is a pickup.
func (k Kind) Damages() bool {
	return k == KindObstacle || k == KindAlien || k == KindMissile
}

// Object is a spawned world entity. Kind-specific fields are only
// meaningful for their kind: Glyph and TargetIndex for letters, Points
// for gems, HasFired for aliens.
type Object struct {
	ID     int64 // Unique within a session, never reused
	Kind   Kind
	Pos    Vec3
	Active bool       // Cleared exactly once, when a collision consumes the object
	Color  core.Color // Display/identity tag; letters carry their target slot's color

	Glyph       rune // Letter: the character this instance represents
	TargetIndex int  // Letter: index into the level's target word
	Points      int  // Gem: score awarded on pickup
	HasFired    bool // Alien: set after it spawned its one missile
}
