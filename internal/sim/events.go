package sim

import "github.com/ardentis/runeway/internal/core"

// Event is an outbound side effect of one simulation tick. Step returns
// the tick's events for the host to drain; the simulation never calls
// into the rendering or audio layers itself.
type Event interface {
	simEvent()
}

// PlayerHitEvent fires when a damage collision resolves. The host is
// expected to apply damage (via World.Damage) and any feedback; the
// indirection lets movement modules intercept the hit first.
type PlayerHitEvent struct {
	Pos    Vec3
	Source Kind
}

func (PlayerHitEvent) simEvent() {}

// BurstEvent marks a pickup or impact position for a visual burst.
// Purely advisory; dropping it has no gameplay effect.
type BurstEvent struct {
	Pos   Vec3
	Color core.Color
	Kind  Kind
}

func (BurstEvent) simEvent() {}
