package sim

import (
	"math"
	"math/rand"

	"github.com/ardentis/runeway/internal/config"
	"github.com/ardentis/runeway/internal/core"
)

// World owns the object registry and the state store. It is mutated only
// by its own Step/spawn path and by the action methods below; a host
// using real goroutines must serialize all calls onto one loop.
type World struct {
	cfg     *config.Config
	state   *State
	objects []*Object
	rng     *rand.Rand
	nextID  int64
	now     float64 // Simulation clock, seconds

	nextLetterAt    float64 // Distance at which the next letter is due
	immortalReadyAt float64 // Distance before which no buff may spawn

	events []Event
}

// NewWorld creates a world in the Menu status.
func NewWorld(cfg *config.Config, seed int64) *World {
	return &World{
		cfg:   cfg,
		state: NewState(cfg),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// State returns the state store. Callers outside the simulation must
// treat it as read-only and mutate only through World actions.
func (w *World) State() *State {
	return w.state
}

// Objects returns the live object registry for rendering. Read-only.
func (w *World) Objects() []*Object {
	return w.objects
}

// Now returns the current simulation time in seconds.
func (w *World) Now() float64 {
	return w.now
}

// StartGame begins a session from the menu.
func (w *World) StartGame() {
	w.hardReset()
}

// RestartGame begins a fresh session from a terminal screen.
func (w *World) RestartGame() {
	w.hardReset()
}

// Damage applies one hit to the player. The host calls this in response
// to a PlayerHitEvent; the simulation never applies damage directly.
func (w *World) Damage() {
	w.state.TakeDamage(w.now)
}

// ImmortalRemaining returns the seconds left on the buff window, or 0.
func (w *World) ImmortalRemaining() float64 {
	if !w.state.Immortal(w.now) {
		return 0
	}
	return w.state.ImmortalUntil - w.now
}

// hardReset clears the registry and restores level-1 schedules. Runs on
// every entry into Playing from Menu, GameOver or Victory.
func (w *World) hardReset() {
	w.state.Start()
	w.objects = w.objects[:0]
	w.nextLetterAt = w.letterInterval(1)
	w.immortalReadyAt = 0
}

// softReset runs when the level advances mid-run: far-downrange objects
// are dropped, the letter schedule is recomputed for the new level's
// interval, and the buff cooldown is pushed forward so an immortality
// cannot spawn right after the transition.
func (w *World) softReset() {
	kept := w.objects[:0]
	for _, o := range w.objects {
		if o.Pos.Z < -w.cfg.Spawn.SoftKeepRange {
			continue
		}
		kept = append(kept, o)
	}
	w.objects = kept

	w.nextLetterAt = w.state.Distance + w.letterInterval(w.state.Level)
	delayed := w.state.Distance + w.cfg.Spawn.ImmortalityLevelDelay
	if delayed > w.immortalReadyAt {
		w.immortalReadyAt = delayed
	}
}

// letterInterval returns the letter spacing for a level; it grows
// geometrically so later words stretch over more distance.
func (w *World) letterInterval(level int) float64 {
	return w.cfg.Spawn.LetterInterval * math.Pow(w.cfg.Spawn.LetterGrowth, float64(level-1))
}

// add registers a new object with a fresh ID.
func (w *World) add(o *Object) *Object {
	w.nextID++
	o.ID = w.nextID
	o.Active = true
	w.objects = append(w.objects, o)
	return o
}

// newMissile spawns the one projectile an alien fires: same lane,
// slightly ahead, with its own propulsion on top of world scroll.
func (w *World) newMissile(alien *Object) *Object {
	w.nextID++
	return &Object{
		ID:     w.nextID,
		Kind:   KindMissile,
		Active: true,
		Color:  core.ColorBrightRed,
		Pos: Vec3{
			X: alien.Pos.X,
			Y: w.cfg.Spawn.Heights.Missile,
			Z: alien.Pos.Z + w.cfg.Spawn.MissileLead,
		},
	}
}

// emit queues an outbound event for this tick.
func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}
