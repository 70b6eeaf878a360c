package sim

import (
	"github.com/ardentis/runeway/internal/config"
	"github.com/ardentis/runeway/internal/core"
)

// Step advances the world by one tick: movement, alien fire, swept
// collision resolution, culling, then the spawn decision, strictly in
// that order. It returns the tick's outbound events for the host to
// drain. No-op unless the status is Playing.
//
// dt is clamped to the configured maximum so a stalled frame cannot jump
// objects across the whole corridor.
func (w *World) Step(player Vec3, dt float64) []Event {
	w.events = w.events[:0]
	if w.state.Status != StatusPlaying {
		return nil
	}

	if dt > w.cfg.Physics.MaxDeltaTime {
		dt = w.cfg.Physics.MaxDeltaTime
	}
	w.now += dt
	w.state.expireImmortality(w.now)

	d := w.state.Speed * dt
	w.state.SetDistance(w.state.Distance + d)

	levelBefore := w.state.Level

	// Movement and collision in one pass, keeping each object's pre-move
	// scroll coordinate for the swept test. Missiles fired this tick are
	// collected first and appended after the pass.
	var fired []*Object
	for _, o := range w.objects {
		pre := o.Pos.Z
		o.Pos.Z += d
		if o.Kind == KindMissile {
			o.Pos.Z += w.cfg.Physics.MissileSpeed * dt
		}

		if o.Kind == KindAlien && o.Active && !o.HasFired &&
			o.Pos.Z >= player.Z-w.cfg.Spawn.AlienFireRange {
			o.HasFired = true
			fired = append(fired, w.newMissile(o))
		}

		if o.Active {
			w.resolveCollision(o, pre, player)
		}
	}
	w.objects = append(w.objects, fired...)

	// Culling: consumed objects and anything past the trailing threshold
	// are dropped; observers never see a torn intermediate registry.
	kept := w.objects[:0]
	for _, o := range w.objects {
		if !o.Active || o.Pos.Z > player.Z+w.cfg.Collision.CullBehind {
			continue
		}
		kept = append(kept, o)
	}
	w.objects = kept

	if w.state.Level != levelBefore {
		w.softReset()
	}

	// Spawn decision runs last, within the same tick. A mid-tick victory
	// suppresses it.
	if w.state.Status == StatusPlaying {
		w.trySpawn()
	}

	return w.events
}

// resolveCollision runs the swept proximity test for one active object
// and dispatches the kind-specific outcome. The sweep uses the pre- and
// post-move scroll coordinates so thin objects cannot tunnel through the
// player zone at high speed.
func (w *World) resolveCollision(o *Object, preZ float64, player Vec3) {
	col := &w.cfg.Collision

	lo, hi := preZ, o.Pos.Z
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi < player.Z-col.ZoneHalfWidth || lo > player.Z+col.ZoneHalfWidth {
		return
	}
	if core.AbsF(o.Pos.X-player.X) > col.LateralRange {
		return
	}

	if o.Kind.Damages() {
		ext := w.damageExtent(o.Kind)
		objLo := o.Pos.Y + ext.Low
		objHi := o.Pos.Y + ext.High
		plLo := player.Y
		plHi := player.Y + w.cfg.Player.BodyHeight
		if objLo <= plHi && plLo <= objHi {
			o.Active = false
			w.emit(PlayerHitEvent{Pos: o.Pos, Source: o.Kind})
			w.emit(BurstEvent{Pos: o.Pos, Color: core.ColorBrightRed, Kind: o.Kind})
		}
		return
	}

	// Pickups use a looser vertical tolerance. The object is consumed
	// even when the effect has no net impact (heart at full health).
	if core.AbsF(o.Pos.Y-player.Y) > col.PickupVertical {
		return
	}

	switch o.Kind {
	case KindGem:
		w.state.CollectGem(o.Points)
	case KindLetter:
		w.state.CollectLetter(o.TargetIndex)
	case KindImmortality:
		w.state.ActivateImmortality(w.now)
	case KindHeart:
		w.state.HealOne()
	}
	o.Active = false
	w.emit(BurstEvent{Pos: o.Pos, Color: o.Color, Kind: o.Kind})
}

// damageExtent returns the type-specific vertical bounds of a damage
// source. These are tuned feel values from the config.
func (w *World) damageExtent(k Kind) config.Extent {
	switch k {
	case KindAlien:
		return w.cfg.Collision.Alien
	case KindMissile:
		return w.cfg.Collision.Missile
	default:
		return w.cfg.Collision.Obstacle
	}
}
