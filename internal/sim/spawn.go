package sim

import (
	"math"

	"github.com/ardentis/runeway/internal/core"
)

// trySpawn is the spawn scheduler. It runs once per tick, right after
// movement and collision, and appends at most one spawn group to the
// registry. Everything is keyed on traveled distance, never wall clock.
//
// Cascade: a due letter always wins; otherwise a spawn happens with
// SpawnChance probability and branches into power-up, heart, an
// obstacle/alien row, or a lone ground gem. The remaining probability
// mass deliberately produces no spawn, which keeps the spawn rate noisy.
func (w *World) trySpawn() {
	sp := &w.cfg.Spawn

	// Gap check against the nearest (farthest-downrange) non-projectile
	// object. Missiles are transient and never block a spawn slot.
	nearest := math.Inf(1)
	for _, o := range w.objects {
		if o.Kind == KindMissile {
			continue
		}
		if o.Pos.Z < nearest {
			nearest = o.Pos.Z
		}
	}

	horizon := -sp.Horizon
	gap := sp.GapBase + sp.GapSpeedFactor*w.state.Speed
	spawnZ := horizon
	if !math.IsInf(nearest, 1) {
		spawnZ = nearest - gap
		if spawnZ < horizon {
			spawnZ = horizon
		}
		if nearest-spawnZ < gap {
			return // no room at the horizon yet
		}
	}

	if w.state.Distance >= w.nextLetterAt {
		w.nextLetterAt += w.letterInterval(w.state.Level)
		w.spawnLetter(spawnZ)
		return
	}

	if w.rng.Float64() >= sp.SpawnChance {
		return
	}

	chance := sp.ImmortalityChance + sp.ImmortalityChancePerLevel*float64(w.state.Level-1)
	if w.state.Distance >= w.immortalReadyAt && w.rng.Float64() < chance {
		w.immortalReadyAt = w.state.Distance + sp.ImmortalityCooldown
		w.add(&Object{
			Kind:  KindImmortality,
			Color: core.ColorBrightCyan,
			Pos:   Vec3{X: w.randomLaneX(), Y: sp.Heights.Immortality, Z: spawnZ},
		})
		return
	}

	if w.state.Lives < w.state.MaxLives && w.rng.Float64() < sp.HeartChance {
		w.add(&Object{
			Kind:  KindHeart,
			Color: core.ColorBrightRed,
			Pos:   Vec3{X: w.randomLaneX(), Y: sp.Heights.Heart, Z: spawnZ},
		})
		return
	}

	if w.rng.Float64() < sp.ObstacleShare {
		w.spawnObstacleRow(spawnZ)
		return
	}

	w.add(&Object{
		Kind:   KindGem,
		Color:  core.ColorBrightYellow,
		Points: sp.GemPoints,
		Pos:    Vec3{X: w.randomLaneX(), Y: sp.Heights.Gem, Z: spawnZ},
	})
}

// spawnLetter places the next uncollected character of the level's
// target word at a random lane, or a fallback gem if the word is already
// complete for this level.
func (w *World) spawnLetter(z float64) {
	sp := &w.cfg.Spawn
	target := TargetForLevel(w.state.Level)

	idx := -1
	for i := 0; i < target.Len(); i++ {
		if !w.state.Collected[i] {
			idx = i
			break
		}
	}
	if idx < 0 {
		w.add(&Object{
			Kind:   KindGem,
			Color:  core.ColorBrightYellow,
			Points: sp.GemPoints,
			Pos:    Vec3{X: w.randomLaneX(), Y: sp.Heights.Gem, Z: z},
		})
		return
	}

	w.add(&Object{
		Kind:        KindLetter,
		Glyph:       target.Glyph(idx),
		TargetIndex: idx,
		Color:       target.Color(idx),
		Pos:         Vec3{X: w.randomLaneX(), Y: sp.Heights.Letter, Z: z},
	})
}

// spawnObstacleRow places 1..3 spikes or, from the alien minimum level
// on, 1..3 aliens across distinct lanes. Spikes can carry a bonus gem on
// top.
func (w *World) spawnObstacleRow(z float64) {
	sp := &w.cfg.Spawn

	count := w.weightedCount()
	lanes := w.distinctLanes(count)

	if w.state.Level >= w.cfg.Rules.AlienMinLevel && w.rng.Float64() < sp.AlienShare {
		for _, lane := range lanes {
			w.add(&Object{
				Kind:  KindAlien,
				Color: core.ColorBrightGreen,
				Pos:   Vec3{X: w.laneX(lane), Y: 0, Z: z},
			})
		}
		return
	}

	for _, lane := range lanes {
		w.add(&Object{
			Kind:  KindObstacle,
			Color: core.ColorGray,
			Pos:   Vec3{X: w.laneX(lane), Y: 0, Z: z},
		})
		if w.rng.Float64() < sp.GemTopChance {
			w.add(&Object{
				Kind:   KindGem,
				Color:  core.ColorBrightYellow,
				Points: sp.GemPoints,
				Pos:    Vec3{X: w.laneX(lane), Y: sp.Heights.BonusGem, Z: z},
			})
		}
	}
}

// weightedCount draws how many objects a row gets, weighted toward
// fewer per the configured formation weights.
func (w *World) weightedCount() int {
	weights := w.cfg.Spawn.FormationWeights
	if len(weights) == 0 {
		return 1
	}

	total := 0
	for _, wt := range weights {
		total += wt
	}
	if total <= 0 {
		return 1
	}

	roll := w.rng.Intn(total)
	for i, wt := range weights {
		roll -= wt
		if roll < 0 {
			return i + 1
		}
	}
	return 1
}

// laneX converts a lane index (-k..+k) to a lane-axis coordinate.
func (w *World) laneX(lane int) float64 {
	return float64(lane) * w.cfg.Physics.LaneWidth
}

// randomLaneX draws a uniform lane coordinate from the current corridor.
func (w *World) randomLaneX() float64 {
	half := w.state.LaneCount / 2
	return w.laneX(w.rng.Intn(w.state.LaneCount) - half)
}

// distinctLanes shuffles the corridor's lane indices and takes the first
// n, so multi-object rows never stack in one lane.
func (w *World) distinctLanes(n int) []int {
	half := w.state.LaneCount / 2
	lanes := make([]int, w.state.LaneCount)
	for i := range lanes {
		lanes[i] = i - half
	}
	w.rng.Shuffle(len(lanes), func(i, j int) {
		lanes[i], lanes[j] = lanes[j], lanes[i]
	})
	if n > len(lanes) {
		n = len(lanes)
	}
	return lanes[:n]
}
