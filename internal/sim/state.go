package sim

import (
	"github.com/ardentis/runeway/internal/config"
	"github.com/ardentis/runeway/internal/core"
)

// Status is the session lifecycle state.
// Menu -> Playing -> {GameOver, Victory}; both terminal states return to
// Playing only through an explicit restart. No transition skips Playing.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusGameOver
	StatusVictory
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "Menu"
	case StatusPlaying:
		return "Playing"
	case StatusGameOver:
		return "GameOver"
	case StatusVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// LetterOutcome describes what a CollectLetter call did.
type LetterOutcome int

const (
	LetterIgnored       LetterOutcome = iota // Slot already collected or out of range
	LetterCollected                          // Slot added, word not yet complete
	LetterAdvancedLevel                      // Word completed, level advanced
	LetterVictory                            // Final word completed
)

// State is the single source of truth for the session: score, lives,
// level, speed, letter progress and the immortality buff. All mutation
// goes through the named action methods; everything else reads only.
// There is exactly one logical writer (the simulation loop), so no
// locking is needed.
type State struct {
	Status    Status
	Score     int
	Lives     int
	MaxLives  int
	Speed     float64 // Scroll speed, units/s; 0 while frozen
	Level     int     // 1..rules.MaxLevel
	LaneCount int     // Always odd, for symmetric lane indexing
	Gems      int     // Gems collected this session
	Distance  float64 // Total distance traveled this session

	// Collected holds the target-slot indices gathered in the current
	// level; cleared on level advance.
	Collected map[int]bool

	// ImmortalActive/ImmortalUntil form the timed buff window. The stamp
	// is on the simulation clock, checked every tick, so there are no
	// wall-clock timers to go stale across resets.
	ImmortalActive bool
	ImmortalUntil  float64

	rules     config.RulesConfig
	baseSpeed float64
}

// NewState creates a state in the Menu status.
func NewState(cfg *config.Config) *State {
	return &State{
		Status:    StatusMenu,
		MaxLives:  cfg.Rules.MaxLives,
		Level:     1,
		LaneCount: cfg.Rules.StartLanes,
		Collected: make(map[int]bool),
		rules:     cfg.Rules,
		baseSpeed: cfg.Physics.BaseSpeed,
	}
}

// Start resets all counters and enters Playing. It backs both the start
// and restart commands.
func (s *State) Start() {
	s.Status = StatusPlaying
	s.Score = 0
	s.MaxLives = s.rules.MaxLives
	s.Lives = s.MaxLives
	s.Speed = s.baseSpeed
	s.Level = 1
	s.LaneCount = s.rules.StartLanes
	s.Gems = 0
	s.Distance = 0
	s.Collected = make(map[int]bool)
	s.ImmortalActive = false
	s.ImmortalUntil = 0
}

// TakeDamage removes one life unless the immortality buff covers the
// given simulation time. Reaching zero lives freezes the run: GameOver
// status and zero speed, so the step loop stops advancing.
func (s *State) TakeDamage(now float64) {
	if s.Status != StatusPlaying {
		return
	}
	if s.Immortal(now) {
		return
	}
	s.Lives--
	if s.Lives <= 0 {
		s.Lives = 0
		s.Status = StatusGameOver
		s.Speed = 0
	}
}

// AddScore adds a score delta.
func (s *State) AddScore(amount int) {
	s.Score += amount
}

// CollectGem awards the gem's points and bumps the gem counter.
func (s *State) CollectGem(points int) {
	s.Score += points
	s.Gems++
}

// HealOne restores one life. A no-op at full health; the heart is still
// consumed by the caller.
func (s *State) HealOne() {
	if s.Lives < s.MaxLives {
		s.Lives++
	}
}

// CollectLetter marks a target slot as collected and raises the speed by
// the per-letter increment. Collecting a full word raises speed by
// LetterSpeedGain of base, spread across the word's distinct characters.
// Completing the word advances the level, or wins the game on the final
// level. Re-collecting a slot is a benign no-op.
func (s *State) CollectLetter(targetIndex int) LetterOutcome {
	target := TargetForLevel(s.Level)
	if targetIndex < 0 || targetIndex >= target.Len() {
		return LetterIgnored
	}
	if s.Collected[targetIndex] {
		return LetterIgnored
	}

	s.Collected[targetIndex] = true
	s.Speed += s.baseSpeed * s.rules.LetterSpeedGain / float64(target.Len())

	if len(s.Collected) < target.Len() {
		return LetterCollected
	}
	if s.Level < s.rules.MaxLevel {
		s.advanceLevel()
		return LetterAdvancedLevel
	}
	s.Status = StatusVictory
	s.Score += s.rules.VictoryBonus
	return LetterVictory
}

// advanceLevel bumps the level, applies the level speed bonus, widens the
// corridor by two lanes (capped, stays odd) and clears letter progress.
func (s *State) advanceLevel() {
	s.Level++
	s.Speed += s.baseSpeed * s.rules.LevelSpeedGain
	s.LaneCount = core.Min(s.LaneCount+2, s.rules.MaxLanes)
	s.Collected = make(map[int]bool)
	s.Status = StatusPlaying
}

// ActivateImmortality arms the buff for the configured duration starting
// at the given simulation time. Re-activation while active neither
// extends nor restarts the window.
func (s *State) ActivateImmortality(now float64) {
	if s.Immortal(now) {
		return
	}
	s.ImmortalActive = true
	s.ImmortalUntil = now + s.rules.ImmortalityDuration
}

// Immortal reports whether the buff covers the given simulation time.
func (s *State) Immortal(now float64) bool {
	return s.ImmortalActive && now < s.ImmortalUntil
}

// expireImmortality clears the buff flag once its window has passed.
// Called by the step loop every tick.
func (s *State) expireImmortality(now float64) {
	if s.ImmortalActive && now >= s.ImmortalUntil {
		s.ImmortalActive = false
	}
}

// SetDistance overwrites the traveled distance. Used by the step loop.
func (s *State) SetDistance(d float64) {
	s.Distance = d
}

// SetStatus overwrites the status. Used at terminal transitions.
func (s *State) SetStatus(status Status) {
	s.Status = status
}

// BaseSpeed returns the level-1 scroll speed the increments scale from.
func (s *State) BaseSpeed() float64 {
	return s.baseSpeed
}
