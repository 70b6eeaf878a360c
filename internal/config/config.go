// Package config provides YAML-based tuning configuration for the runner.
// The collision extents, spawn thresholds and probability values are
// empirically tuned feel values; they are carried as configuration and not
// re-derived.
package config

// Config contains all tuning for a run session.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Collision CollisionConfig `yaml:"collision"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Rules     RulesConfig     `yaml:"rules"`
}

// PhysicsConfig defines world movement parameters.
type PhysicsConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`    // Scroll speed at level 1, units/s
	MaxDeltaTime float64 `yaml:"max_delta_time"` // Tick dt clamp, seconds
	MissileSpeed float64 `yaml:"missile_speed"` // Missile propulsion on top of scroll, units/s
	LaneWidth    float64 `yaml:"lane_width"`    // Lateral distance between lane centers
}

// PlayerConfig defines the player movement component.
type PlayerConfig struct {
	Gravity     float64 `yaml:"gravity"`      // Units/s^2, negative pulls down
	JumpImpulse float64 `yaml:"jump_impulse"` // Initial vertical velocity on jump
	LaneEase    float64 `yaml:"lane_ease"`    // Lateral easing rate toward target lane, 1/s
	BodyHeight  float64 `yaml:"body_height"`  // Vertical extent of the player body
}

// Extent is a vertical interval relative to an object's base height.
type Extent struct {
	Low  float64 `yaml:"low"`
	High float64 `yaml:"high"`
}

// CollisionConfig defines the proximity tests of the simulation step.
// Pickup tolerance being looser than damage tolerance is intentional.
type CollisionConfig struct {
	ZoneHalfWidth  float64 `yaml:"zone_half_width"` // Scroll-axis half width of the player zone
	LateralRange   float64 `yaml:"lateral_range"`   // Lane-axis proximity threshold
	PickupVertical float64 `yaml:"pickup_vertical"` // Vertical tolerance for pickups
	Obstacle       Extent  `yaml:"obstacle"`        // Damage extents per kind
	Alien          Extent  `yaml:"alien"`
	Missile        Extent  `yaml:"missile"`
	CullBehind     float64 `yaml:"cull_behind"` // Trailing removal threshold past the player
}

// SpawnHeights defines the base height each spawned kind sits at.
type SpawnHeights struct {
	Gem         float64 `yaml:"gem"`
	BonusGem    float64 `yaml:"bonus_gem"` // Gem placed on top of an obstacle
	Letter      float64 `yaml:"letter"`
	Heart       float64 `yaml:"heart"`
	Immortality float64 `yaml:"immortality"`
	Missile     float64 `yaml:"missile"`
}

// SpawnConfig defines the distance-based spawn scheduler.
type SpawnConfig struct {
	Horizon        float64 `yaml:"horizon"`          // Maximum downrange spawn distance
	GapBase        float64 `yaml:"gap_base"`         // Fixed part of the required gap
	GapSpeedFactor float64 `yaml:"gap_speed_factor"` // Speed-proportional part of the gap
	SpawnChance    float64 `yaml:"spawn_chance"`     // Chance an eligible tick spawns at all

	LetterInterval float64 `yaml:"letter_interval"` // Distance between letters at level 1
	LetterGrowth   float64 `yaml:"letter_growth"`   // Per-level geometric growth of the interval

	ImmortalityChance         float64 `yaml:"immortality_chance"`           // Base chance at level 1
	ImmortalityChancePerLevel float64 `yaml:"immortality_chance_per_level"` // Added per level above 1
	ImmortalityCooldown       float64 `yaml:"immortality_cooldown"`         // Distance between buff spawns
	ImmortalityLevelDelay     float64 `yaml:"immortality_level_delay"`      // Cooldown push on level change

	HeartChance   float64 `yaml:"heart_chance"`   // Only rolled while lives < max
	ObstacleShare float64 `yaml:"obstacle_share"` // Share of remaining mass going to obstacles
	AlienShare    float64 `yaml:"alien_share"`    // Share of obstacle spawns that are alien rows
	GemTopChance  float64 `yaml:"gem_top_chance"` // Bonus gem on top of each spike
	GemPoints     int     `yaml:"gem_points"`     // Score per gem

	AlienFireRange float64 `yaml:"alien_fire_range"` // Scroll distance at which an alien fires
	MissileLead    float64 `yaml:"missile_lead"`     // How far ahead of the alien its missile starts

	SoftKeepRange    float64 `yaml:"soft_keep_range"`   // Soft reset keeps objects closer than this
	FormationWeights []int   `yaml:"formation_weights"` // Weights for 1..N objects per row

	Heights SpawnHeights `yaml:"heights"`
}

// RulesConfig defines the progression rules of the game state.
type RulesConfig struct {
	MaxLives            int     `yaml:"max_lives"`
	MaxLevel            int     `yaml:"max_level"`
	StartLanes          int     `yaml:"start_lanes"` // Odd; grows by 2 per level
	MaxLanes            int     `yaml:"max_lanes"`   // Odd cap
	VictoryBonus        int     `yaml:"victory_bonus"`
	LetterSpeedGain     float64 `yaml:"letter_speed_gain"` // Fraction of base speed added by a full word
	LevelSpeedGain      float64 `yaml:"level_speed_gain"`  // Fraction of base speed added per level
	ImmortalityDuration float64 `yaml:"immortality_duration"` // Seconds on the simulation clock
	AlienMinLevel       int     `yaml:"alien_min_level"`
}

// Preset represents a named difficulty preset.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
)

// ApplyPreset rescales the config for a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Physics.BaseSpeed *= 0.8
		cfg.Spawn.SpawnChance *= 0.85
	case PresetHard:
		cfg.Physics.BaseSpeed *= 1.25
		cfg.Spawn.GapBase *= 0.85
	}
}
