package config

import (
	_ "embed"
)

//go:embed defaults/runeway.yaml
var defaultYAML []byte

// Default returns the built-in tuning configuration.
// It mirrors defaults/runeway.yaml and is the fallback if the embedded
// YAML somehow fails to parse.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			BaseSpeed:    14.0,
			MaxDeltaTime: 0.05,
			MissileSpeed: 22.0,
			LaneWidth:    2.0,
		},
		Player: PlayerConfig{
			Gravity:     -28.0,
			JumpImpulse: 9.5,
			LaneEase:    14.0,
			BodyHeight:  1.8,
		},
		Collision: CollisionConfig{
			ZoneHalfWidth:  2.0,
			LateralRange:   1.6,
			PickupVertical: 2.4,
			Obstacle:       Extent{Low: 0.0, High: 1.4},
			Alien:          Extent{Low: 0.4, High: 2.0},
			Missile:        Extent{Low: 0.2, High: 1.0},
			CullBehind:     12.0,
		},
		Spawn: SpawnConfig{
			Horizon:        90.0,
			GapBase:        16.0,
			GapSpeedFactor: 0.9,
			SpawnChance:    0.9,

			LetterInterval: 55.0,
			LetterGrowth:   1.5,

			ImmortalityChance:         0.04,
			ImmortalityChancePerLevel: 0.02,
			ImmortalityCooldown:       240.0,
			ImmortalityLevelDelay:     60.0,

			HeartChance:   0.06,
			ObstacleShare: 0.64,
			AlienShare:    0.35,
			GemTopChance:  0.3,
			GemPoints:     50,

			AlienFireRange: 20.0,
			MissileLead:    2.0,

			SoftKeepRange:    40.0,
			FormationWeights: []int{3, 2, 1},

			Heights: SpawnHeights{
				Gem:         0.8,
				BonusGem:    2.2,
				Letter:      1.0,
				Heart:       1.0,
				Immortality: 1.2,
				Missile:     0.5,
			},
		},
		Rules: RulesConfig{
			MaxLives:            3,
			MaxLevel:            3,
			StartLanes:          3,
			MaxLanes:            9,
			VictoryBonus:        5000,
			LetterSpeedGain:     0.48,
			LevelSpeedGain:      0.32,
			ImmortalityDuration: 5.0,
			AlienMinLevel:       2,
		},
	}
}
