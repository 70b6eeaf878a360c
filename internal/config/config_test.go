package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultSanity(t *testing.T) {
	cfg := Default()

	if cfg.Physics.BaseSpeed <= 0 {
		t.Error("Base speed must be positive")
	}
	if cfg.Physics.MaxDeltaTime <= 0 {
		t.Error("Dt clamp must be positive")
	}
	if cfg.Rules.MaxLives <= 0 {
		t.Error("Max lives must be positive")
	}
	if cfg.Rules.StartLanes%2 == 0 || cfg.Rules.MaxLanes%2 == 0 {
		t.Error("Lane counts must be odd for symmetric indexing")
	}
	if cfg.Rules.StartLanes > cfg.Rules.MaxLanes {
		t.Error("Start lanes above the lane cap")
	}
	if cfg.Spawn.SpawnChance < 0 || cfg.Spawn.SpawnChance > 1 {
		t.Errorf("Spawn chance %v outside [0, 1]", cfg.Spawn.SpawnChance)
	}
	if cfg.Spawn.ObstacleShare < 0 || cfg.Spawn.ObstacleShare > 1 {
		t.Errorf("Obstacle share %v outside [0, 1]", cfg.Spawn.ObstacleShare)
	}
	if len(cfg.Spawn.FormationWeights) == 0 {
		t.Error("Formation weights empty")
	}
	if cfg.Collision.PickupVertical <= cfg.Collision.Obstacle.High {
		t.Error("Pickup tolerance should be looser than the obstacle extent")
	}
	if cfg.Rules.AlienMinLevel < 2 {
		t.Error("Aliens must not appear on the first level")
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Embedded YAML drifted from Default():\nyaml:    %+v\ndefault: %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	custom := []byte("physics:\n  base_speed: 21.5\nrules:\n  max_lives: 5\n")
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.BaseSpeed != 21.5 {
		t.Errorf("Expected base speed 21.5, got %v", cfg.Physics.BaseSpeed)
	}
	if cfg.Rules.MaxLives != 5 {
		t.Errorf("Expected 5 max lives, got %d", cfg.Rules.MaxLives)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing explicit config path")
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := Default()
	ApplyPreset(&easy, PresetEasy)
	if easy.Physics.BaseSpeed >= base.Physics.BaseSpeed {
		t.Error("Easy preset did not slow the scroll")
	}
	if easy.Spawn.SpawnChance >= base.Spawn.SpawnChance {
		t.Error("Easy preset did not thin the spawns")
	}

	hard := Default()
	ApplyPreset(&hard, PresetHard)
	if hard.Physics.BaseSpeed <= base.Physics.BaseSpeed {
		t.Error("Hard preset did not speed up the scroll")
	}
	if hard.Spawn.GapBase >= base.Spawn.GapBase {
		t.Error("Hard preset did not tighten the gaps")
	}

	normal := Default()
	ApplyPreset(&normal, PresetNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("Normal preset changed the config")
	}

	unknown := Default()
	ApplyPreset(&unknown, Preset("nightmare"))
	if !reflect.DeepEqual(unknown, base) {
		t.Error("Unknown preset changed the config")
	}
}
