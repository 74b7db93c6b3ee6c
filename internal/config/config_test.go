package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults diverge from hardcoded:\nembedded:  %+v\nhardcoded: %+v",
			cfg, Default())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.World.Width != 1000 || cfg.World.Height != 500 {
		t.Errorf("world = %vx%v, want 1000x500", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Physics.MoveSpeed != 7 || cfg.Physics.Gravity != 1 || cfg.Physics.JumpVelocity != 20 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Generator.PathPlatforms != 14 {
		t.Errorf("path platforms = %d, want 14", cfg.Generator.PathPlatforms)
	}
	if cfg.Gameplay.Lives != 10 {
		t.Errorf("lives = %d, want 10", cfg.Gameplay.Lives)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := []byte("world:\n  width: 800\n  height: 400\ngameplay:\n  lives: 3\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.World.Width != 800 || cfg.World.Height != 400 {
		t.Errorf("world = %vx%v, want 800x400", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, want 3", cfg.Gameplay.Lives)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}
