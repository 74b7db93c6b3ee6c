// Package config provides YAML-based game configuration loading
// for the skyhop platformer.
package config

// Config contains all tunables for the game. The embedded defaults match
// the stock game exactly; a YAML file only needs to override what differs.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Generator GeneratorConfig `yaml:"generator"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Input     InputConfig     `yaml:"input"`
}

// WorldConfig defines the simulation extent in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's bounding box.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-tick movement parameters.
type PhysicsConfig struct {
	MoveSpeed    float64 `yaml:"move_speed"`    // Horizontal units per tick
	Gravity      int     `yaml:"gravity"`       // Velocity decrement per tick
	JumpVelocity int     `yaml:"jump_velocity"` // Launch velocity (positive = up)
}

// GeneratorConfig defines level generation parameters.
type GeneratorConfig struct {
	PathPlatforms     int     `yaml:"path_platforms"`      // Platforms between spawn and goal
	PlatformWidth     float64 `yaml:"platform_width"`      // Path/safe platform width
	BasePlatformWidth float64 `yaml:"base_platform_width"` // Bootstrap platform width
	PlatformHeight    float64 `yaml:"platform_height"`
	MinGoalDistance   float64 `yaml:"min_goal_distance"` // Spawn-to-goal separation
	ExclusionWidth    float64 `yaml:"exclusion_width"`   // Spawn exclusion zone
	ExclusionHeight   float64 `yaml:"exclusion_height"`
	SpikeChance       int     `yaml:"spike_chance"` // Percent chance per path platform
	SpikeMinOffset    float64 `yaml:"spike_min_offset"`
	SpikeMaxOffset    float64 `yaml:"spike_max_offset"`
	SafeMinCount      int     `yaml:"safe_min_count"` // Safe platforms near the goal
	SafeMaxCount      int     `yaml:"safe_max_count"`
	SafeSpreadX       float64 `yaml:"safe_spread_x"` // Horizontal spread around goal
	SafeDropMin       float64 `yaml:"safe_drop_min"` // Vertical offset below goal
	SafeDropMax       float64 `yaml:"safe_drop_max"`
	GoalDiameter      float64 `yaml:"goal_diameter"`
	MaxAttempts       int     `yaml:"max_attempts"` // Rejection sampling bound
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives int `yaml:"lives"` // Death budget before game over
}

// InputConfig defines input emulation parameters.
type InputConfig struct {
	// HoldTicks is how many simulation ticks a key press counts as held.
	// Terminal auto-repeat refreshes the hold while the key stays down.
	HoldTicks int `yaml:"hold_ticks"`
}
