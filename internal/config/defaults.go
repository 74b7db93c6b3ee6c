package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultYAML []byte

// Default returns the stock configuration: the constants the game ships with.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  1000,
			Height: 500,
		},
		Player: PlayerConfig{
			Width:  20,
			Height: 20,
		},
		Physics: PhysicsConfig{
			MoveSpeed:    7,
			Gravity:      1,
			JumpVelocity: 20,
		},
		Generator: GeneratorConfig{
			PathPlatforms:     14,
			PlatformWidth:     80,
			BasePlatformWidth: 100,
			PlatformHeight:    10,
			MinGoalDistance:   150,
			ExclusionWidth:    100,
			ExclusionHeight:   80,
			SpikeChance:       40,
			SpikeMinOffset:    10,
			SpikeMaxOffset:    70,
			SafeMinCount:      2,
			SafeMaxCount:      3,
			SafeSpreadX:       60,
			SafeDropMin:       40,
			SafeDropMax:       80,
			GoalDiameter:      30,
			MaxAttempts:       1000,
		},
		Gameplay: GameplayConfig{
			Lives: 10,
		},
		Input: InputConfig{
			HoldTicks: 9,
		},
	}
}
