// internal/defs/enemies.go
package defs

import "floor-defense/internal/component"

// EnemyDefinition describes an enemy kind relative to the wave's base stats.
type EnemyDefinition struct {
	Kind          component.EnemyKind `yaml:"kind"`
	HealthFactor  float64             `yaml:"health_factor"`
	SpeedFactor   float64             `yaml:"speed_factor"`
	RewardFactor  float64             `yaml:"reward_factor"`
	Interval      float64             `yaml:"interval"` // базовая пауза перед выпуском
	MinWave       int                 `yaml:"min_wave"`
	FinalWaveOnly bool                `yaml:"final_wave_only"`
	CountBase     int                 `yaml:"count_base"`
	CountPerWave  int                 `yaml:"count_per_wave"`
	Radius        float64             `yaml:"radius"`
	Color         HexColor            `yaml:"color"`
}

// Count is how many enemies of this kind wave (1-based within the floor) holds.
func (d EnemyDefinition) Count(wave, wavesPerFloor int) int {
	if d.FinalWaveOnly {
		if wave == wavesPerFloor {
			return d.CountBase
		}
		return 0
	}
	if wave < d.MinWave {
		return 0
	}
	n := d.CountBase + d.CountPerWave*wave
	if n < 0 {
		return 0
	}
	return n
}
