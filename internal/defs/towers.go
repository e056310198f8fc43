// internal/defs/towers.go
package defs

import "floor-defense/internal/component"

// TowerDefinition holds all the static data for a specific kind of tower.
type TowerDefinition struct {
	ID              component.TowerKind `yaml:"id"`
	Name            string              `yaml:"name"`
	Cost            int                 `yaml:"cost"`
	Damage          float64             `yaml:"damage"`
	Range           float64             `yaml:"range"`
	FireInterval    float64             `yaml:"fire_interval"` // секунд между выстрелами
	ProjectileSpeed float64             `yaml:"projectile_speed"`
	Color           HexColor            `yaml:"color"`
	Slow            *SlowDef            `yaml:"slow,omitempty"`
	SplashRadius    float64             `yaml:"splash_radius,omitempty"`
	Piercing        bool                `yaml:"piercing,omitempty"`
}

// SlowDef is the slow carried by a tower's projectiles.
type SlowDef struct {
	Multiplier float64 `yaml:"multiplier"`
	Duration   float64 `yaml:"duration"`
}

// Effects converts the optional descriptors into the component form.
func (d TowerDefinition) Effects() component.Effects {
	eff := component.Effects{
		SplashRadius: d.SplashRadius,
		Piercing:     d.Piercing,
	}
	if d.Slow != nil {
		eff.Slow = &component.SlowEffect{
			Multiplier: d.Slow.Multiplier,
			Duration:   d.Slow.Duration,
		}
	}
	return eff
}

// UpgradeDefinition is one upgrade track: stat multiplier and cost curve.
type UpgradeDefinition struct {
	Track        string  `yaml:"track"`
	Multiplier   float64 `yaml:"multiplier"`
	CostFraction float64 `yaml:"cost_fraction"` // доля базовой цены башни
	Growth       float64 `yaml:"growth"`        // рост цены за уровень
}
