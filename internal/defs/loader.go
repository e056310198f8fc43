// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"floor-defense/internal/component"

	"gopkg.in/yaml.v3"
)

//go:embed data/defs.yaml
var embeddedDefs []byte

// Library holds every kind table. Lookups go through the maps,
// TowerOrder keeps the file order for menus and hotkeys.
type Library struct {
	Towers     map[component.TowerKind]TowerDefinition
	TowerOrder []component.TowerKind
	Enemies    map[component.EnemyKind]EnemyDefinition
	Upgrades   map[component.UpgradeTrack]UpgradeDefinition
	Wave       WaveTuning
}

type defsFile struct {
	Towers   []TowerDefinition   `yaml:"towers"`
	Enemies  []EnemyDefinition   `yaml:"enemies"`
	Upgrades []UpgradeDefinition `yaml:"upgrades"`
	Wave     WaveTuning          `yaml:"wave"`
}

// Default returns the tables compiled into the binary.
func Default() (*Library, error) {
	lib, err := Parse(embeddedDefs)
	if err != nil {
		return nil, fmt.Errorf("embedded defs: %w", err)
	}
	return lib, nil
}

// Load reads the tables from path; an empty path means the embedded defaults.
func Load(path string) (*Library, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defs %s: %w", path, err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load defs %s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes and validates a defs document.
func Parse(data []byte) (*Library, error) {
	var f defsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unmarshal defs: %w", err)
	}

	lib := &Library{
		Towers:   make(map[component.TowerKind]TowerDefinition, len(f.Towers)),
		Enemies:  make(map[component.EnemyKind]EnemyDefinition, len(f.Enemies)),
		Upgrades: make(map[component.UpgradeTrack]UpgradeDefinition, len(f.Upgrades)),
		Wave:     f.Wave,
	}

	for _, def := range f.Towers {
		if err := validateTower(def); err != nil {
			return nil, err
		}
		if _, dup := lib.Towers[def.ID]; dup {
			return nil, fmt.Errorf("tower %q defined twice", def.ID)
		}
		lib.Towers[def.ID] = def
		lib.TowerOrder = append(lib.TowerOrder, def.ID)
	}
	if len(lib.Towers) == 0 {
		return nil, errors.New("defs: no towers defined")
	}

	known := make(map[component.EnemyKind]bool, len(component.EnemyKinds))
	for _, k := range component.EnemyKinds {
		known[k] = true
	}
	for _, def := range f.Enemies {
		if !known[def.Kind] {
			return nil, fmt.Errorf("unknown enemy kind %q", def.Kind)
		}
		if def.HealthFactor <= 0 || def.SpeedFactor <= 0 || def.Interval <= 0 {
			return nil, fmt.Errorf("enemy %q: factors and interval must be positive", def.Kind)
		}
		lib.Enemies[def.Kind] = def
	}
	for _, k := range component.EnemyKinds {
		if _, ok := lib.Enemies[k]; !ok {
			return nil, fmt.Errorf("enemy kind %q is missing", k)
		}
	}

	for _, def := range f.Upgrades {
		track, ok := component.ParseUpgradeTrack(def.Track)
		if !ok {
			return nil, fmt.Errorf("unknown upgrade track %q", def.Track)
		}
		if def.Multiplier <= 0 || def.CostFraction <= 0 || def.Growth <= 0 {
			return nil, fmt.Errorf("upgrade %q: multiplier, cost_fraction and growth must be positive", def.Track)
		}
		lib.Upgrades[track] = def
	}
	for _, t := range component.UpgradeTracks {
		if _, ok := lib.Upgrades[t]; !ok {
			return nil, fmt.Errorf("upgrade track %q is missing", t)
		}
	}

	if f.Wave.MinInterval <= 0 || f.Wave.BaseHealth <= 0 || f.Wave.BaseSpeed <= 0 {
		return nil, errors.New("wave: base_health, base_speed and min_interval must be positive")
	}
	return lib, nil
}

func validateTower(def TowerDefinition) error {
	switch {
	case def.ID == "":
		return errors.New("tower without id")
	case def.Cost <= 0:
		return fmt.Errorf("tower %q: cost must be positive", def.ID)
	case def.Damage < 0 || def.SplashRadius < 0:
		return fmt.Errorf("tower %q: damage and splash_radius must not be negative", def.ID)
	case def.Range <= 0 || def.FireInterval <= 0 || def.ProjectileSpeed <= 0:
		return fmt.Errorf("tower %q: range, fire_interval and projectile_speed must be positive", def.ID)
	case def.Slow != nil && (def.Slow.Multiplier <= 0 || def.Slow.Multiplier > 1 || def.Slow.Duration <= 0):
		return fmt.Errorf("tower %q: slow multiplier must be in (0, 1] with a positive duration", def.ID)
	}
	return nil
}

// Tower returns the definition of kind.
func (l *Library) Tower(kind component.TowerKind) (TowerDefinition, bool) {
	def, ok := l.Towers[kind]
	return def, ok
}

// Enemy returns the definition of kind.
func (l *Library) Enemy(kind component.EnemyKind) (EnemyDefinition, bool) {
	def, ok := l.Enemies[kind]
	return def, ok
}
