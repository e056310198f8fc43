package economy

import (
	"errors"
	"math"

	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/defs"
	"floor-defense/pkg/gridmap"
)

var ErrMaxLevel = errors.New("tower is at max level")

// UpgradeCost = round(baseCost * fraction * growth^(level-1)).
func UpgradeCost(baseCost, level int, def defs.UpgradeDefinition) int {
	if level < 1 {
		level = 1
	}
	return int(math.Round(float64(baseCost) * def.CostFraction * math.Pow(def.Growth, float64(level-1))))
}

// InitialSellValue is the refund for a tower that was never upgraded.
func InitialSellValue(cost int) int {
	return int(math.Round(float64(cost) * config.SellRefundFraction))
}

// SellValueGain is how much an upgrade of the given cost adds to the refund.
func SellValueGain(upgradeCost int) int {
	return int(math.Round(float64(upgradeCost) * config.UpgradeRefundFraction))
}

// NewTower builds a level-1 tower of def standing on cell.
func NewTower(def defs.TowerDefinition, cell gridmap.Cell, cellSize float64) *component.Tower {
	x, y := cell.ToPixel(cellSize)
	return &component.Tower{
		Kind:             def.ID,
		Cell:             cell,
		Position:         component.Position{X: x, Y: y},
		Level:            1,
		BaseDamage:       def.Damage,
		BaseRange:        def.Range,
		BaseFireInterval: def.FireInterval,
		Damage:           def.Damage,
		Range:            def.Range,
		FireInterval:     def.FireInterval,
		ProjectileSpeed:  def.ProjectileSpeed,
		Cost:             def.Cost,
		Spent:            def.Cost,
		SellValue:        InitialSellValue(def.Cost),
		Effects:          def.Effects(),
	}
}

// ApplyUpgrade raises one track of t after cost has been paid.
// The shared level goes up by one whichever track was chosen.
func ApplyUpgrade(t *component.Tower, track component.UpgradeTrack, def defs.UpgradeDefinition, cost int) {
	t.Upgrades[track]++
	n := float64(t.Upgrades[track])
	switch track {
	case component.TrackDamage:
		t.Damage = t.BaseDamage * math.Pow(def.Multiplier, n)
	case component.TrackRange:
		t.Range = t.BaseRange * math.Pow(def.Multiplier, n)
	case component.TrackRate:
		t.FireInterval = t.BaseFireInterval * math.Pow(def.Multiplier, n)
	}
	t.Level++
	t.Spent += cost
	t.SellValue += SellValueGain(cost)
}

// CanUpgrade reports ErrMaxLevel once the shared level is capped.
func CanUpgrade(t *component.Tower) error {
	if t.Level >= config.MaxTowerLevel {
		return ErrMaxLevel
	}
	return nil
}
