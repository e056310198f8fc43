package economy

import (
	"errors"
	"math"
	"testing"

	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/defs"
	"floor-defense/pkg/gridmap"
)

func library(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("defs.Default() error = %v", err)
	}
	return lib
}

func TestUpgradeCost(t *testing.T) {
	lib := library(t)
	tests := []struct {
		track component.UpgradeTrack
		level int
		want  int
	}{
		{component.TrackDamage, 1, 50}, // 100*0.5
		{component.TrackDamage, 2, 75}, // 100*0.5*1.5
		{component.TrackDamage, 3, 113},
		{component.TrackRange, 1, 40},
		{component.TrackRange, 2, 56},
		{component.TrackRate, 1, 60},
		{component.TrackRate, 2, 96},
		{component.TrackRate, 0, 60}, // clamped to level 1
	}
	for _, tt := range tests {
		t.Run(tt.track.String(), func(t *testing.T) {
			if got := UpgradeCost(100, tt.level, lib.Upgrades[tt.track]); got != tt.want {
				t.Errorf("UpgradeCost(100, %d) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestNewTower(t *testing.T) {
	lib := library(t)
	tower := NewTower(lib.Towers["basic"], gridmap.Cell{Col: 2, Row: 3}, 50)

	if tower.Position != (component.Position{X: 125, Y: 175}) {
		t.Errorf("Position = %+v, want cell centre", tower.Position)
	}
	if tower.Level != 1 || tower.Spent != 100 || tower.SellValue != 65 {
		t.Errorf("level/spent/sell = %d/%d/%d, want 1/100/65", tower.Level, tower.Spent, tower.SellValue)
	}
	if tower.Damage != 10 || tower.Range != 140 || tower.FireInterval != 0.8 {
		t.Errorf("stats = %v/%v/%v", tower.Damage, tower.Range, tower.FireInterval)
	}
}

func TestApplyUpgrade(t *testing.T) {
	lib := library(t)
	tower := NewTower(lib.Towers["basic"], gridmap.Cell{}, 50)

	ApplyUpgrade(tower, component.TrackDamage, lib.Upgrades[component.TrackDamage], 50)
	ApplyUpgrade(tower, component.TrackRate, lib.Upgrades[component.TrackRate], 96)
	ApplyUpgrade(tower, component.TrackRange, lib.Upgrades[component.TrackRange], 78)

	if tower.Level != 4 {
		t.Errorf("Level = %d, want 4 (one per upgrade)", tower.Level)
	}
	if math.Abs(tower.Damage-13) > 1e-9 {
		t.Errorf("Damage = %v, want 13", tower.Damage)
	}
	if math.Abs(tower.FireInterval-0.64) > 1e-9 {
		t.Errorf("FireInterval = %v, want 0.64", tower.FireInterval)
	}
	if math.Abs(tower.Range-168) > 1e-9 {
		t.Errorf("Range = %v, want 168", tower.Range)
	}
	if tower.Spent != 100+50+96+78 {
		t.Errorf("Spent = %d", tower.Spent)
	}
	// 65 + 35 + 67 + 55
	if tower.SellValue != 222 {
		t.Errorf("SellValue = %d, want 222", tower.SellValue)
	}
	if tower.SellValue >= tower.Spent {
		t.Error("sell value must stay below the amount spent")
	}
}

func TestSellValueNeverReachesSpent(t *testing.T) {
	lib := library(t)
	for _, kind := range lib.TowerOrder {
		tower := NewTower(lib.Towers[kind], gridmap.Cell{}, 50)
		prev := tower.SellValue
		for CanUpgrade(tower) == nil {
			track := component.UpgradeTracks[tower.Level%len(component.UpgradeTracks)]
			cost := UpgradeCost(tower.Cost, tower.Level, lib.Upgrades[track])
			ApplyUpgrade(tower, track, lib.Upgrades[track], cost)
			if tower.SellValue < prev {
				t.Fatalf("%s: sell value decreased %d -> %d", kind, prev, tower.SellValue)
			}
			if tower.SellValue >= tower.Spent {
				t.Fatalf("%s: sell value %d >= spent %d", kind, tower.SellValue, tower.Spent)
			}
			prev = tower.SellValue
		}
		if tower.Level != config.MaxTowerLevel {
			t.Errorf("%s: stopped at level %d", kind, tower.Level)
		}
		if !errors.Is(CanUpgrade(tower), ErrMaxLevel) {
			t.Errorf("%s: CanUpgrade at max = nil", kind)
		}
	}
}
