// component/tower.go
package component

import (
	"floor-defense/internal/types"
	"floor-defense/pkg/gridmap"
)

// TowerKind — тип башни (ключ в таблице defs)
type TowerKind string

// UpgradeTrack is one of the three independent upgrade lines.
type UpgradeTrack int

const (
	TrackDamage UpgradeTrack = iota
	TrackRange
	TrackRate
)

// UpgradeTracks lists every track in display order.
var UpgradeTracks = []UpgradeTrack{TrackDamage, TrackRange, TrackRate}

func (t UpgradeTrack) String() string {
	switch t {
	case TrackDamage:
		return "damage"
	case TrackRange:
		return "range"
	case TrackRate:
		return "rate"
	default:
		return "unknown"
	}
}

type Tower struct {
	ID       types.EntityID
	Kind     TowerKind
	Cell     gridmap.Cell // Клетка, на которой стоит башня
	Position Position     // Центр клетки, фиксируется при постройке
	Level    int

	BaseDamage       float64
	BaseRange        float64
	BaseFireInterval float64

	Damage          float64
	Range           float64
	FireInterval    float64 // секунд между выстрелами
	ProjectileSpeed float64
	Cooldown        float64 // Оставшееся время до следующей проверки/выстрела

	Cost      int // базовая цена
	Spent     int // всего потрачено, включая улучшения
	SellValue int

	Effects  Effects
	Upgrades [3]int // сколько раз улучшен каждый трек
	Shots    int

	IsSelected bool
}

// ParseUpgradeTrack is the inverse of UpgradeTrack.String.
func ParseUpgradeTrack(s string) (UpgradeTrack, bool) {
	for _, t := range UpgradeTracks {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}
