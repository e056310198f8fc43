package system

import (
	"floor-defense/internal/component"
	"floor-defense/internal/types"
)

// SelectTarget picks the live enemy in range that is furthest along the path.
// Ties go to the enemy closer to its next waypoint, then to the lower ID.
func SelectTarget(tower *component.Tower, enemies []*component.Enemy, waypoints []component.Position) (types.EntityID, bool) {
	var best *component.Enemy
	bestRemaining := 0.0
	for _, e := range enemies {
		if e.IsDead {
			continue
		}
		if tower.Position.DistanceTo(e.Position) > tower.Range {
			continue
		}
		remaining := remainingToNext(e, waypoints)
		if best == nil || ahead(e, remaining, best, bestRemaining) {
			best = e
			bestRemaining = remaining
		}
	}
	if best == nil {
		return 0, false
	}
	return best.ID, true
}

func ahead(a *component.Enemy, aRemaining float64, b *component.Enemy, bRemaining float64) bool {
	if a.PathIndex != b.PathIndex {
		return a.PathIndex > b.PathIndex
	}
	if aRemaining != bRemaining {
		return aRemaining < bRemaining
	}
	return a.ID < b.ID
}

// remainingToNext — расстояние до следующего вейпоинта (0 на последнем).
func remainingToNext(e *component.Enemy, waypoints []component.Position) float64 {
	next := e.PathIndex + 1
	if next >= len(waypoints) {
		return 0
	}
	return e.Position.DistanceTo(waypoints[next])
}
