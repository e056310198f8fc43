package system

import (
	"testing"

	"floor-defense/internal/component"
	"floor-defense/internal/types"
)

func TestSelectTarget(t *testing.T) {
	waypoints := []component.Position{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 200, Y: 0}}
	tower := &component.Tower{Position: component.Position{X: 100, Y: 50}, Range: 120}

	type spec struct {
		id        types.EntityID
		x         float64
		pathIndex int
		dead      bool
	}
	tests := []struct {
		name    string
		enemies []spec
		want    types.EntityID
		found   bool
	}{
		{"empty", nil, 0, false},
		{"out of range", []spec{{id: 1, x: 300, pathIndex: 1}}, 0, false},
		{"dead ignored", []spec{{id: 1, x: 100, pathIndex: 1, dead: true}}, 0, false},
		{"furthest path index wins", []spec{{id: 1, x: 95, pathIndex: 0}, {id: 2, x: 110, pathIndex: 1}}, 2, true},
		{"same index, closer to next waypoint", []spec{{id: 1, x: 40, pathIndex: 0}, {id: 2, x: 60, pathIndex: 0}}, 2, true},
		{"full tie goes to lower id", []spec{{id: 7, x: 60, pathIndex: 0}, {id: 3, x: 60, pathIndex: 0}}, 3, true},
		{"dead leader skipped", []spec{{id: 1, x: 150, pathIndex: 1, dead: true}, {id: 2, x: 80, pathIndex: 0}}, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var enemies []*component.Enemy
			for _, s := range tt.enemies {
				enemies = append(enemies, &component.Enemy{
					ID:        s.id,
					PathIndex: s.pathIndex,
					Position:  component.Position{X: s.x, Y: 0},
					IsDead:    s.dead,
				})
			}
			got, found := SelectTarget(tower, enemies, waypoints)
			if got != tt.want || found != tt.found {
				t.Errorf("SelectTarget() = %d, %v; want %d, %v", got, found, tt.want, tt.found)
			}
		})
	}
}
