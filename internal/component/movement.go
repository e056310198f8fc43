// component/movement.go
package component

import (
	"math"

	"floor-defense/pkg/utils"
)

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo returns the euclidean distance to other.
func (p Position) DistanceTo(other Position) float64 {
	return utils.Distance(p.X, p.Y, other.X, other.Y)
}

// MoveTowards shifts p by at most step along the straight line to target
// and never past it.
func (p Position) MoveTowards(target Position, step float64) Position {
	dx := target.X - p.X
	dy := target.Y - p.Y
	dist := math.Hypot(dx, dy)
	if dist <= step || dist == 0 {
		return target
	}
	return Position{X: p.X + dx/dist*step, Y: p.Y + dy/dist*step}
}
