// pkg/gridmap/cell.go
package gridmap

import (
	"math"

	"floor-defense/pkg/utils"
)

// Cell представляет клетку сетки (столбец, строка)
type Cell struct {
	Col, Row int
}

// ToPixel возвращает центр клетки в пикселях
func (c Cell) ToPixel(cellSize float64) (x, y float64) {
	x = float64(c.Col)*cellSize + cellSize/2
	y = float64(c.Row)*cellSize + cellSize/2
	return
}

// PixelToCell конвертирует пиксельные координаты в клетку
func PixelToCell(x, y, cellSize float64) Cell {
	return Cell{
		Col: int(math.Floor(x / cellSize)),
		Row: int(math.Floor(y / cellSize)),
	}
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{Col: c.Col + other.Col, Row: c.Row + other.Row}
}

// Distance is the manhattan distance between two cells.
func (c Cell) Distance(to Cell) int {
	return utils.Abs(c.Col-to.Col) + utils.Abs(c.Row-to.Row)
}

// IsAdjacent reports whether the cells share an edge.
func (c Cell) IsAdjacent(other Cell) bool {
	return c.Distance(other) == 1
}
