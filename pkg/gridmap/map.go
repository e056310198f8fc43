// pkg/gridmap/map.go
package gridmap

// GridMap is the playfield of one floor: bounds plus the immutable enemy path.
type GridMap struct {
	Columns  int
	Rows     int
	CellSize float64
	Path     []Cell
	pathSet  map[Cell]int
}

// NewGridMap builds a map around an already generated path.
func NewGridMap(columns, rows int, cellSize float64, path []Cell) *GridMap {
	m := &GridMap{
		Columns:  columns,
		Rows:     rows,
		CellSize: cellSize,
		Path:     append([]Cell(nil), path...),
		pathSet:  make(map[Cell]int, len(path)),
	}
	for i, c := range m.Path {
		m.pathSet[c] = i
	}
	return m
}

// InBounds проверяет, лежит ли клетка внутри карты
func (m *GridMap) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < m.Columns && c.Row >= 0 && c.Row < m.Rows
}

// IsPath reports whether enemies walk over c.
func (m *GridMap) IsPath(c Cell) bool {
	_, ok := m.pathSet[c]
	return ok
}

// Waypoints returns the pixel centres of the path cells, in order.
func (m *GridMap) Waypoints() [][2]float64 {
	points := make([][2]float64, len(m.Path))
	for i, c := range m.Path {
		x, y := c.ToPixel(m.CellSize)
		points[i] = [2]float64{x, y}
	}
	return points
}
