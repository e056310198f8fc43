// pkg/gridmap/path.go
package gridmap

import (
	"errors"
	"fmt"

	"floor-defense/internal/utils"
)

//go:generate go tool mockgen -destination=./mocks/provider_mock.go -package=mocks . Provider

// Provider produces the ordered cell sequence enemies follow on a floor.
type Provider interface {
	GeneratePath(columns, rows int) []Cell
}

var (
	ErrEmptyPath     = errors.New("path is empty")
	ErrNotConnected  = errors.New("path is not connected")
	ErrRevisitedCell = errors.New("path revisits a cell")
	ErrWrongEdges    = errors.New("path must run from the left edge to the right edge")
	ErrBacktracks    = errors.New("path moves against the traversal direction")
)

// RandomWalk генерирует путь случайным блужданием слева направо:
// на каждом шаге выбирается вправо, вверх или вниз, без повторного посещения клеток.
type RandomWalk struct {
	rng *utils.PRNGService
	// TurnWeight is the weight of up/down moves relative to a right move (weight 1).
	TurnWeight int
}

// NewRandomWalk creates a walker; seed 0 is time based.
func NewRandomWalk(seed int64) *RandomWalk {
	return &RandomWalk{rng: utils.NewPRNGService(seed), TurnWeight: 1}
}

// Seed is the seed of the walk, the clock-derived one when created with 0.
func (w *RandomWalk) Seed() int64 {
	return w.rng.Seed()
}

// GeneratePath starts at the left-middle cell and walks until the right edge.
// Rows are kept within [1, rows-2] so the path never hugs the border.
func (w *RandomWalk) GeneratePath(columns, rows int) []Cell {
	if columns <= 0 || rows <= 0 {
		return nil
	}
	current := Cell{Col: 0, Row: rows / 2}
	path := []Cell{current}
	visited := map[Cell]bool{current: true}

	for current.Col < columns-1 {
		options := []Cell{{Col: 1, Row: 0}}
		weights := []int{1}
		if current.Row > 1 {
			options = append(options, Cell{Col: 0, Row: -1})
			weights = append(weights, w.TurnWeight)
		}
		if current.Row < rows-2 {
			options = append(options, Cell{Col: 0, Row: 1})
			weights = append(weights, w.TurnWeight)
		}

		moved := false
		for !moved && len(options) > 0 {
			i := w.rng.ChooseWeighted(weights)
			next := current.Add(options[i])
			if !visited[next] {
				current = next
				path = append(path, current)
				visited[current] = true
				moved = true
			} else {
				options = append(options[:i], options[i+1:]...)
				weights = append(weights[:i], weights[i+1:]...)
			}
		}
		// The column to the right is never visited, so a move is always found.
		if !moved {
			break
		}
	}
	return path
}

// Validate checks the provider contract: connected, left edge to right edge,
// never moving left and never revisiting a cell.
func Validate(path []Cell, columns, rows int) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if path[0].Col != 0 || path[len(path)-1].Col != columns-1 {
		return ErrWrongEdges
	}
	seen := make(map[Cell]bool, len(path))
	for i, c := range path {
		if c.Col < 0 || c.Col >= columns || c.Row < 0 || c.Row >= rows {
			return fmt.Errorf("cell %v outside %dx%d grid: %w", c, columns, rows, ErrNotConnected)
		}
		if seen[c] {
			return fmt.Errorf("cell %v: %w", c, ErrRevisitedCell)
		}
		seen[c] = true
		if i == 0 {
			continue
		}
		prev := path[i-1]
		if !prev.IsAdjacent(c) {
			return fmt.Errorf("step %d %v -> %v: %w", i, prev, c, ErrNotConnected)
		}
		if c.Col < prev.Col {
			return fmt.Errorf("step %d %v -> %v: %w", i, prev, c, ErrBacktracks)
		}
	}
	return nil
}

// StraightPath runs along the middle row. Used when a provider breaks its contract.
func StraightPath(columns, rows int) []Cell {
	path := make([]Cell, 0, columns)
	for col := 0; col < columns; col++ {
		path = append(path, Cell{Col: col, Row: rows / 2})
	}
	return path
}
