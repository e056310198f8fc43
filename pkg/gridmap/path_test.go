package gridmap

import (
	"errors"
	"testing"
)

func TestRandomWalk_SatisfiesContract(t *testing.T) {
	sizes := []struct{ cols, rows int }{{20, 12}, {5, 5}, {3, 3}, {40, 8}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 25; seed++ {
			path := NewRandomWalk(seed).GeneratePath(size.cols, size.rows)
			if err := Validate(path, size.cols, size.rows); err != nil {
				t.Fatalf("seed %d, %dx%d: %v (path %v)", seed, size.cols, size.rows, err, path)
			}
			if path[0] != (Cell{Col: 0, Row: size.rows / 2}) {
				t.Errorf("seed %d: start = %v, want left-middle", seed, path[0])
			}
			for _, c := range path {
				if c.Row < 1 || c.Row > size.rows-2 {
					t.Errorf("seed %d: row %d outside [1, %d]", seed, c.Row, size.rows-2)
				}
			}
		}
	}
}

func TestRandomWalk_SameSeedSamePath(t *testing.T) {
	a := NewRandomWalk(42).GeneratePath(20, 12)
	b := NewRandomWalk(42).GeneratePath(20, 12)
	if len(a) != len(b) {
		t.Fatalf("len = %d and %d, want equal", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d = %v and %v, want equal", i, a[i], b[i])
		}
	}
}

func TestRandomWalk_ReportedSeedReproducesPath(t *testing.T) {
	w := NewRandomWalk(0)
	if w.Seed() == 0 {
		t.Fatal("zero seed was not replaced")
	}
	a := w.GeneratePath(20, 12)
	b := NewRandomWalk(w.Seed()).GeneratePath(20, 12)
	if len(a) != len(b) {
		t.Fatalf("len = %d and %d, want equal", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d = %v and %v, want equal", i, a[i], b[i])
		}
	}
}

func TestRandomWalk_ZeroTurnWeightIsStraight(t *testing.T) {
	w := NewRandomWalk(7)
	w.TurnWeight = 0
	path := w.GeneratePath(10, 6)
	if len(path) != 10 {
		t.Fatalf("len = %d, want 10", len(path))
	}
	for i, c := range path {
		if c.Row != 3 || c.Col != i {
			t.Errorf("cell %d = %v, want {%d 3}", i, c, i)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		path []Cell
		want error
	}{
		{"empty", nil, ErrEmptyPath},
		{"ok", []Cell{{0, 1}, {1, 1}, {1, 2}, {2, 2}}, nil},
		{"gap", []Cell{{0, 1}, {2, 1}}, ErrNotConnected},
		{"revisit", []Cell{{0, 1}, {1, 1}, {1, 2}, {1, 1}, {2, 1}}, ErrRevisitedCell},
		{"not to right edge", []Cell{{0, 1}, {1, 1}}, ErrWrongEdges},
		{"backtrack", []Cell{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}, ErrBacktracks},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.path, 3, 3)
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGridMap(t *testing.T) {
	path := []Cell{{0, 1}, {1, 1}, {2, 1}}
	m := NewGridMap(3, 3, 50, path)

	if !m.IsPath(Cell{1, 1}) || m.IsPath(Cell{1, 0}) {
		t.Error("IsPath mismatch")
	}
	if m.InBounds(Cell{3, 0}) || !m.InBounds(Cell{2, 2}) {
		t.Error("InBounds mismatch")
	}
	wp := m.Waypoints()
	if wp[0] != [2]float64{25, 75} || wp[2] != [2]float64{125, 75} {
		t.Errorf("Waypoints = %v", wp)
	}
	if got := PixelToCell(74.9, 99, 50); got != (Cell{1, 1}) {
		t.Errorf("PixelToCell = %v, want {1 1}", got)
	}
	if !(Cell{1, 1}).IsAdjacent(Cell{1, 2}) || (Cell{1, 1}).IsAdjacent(Cell{2, 2}) {
		t.Error("IsAdjacent mismatch")
	}
}
