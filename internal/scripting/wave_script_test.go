package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"floor-defense/internal/component"
	"floor-defense/internal/defs"
	"floor-defense/internal/system"

	"go.uber.org/zap"
)

func formulas(t *testing.T) *system.FormulaBuilder {
	t.Helper()
	lib, err := defs.Default()
	if err != nil {
		t.Fatalf("defs.Default() error = %v", err)
	}
	return system.NewFormulaBuilder(lib, 3, 5)
}

func TestWaveScript_BuildsGroupsInOrder(t *testing.T) {
	ws, err := NewWaveScript(`
function build_wave(wave, floor)
  return {
    { kind = "normal", count = 2, health = 50, speed = 70, reward = 10, interval = 0.5 },
    { kind = "boss", health = 900, speed = 40, reward = 100, interval = 2 },
  }
end`, formulas(t), 5, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWaveScript() error = %v", err)
	}
	defer ws.Close()

	queue, err := ws.BuildWave(1, 1)
	if err != nil {
		t.Fatalf("BuildWave() error = %v", err)
	}
	if len(queue) != 3 {
		t.Fatalf("len(queue) = %d, want 3", len(queue))
	}
	if queue[0].Kind != component.EnemyNormal || queue[1].Kind != component.EnemyNormal {
		t.Errorf("first two kinds = %s, %s", queue[0].Kind, queue[1].Kind)
	}
	boss := queue[2]
	if boss.Kind != component.EnemyBoss || boss.LifeCost != 5 || boss.Health != 900 {
		t.Errorf("boss spec = %+v", boss)
	}
	if queue[0].LifeCost != 1 || queue[0].Interval != 0.5 {
		t.Errorf("normal spec = %+v", queue[0])
	}
}

func TestWaveScript_BaseStatsMatchFormulas(t *testing.T) {
	fb := formulas(t)
	ws, err := NewWaveScript(`
function build_wave(wave, floor)
  local b = base_stats(wave, floor)
  return {{ kind = "normal", health = b.health, speed = b.speed, reward = b.reward, interval = 1 }}
end`, fb, 5, zap.NewNop())
	if err != nil {
		t.Fatalf("NewWaveScript() error = %v", err)
	}
	defer ws.Close()

	queue, err := ws.BuildWave(2, 2)
	if err != nil {
		t.Fatalf("BuildWave() error = %v", err)
	}
	base := fb.Base(2, 2)
	if queue[0].Health != base.Health || queue[0].Speed != base.Speed || queue[0].Reward != int(base.Reward) {
		t.Errorf("spec = %+v, base = %+v", queue[0], base)
	}
}

func TestWaveScript_FallsBackToFormulas(t *testing.T) {
	cases := []struct {
		name   string
		source string
	}{
		{"missing function", `x = 1`},
		{"runtime error", `function build_wave(w, f) error("boom") end`},
		{"not a table", `function build_wave(w, f) return 42 end`},
		{"empty wave", `function build_wave(w, f) return {} end`},
		{"unknown kind", `function build_wave(w, f) return {{ kind = "dragon", health = 1, speed = 1, reward = 1, interval = 1 }} end`},
		{"zero health", `function build_wave(w, f) return {{ kind = "fast", health = 0, speed = 1, reward = 1, interval = 1 }} end`},
	}

	fb := formulas(t)
	want, err := fb.BuildWave(1, 1)
	if err != nil {
		t.Fatalf("FormulaBuilder.BuildWave() error = %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ws, err := NewWaveScript(tc.source, fb, 5, zap.NewNop())
			if err != nil {
				t.Fatalf("NewWaveScript() error = %v", err)
			}
			defer ws.Close()

			got, err := ws.BuildWave(1, 1)
			if err != nil {
				t.Fatalf("BuildWave() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("len = %d, want formula wave of %d", len(got), len(want))
			}
			for i := range got {
				if got[i] != want[i] {
					t.Errorf("spec %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestWaveScript_SyntaxErrorFailsLoad(t *testing.T) {
	if _, err := NewWaveScript(`function build_wave(`, formulas(t), 5, zap.NewNop()); err == nil {
		t.Fatal("NewWaveScript() accepted broken source")
	}
}

func TestLoadWaveScript_SampleFile(t *testing.T) {
	ws, err := LoadWaveScript(filepath.Join("..", "..", "scripts", "waves.lua"), formulas(t), 5, zap.NewNop())
	if err != nil {
		t.Fatalf("LoadWaveScript() error = %v", err)
	}
	defer ws.Close()

	queue, err := ws.BuildWave(3, 1)
	if err != nil {
		t.Fatalf("BuildWave() error = %v", err)
	}
	last := queue[len(queue)-1]
	if last.Kind != component.EnemyBoss || last.LifeCost != 5 {
		t.Errorf("last spec = %+v, want the boss", last)
	}
}

func TestLoadWaveScript_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.lua")
	if _, err := os.Stat(path); err == nil {
		t.Fatal("temp file unexpectedly exists")
	}
	if _, err := LoadWaveScript(path, formulas(t), 5, zap.NewNop()); err == nil {
		t.Fatal("LoadWaveScript() error = nil for a missing file")
	}
}
