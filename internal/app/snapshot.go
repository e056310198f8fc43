package app

import (
	"image/color"

	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/types"
	"floor-defense/pkg/gridmap"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Snapshot is a value copy of everything a renderer needs for one frame.
// Nothing in it points back into the simulation.
type Snapshot struct {
	Columns     int
	Rows        int
	CellSize    float64
	Path        []gridmap.Cell
	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	HUD         HUD
}

type EnemyView struct {
	ID             types.EntityID
	Kind           component.EnemyKind
	X, Y           float64
	Radius         float64
	HealthFraction float64
	Slowed         bool
	Flashing       bool // только что получил урон
	Color          color.RGBA
}

type TowerView struct {
	ID        types.EntityID
	Kind      component.TowerKind
	Cell      gridmap.Cell
	X, Y      float64
	Range     float64
	Level     int
	SellValue int
	Selected  bool
	Color     color.RGBA
}

type ProjectileView struct {
	X, Y     float64
	Piercing bool
	Splash   bool
	Slow     bool
}

// HUD — числа для верхней панели.
type HUD struct {
	Money         int
	Lives         int
	Score         int
	Wave          int
	WavesPerFloor int
	Floor         int
	Pending       int
	Speed         float64
	Paused        bool
	Phase         component.Phase
	RunID         string
}

var hudPrinter = message.NewPrinter(language.English)

// Summary formats the HUD numbers with thousands separators.
func (h HUD) Summary() string {
	return hudPrinter.Sprintf("Money %d   Lives %d   Score %d   Wave %d/%d   Floor %d   x%v",
		h.Money, h.Lives, h.Score, h.Wave, h.WavesPerFloor, h.Floor, h.Speed)
}

// Snapshot copies the current state for drawing. Dead entities still
// waiting for cleanup are left out.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Columns:  g.Map.Columns,
		Rows:     g.Map.Rows,
		CellSize: g.Map.CellSize,
		Path:     append([]gridmap.Cell(nil), g.Map.Path...),
		HUD: HUD{
			Money:         g.Ledger.Balance(),
			Lives:         g.lives,
			Score:         g.Ledger.Score(),
			Wave:          g.wave,
			WavesPerFloor: g.sim.WavesPerFloor,
			Floor:         g.floor,
			Pending:       g.ECS.Wave.Pending(),
			Speed:         g.SpeedMultiplier(),
			Paused:        g.isPaused,
			Phase:         g.phase,
			RunID:         g.RunID,
		},
	}

	for _, e := range g.ECS.Enemies {
		if e.IsDead {
			continue
		}
		view := EnemyView{
			ID:             e.ID,
			Kind:           e.Kind,
			X:              e.Position.X,
			Y:              e.Position.Y,
			Radius:         config.EnemyRadius,
			HealthFraction: e.HealthFraction(),
			Slowed:         e.IsSlowed(),
			Flashing:       e.Flash.Active(),
		}
		if def, ok := g.Defs.Enemy(e.Kind); ok {
			view.Color = def.Color.RGBA
			if def.Radius > 0 {
				view.Radius = def.Radius
			}
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, t := range g.ECS.Towers {
		view := TowerView{
			ID:        t.ID,
			Kind:      t.Kind,
			Cell:      t.Cell,
			X:         t.Position.X,
			Y:         t.Position.Y,
			Range:     t.Range,
			Level:     t.Level,
			SellValue: t.SellValue,
			Selected:  t.IsSelected,
		}
		if def, ok := g.Defs.Tower(t.Kind); ok {
			view.Color = def.Color.RGBA
		}
		snap.Towers = append(snap.Towers, view)
	}

	for _, p := range g.ECS.Projectiles {
		if p.IsDead {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X:        p.Position.X,
			Y:        p.Position.Y,
			Piercing: p.Effects.Piercing,
			Splash:   p.Effects.HasSplash(),
			Slow:     p.Effects.Slow != nil,
		})
	}
	return snap
}
