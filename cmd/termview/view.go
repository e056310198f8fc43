package main

import (
	"fmt"
	"unicode"

	"floor-defense/internal/app"
	"floor-defense/internal/component"
	"floor-defense/pkg/gridmap"

	"github.com/gdamore/tcell/v2"
)

const (
	hudRows   = 3
	cellWidth = 2 // два символа на клетку
)

var (
	styleDefault = tcell.StyleDefault
	stylePath    = tcell.StyleDefault.Background(tcell.NewRGBColor(42, 95, 59))
	styleEntry   = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleExit    = tcell.StyleDefault.Background(tcell.ColorRed)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleOver    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 92, 122)).Bold(true)
)

// view is the terminal frame of one snapshot.
type view struct {
	cursor  gridmap.Cell
	kind    component.TowerKind
	status  string
	leaders []string
}

func drawString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func rgb(c interface{ RGBA() (r, g, b, a uint32) }) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func towerGlyph(kind component.TowerKind) rune {
	for _, r := range string(kind) {
		return unicode.ToUpper(r)
	}
	return 'T'
}

func enemyGlyph(kind component.EnemyKind) rune {
	switch kind {
	case component.EnemyFast:
		return '>'
	case component.EnemyTank:
		return '#'
	case component.EnemyBoss:
		return '@'
	default:
		return 'o'
	}
}

func (v *view) draw(s tcell.Screen, snap *app.Snapshot) {
	s.Clear()
	drawString(s, 0, 0, snap.HUD.Summary(), styleDefault)
	phase := snap.HUD.Phase.String()
	if snap.HUD.Paused {
		phase += " (paused)"
	}
	drawString(s, 0, 1, fmt.Sprintf("build: %s   phase: %s   pending %d", v.kind, phase, snap.HUD.Pending), styleDefault)
	if v.status != "" {
		drawString(s, 0, 2, v.status, styleStatus)
	}

	for i, c := range snap.Path {
		style := stylePath
		switch i {
		case 0:
			style = styleEntry
		case len(snap.Path) - 1:
			style = styleExit
		}
		v.setCell(s, c, ' ', ' ', style)
	}

	for _, t := range snap.Towers {
		style := styleDefault.Foreground(rgb(t.Color)).Bold(t.Selected)
		level := rune('0' + min(t.Level, 9))
		v.setCell(s, t.Cell, towerGlyph(t.Kind), level, style)
	}

	for _, e := range snap.Enemies {
		cell := gridmap.PixelToCell(e.X, e.Y, snap.CellSize)
		style := stylePath.Foreground(rgb(e.Color))
		if e.Slowed {
			style = style.Underline(true)
		}
		v.setCell(s, cell, enemyGlyph(e.Kind), ' ', style)
	}

	for _, p := range snap.Projectiles {
		cell := gridmap.PixelToCell(p.X, p.Y, snap.CellSize)
		x, y := v.screenPos(cell)
		s.SetContent(x+1, y, '*', nil, styleDefault.Foreground(tcell.ColorWhite))
	}

	x, y := v.screenPos(v.cursor)
	mainc, _, style, _ := s.GetContent(x, y)
	s.SetContent(x, y, mainc, nil, style.Reverse(true))

	if snap.HUD.Phase == component.GameOverPhase {
		top := hudRows + snap.Rows + 1
		drawString(s, 0, top, "GAME OVER  -  n: new run  q: quit", styleOver)
		for i, line := range v.leaders {
			drawString(s, 0, top+1+i, line, styleDefault)
		}
	}
	s.Show()
}

func (v *view) screenPos(c gridmap.Cell) (int, int) {
	return c.Col * cellWidth, hudRows + c.Row
}

func (v *view) setCell(s tcell.Screen, c gridmap.Cell, left, right rune, style tcell.Style) {
	x, y := v.screenPos(c)
	s.SetContent(x, y, left, nil, style)
	s.SetContent(x+1, y, right, nil, style)
}
