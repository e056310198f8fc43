package ui

import (
	"fmt"
	"image"

	"floor-defense/internal/component"
	"floor-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	paletteButtonWidth  = 90
	paletteButtonHeight = 48
	paletteSpacing      = 6
)

// TowerPalette is the row of buildable tower kinds. Keys 1..9 pick a kind too.
type TowerPalette struct {
	Selected component.TowerKind
	kinds    []component.TowerKind
	buttons  []*Button
	lib      *defs.Library
}

func NewTowerPalette(x, y int, lib *defs.Library, face text.Face) *TowerPalette {
	p := &TowerPalette{lib: lib}
	for i, kind := range lib.TowerOrder {
		def, _ := lib.Tower(kind)
		left := x + i*(paletteButtonWidth+paletteSpacing)
		b := NewButton(image.Rect(left, y, left+paletteButtonWidth, y+paletteButtonHeight), fmt.Sprintf("%d %s", i+1, def.Name), face)
		b.SubText = fmt.Sprintf("$%d", def.Cost)
		p.kinds = append(p.kinds, kind)
		p.buttons = append(p.buttons, b)
	}
	if len(p.kinds) > 0 {
		p.Selected = p.kinds[0]
	}
	return p
}

// SelectIndex picks the i-th kind; out of range is ignored.
func (p *TowerPalette) SelectIndex(i int) bool {
	if i < 0 || i >= len(p.kinds) {
		return false
	}
	p.Selected = p.kinds[i]
	return true
}

// Click selects the kind under the cursor.
func (p *TowerPalette) Click(x, y int) bool {
	for i, b := range p.buttons {
		if b.Contains(x, y) {
			return p.SelectIndex(i)
		}
	}
	return false
}

// Draw greys out kinds the player cannot afford.
func (p *TowerPalette) Draw(screen *ebiten.Image, money int) {
	cx, cy := ebiten.CursorPosition()
	for i, b := range p.buttons {
		def, _ := p.lib.Tower(p.kinds[i])
		b.Disabled = def.Cost > money
		accent := def.Color.RGBA
		b.Draw(screen, cx, cy, p.kinds[i] == p.Selected, &accent)
	}
}
