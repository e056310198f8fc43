// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"floor-defense/internal/component"
	"floor-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const infoLineHeight = 16

// UpgradeKeys are the hotkey labels of the upgrade tracks.
var UpgradeKeys = map[component.UpgradeTrack]string{
	component.TrackDamage: "D",
	component.TrackRange:  "R",
	component.TrackRate:   "F",
}

// InfoPanel displays the selected tower and its upgrade prices.
type InfoPanel struct {
	X, Y float64
	face text.Face
}

func NewInfoPanel(x, y float64, face text.Face) *InfoPanel {
	return &InfoPanel{X: x, Y: y, face: face}
}

// Lines describes t. costOf returns the next upgrade price of a track.
func (p *InfoPanel) Lines(name string, t *component.Tower, costOf func(component.UpgradeTrack) (int, error)) []string {
	lines := []string{fmt.Sprintf("%s  L%d  sell $%d  [X]", name, t.Level, t.SellValue)}
	if t.Level >= config.MaxTowerLevel {
		return append(lines, "max level")
	}
	for _, track := range component.UpgradeTracks {
		cost, err := costOf(track)
		if err != nil {
			continue
		}
		var stat string
		switch track {
		case component.TrackDamage:
			stat = fmt.Sprintf("dmg %.0f", t.Damage)
		case component.TrackRange:
			stat = fmt.Sprintf("rng %.0f", t.Range)
		case component.TrackRate:
			stat = fmt.Sprintf("%.2fs", t.FireInterval)
		}
		lines = append(lines, fmt.Sprintf("[%s] %s  $%d", UpgradeKeys[track], stat, cost))
	}
	return lines
}

func (p *InfoPanel) Draw(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		drawText(screen, p.face, line, p.X, p.Y+float64(i*infoLineHeight), color.RGBA{240, 240, 240, 255})
	}
}
