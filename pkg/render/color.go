// pkg/render/color.go
package render

import (
	"image/color"

	"floor-defense/internal/utils"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	GridLineColor   color.RGBA
	PathColor       color.RGBA
	PathStrokeColor color.RGBA
	EntryColor      color.RGBA
	ExitColor       color.RGBA
	TextColor       color.RGBA
	StrokeWidth     float32
}

// UnitColors are the colors of dynamic overlays.
type UnitColors struct {
	TowerStroke    color.RGBA
	Range          color.RGBA
	HealthBarBack  color.RGBA
	HealthBarFront color.RGBA
	SlowedTint     color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Tint смешивает цвет с оттенком, alpha исходного цвета сохраняется.
func Tint(c, tint color.RGBA, amount float32) color.RGBA {
	out := utils.LerpColor(c, tint, amount)
	out.A = c.A
	return out
}

// LevelColor brightens a tower color as it gains levels.
func LevelColor(c color.RGBA, level, maxLevel int) color.RGBA {
	if maxLevel <= 1 {
		return c
	}
	t := float32(level-1) / float32(maxLevel-1) * 0.5
	return Tint(c, color.RGBA{255, 255, 255, 255}, t)
}
