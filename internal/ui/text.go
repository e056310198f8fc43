package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func drawText(dst *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawOutlinedText рисует текст с обводкой в thickness пикселей.
func drawOutlinedText(dst *ebiten.Image, face text.Face, s string, x, y float64, clr, outline color.Color, thickness int) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx != 0 || dy != 0 {
				drawText(dst, face, s, x+float64(dx), y+float64(dy), outline)
			}
		}
	}
	drawText(dst, face, s, x, y, clr)
}
