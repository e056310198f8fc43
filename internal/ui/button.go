// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную прямоугольную кнопку.
type Button struct {
	Rect       image.Rectangle
	Text       string
	SubText    string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
	face       text.Face
}

func NewButton(rect image.Rectangle, label string, face text.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.RGBA{240, 240, 240, 255},
		BgColor:    color.RGBA{50, 50, 65, 255},
		HoverColor: color.RGBA{80, 80, 100, 255},
		face:       face,
	}
}

func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; accent != nil рисует цветную полоску слева.
func (b *Button) Draw(screen *ebiten.Image, cursorX, cursorY int, selected bool, accent *color.RGBA) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	bg := b.BgColor
	if b.Contains(cursorX, cursorY) {
		bg = b.HoverColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	if accent != nil {
		vector.DrawFilledRect(screen, x, y, 6, h, *accent, false)
	}

	border := color.RGBA{90, 90, 110, 255}
	if selected {
		border = color.RGBA{255, 255, 255, 255}
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	fg := b.TextColor
	if b.Disabled {
		fg = color.RGBA{120, 120, 120, 255}
	}
	drawText(screen, b.face, b.Text, float64(x)+12, float64(y)+8, fg)
	if b.SubText != "" {
		drawText(screen, b.face, b.SubText, float64(x)+12, float64(y)+26, fg)
	}
}
