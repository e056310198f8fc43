// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton cycles the game speed; one color per speed step.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * clickPulse(b.LastClickTime)
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	// Два треугольника ">>"
	fillPolygon(screen, [][2]float32{
		{b.X - width, b.Y - height/2}, {b.X, b.Y}, {b.X - width, b.Y + height/2},
	}, clr)
	fillPolygon(screen, [][2]float32{
		{b.X - width + offset, b.Y - height/2}, {b.X + offset, b.Y}, {b.X - width + offset, b.Y + height/2},
	}, clr)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

// SetState shows the speed step with index i.
func (b *SpeedButton) SetState(i int) {
	b.CurrentState = i
	b.LastClickTime = time.Now()
	b.LastToggleTime = b.LastClickTime
}
