package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 10
	LivesCircleRadius  = 4.0
	LivesCircleSpacing = 3.0
)

// LivesIndicator отображает жизни сеткой кружков.
type LivesIndicator struct {
	X, Y      float32
	FullColor color.RGBA
	LowColor  color.RGBA
	face      text.Face
}

func NewLivesIndicator(x, y float32, face text.Face, full, low color.RGBA) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, FullColor: full, LowColor: low, face: face}
}

// CircleColor is the color of circle j for the given lives.
func (i *LivesIndicator) CircleColor(j, lives, maxLives int) color.RGBA {
	switch {
	case j >= lives:
		return color.RGBA{0, 0, 0, 255}
	case lives <= maxLives/2:
		return i.LowColor
	default:
		return i.FullColor
	}
}

// Draw рисует сетку кружков и число жизней над ней.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < maxLives; j++ {
		row, col := j/LivesCols, j%LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + 16 + float32(row)*step + LivesCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, i.CircleColor(j, lives, maxLives), true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
	drawText(screen, i.face, strconv.Itoa(lives)+"/"+strconv.Itoa(maxLives), float64(i.X), float64(i.Y), color.White)
}
