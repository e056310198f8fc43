package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WaveIndicator отображает номер этажа римскими цифрами и прогресс волн.
type WaveIndicator struct {
	X, Y         float64
	Color        color.RGBA
	FinalColor   color.RGBA // последняя волна этажа, с боссом
	OutlineColor color.RGBA
	face         text.Face
}

func NewWaveIndicator(x, y float64, face text.Face, clr, finalColor color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        clr,
		FinalColor:   finalColor,
		OutlineColor: color.RGBA{255, 255, 255, 255},
		face:         face,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label is the text drawn for a floor and wave.
func (i *WaveIndicator) Label(floor, wave, wavesPerFloor int) string {
	return fmt.Sprintf("%s  %d/%d", toRoman(floor), wave, wavesPerFloor)
}

func (i *WaveIndicator) Draw(screen *ebiten.Image, floor, wave, wavesPerFloor int) {
	if floor <= 0 {
		return
	}
	clr := i.Color
	if wave == wavesPerFloor {
		clr = i.FinalColor
	}
	drawOutlinedText(screen, i.face, i.Label(floor, wave, wavesPerFloor), i.X, i.Y, clr, i.OutlineColor, 1)
}
