// internal/state/menu_state.go
package state

import (
	"image/color"

	"floor-defense/internal/config"
	"floor-defense/internal/leaderboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var menuHelp = []string{
	"FLOOR DEFENSE",
	"",
	"1-5     pick a tower        left click  build / select",
	"D R F   upgrade selected    right click sell",
	"X       sell selected       Space       next wave",
	"Tab     game speed          P / Esc     pause",
	"",
	"press Space to start",
}

// MenuState — стартовый экран с подсказкой по клавишам.
type MenuState struct {
	sm   *StateMachine
	game *GameState
}

func NewMenuState(sm *StateMachine, game *GameState) *MenuState {
	return &MenuState{sm: sm, game: game}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.game)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	for i, line := range menuHelp {
		m.game.renderer.DrawText(screen, line, 200, 200+float64(i*20), config.TextLightColor)
	}
	if rec := m.game.deps.Recorder; rec != nil {
		for i, line := range leaderboard.Lines(rec.Top()) {
			m.game.renderer.DrawText(screen, line, 200, 400+float64(i*16), config.TextLightColor)
		}
	}
}

func (m *MenuState) Exit() {}
