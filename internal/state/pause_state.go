// internal/state/pause_state.go
package state

import (
	"image/color"

	"floor-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState freezes the simulation and draws the frozen frame under a veil.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{stateMachine: sm, previousState: prev}
}

func (s *PauseState) Enter() {
	game := s.previousState.Game()
	if !game.IsPaused() {
		game.TogglePause()
	}
	s.previousState.pauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(x, y)
	}
	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, config.HUDHeight, config.ScreenWidth, config.ScreenHeight-config.HUDHeight, color.RGBA{0, 0, 0, 128}, false)
	s.previousState.renderer.DrawText(screen, "PAUSED", config.ScreenWidth/2-21, config.ScreenHeight/2, color.White)
}

// Exit снимает паузу, GameState.Enter обновит кнопку.
func (s *PauseState) Exit() {
	game := s.previousState.Game()
	if game.IsPaused() {
		game.TogglePause()
	}
}
