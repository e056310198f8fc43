package state

import (
	"fmt"
	"image/color"

	"floor-defense/internal/config"
	"floor-defense/internal/leaderboard"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameOverState shows the final score and the leaderboard until a restart.
type GameOverState struct {
	sm       *StateMachine
	previous *GameState
}

func NewGameOverState(sm *StateMachine, prev *GameState) *GameOverState {
	return &GameOverState{sm: sm, previous: prev}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.previous.Game().Restart()
		s.sm.SetState(s.previous)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 170}, false)

	game := s.previous.Game()
	r := s.previous.renderer
	x := float64(config.ScreenWidth/2 - 120)
	y := float64(config.ScreenHeight/2 - 120)
	r.DrawText(screen, "GAME OVER", x, y, config.GameOverColor)
	r.DrawText(screen, fmt.Sprintf("score %d   floor %d   wave %d", game.Ledger.Score(), game.Floor(), game.Wave()), x, y+24, color.White)

	if rec := s.previous.deps.Recorder; rec != nil {
		for i, line := range leaderboard.Lines(rec.Top()) {
			r.DrawText(screen, line, x, y+60+float64(i*16), config.TextLightColor)
		}
	}
	r.DrawText(screen, "Enter / R to play again", x, y+160+float64(config.ScreenHeight/10), color.White)
}

func (s *GameOverState) Exit() {}
