// cmd/game/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"floor-defense/internal/bootstrap"
	"floor-defense/internal/config"
	"floor-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime) // ограничение шага делает сама игра
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	rt, err := bootstrap.Setup(ctx, bootstrap.ConfigPath(), bootstrap.Options{Audio: true})
	cancel()
	defer rt.Close()
	if err != nil {
		return err
	}
	rt.Logger.Info("run started", zap.String("run", rt.Game.RunID))

	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, state.Deps{
		Game:     rt.Game,
		Recorder: rt.Recorder,
		Logger:   rt.Logger.Named("ui"),
	})
	if startFromGame {
		sm.SetState(gameState)
	} else {
		sm.SetState(state.NewMenuState(sm, gameState))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Floor Defense")
	return ebiten.RunGame(app)
}
