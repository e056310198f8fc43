// internal/state/game_state.go
package state

import (
	"errors"
	"image/color"
	"slices"
	"time"

	"floor-defense/internal/app"
	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/leaderboard"
	"floor-defense/internal/ui"
	"floor-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

const statusDuration = 2 * time.Second

// Deps are the long-lived objects shared by every state.
type Deps struct {
	Game     *app.Game
	Recorder *leaderboard.Recorder // nil = no leaderboard
	Logger   *zap.Logger
}

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	deps     Deps
	game     *app.Game
	renderer *render.GridRenderer

	indicator   *ui.StateIndicator
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	palette     *ui.TowerPalette
	lives       *ui.LivesIndicator
	waves       *ui.WaveIndicator
	infoPanel   *ui.InfoPanel

	status      string
	statusUntil time.Time
	lastClick   time.Time
}

var upgradeKeys = map[ebiten.Key]component.UpgradeTrack{
	ebiten.KeyD: component.TrackDamage,
	ebiten.KeyR: component.TrackRange,
	ebiten.KeyF: component.TrackRate,
}

var paletteKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

func NewGameState(sm *StateMachine, deps Deps) *GameState {
	renderer := render.NewGridRenderer(0, config.HUDHeight,
		render.MapColors{
			BackgroundColor: config.BackgroundColor,
			GridLineColor:   config.GridLineColor,
			PathColor:       config.PathColor,
			PathStrokeColor: config.PathStrokeColor,
			EntryColor:      config.EntryColor,
			ExitColor:       config.ExitColor,
			TextColor:       config.TextLightColor,
			StrokeWidth:     1,
		},
		render.UnitColors{
			TowerStroke:    config.TowerStrokeColor,
			Range:          config.RangeColor,
			HealthBarBack:  config.HealthBarBack,
			HealthBarFront: config.HealthBarFront,
			SlowedTint:     config.SlowedTint,
		},
		config.MaxTowerLevel,
	)
	face := renderer.Face()

	return &GameState{
		sm:          sm,
		deps:        deps,
		game:        deps.Game,
		renderer:    renderer,
		indicator:   ui.NewStateIndicator(config.ScreenWidth-130, 64, 14),
		speedButton: ui.NewSpeedButton(config.ScreenWidth-75, 64, 12, config.SpeedButtonColors),
		pauseButton: ui.NewPauseButton(config.ScreenWidth-28, 64, 10, config.PausedColor, config.RunningColor),
		palette:     ui.NewTowerPalette(10, 40, deps.Game.Defs, face),
		lives:       ui.NewLivesIndicator(500, 34, face, config.LivesFullColor, config.LivesLowColor),
		waves:       ui.NewWaveIndicator(config.ScreenWidth-150, 10, face, config.TextLightColor, config.BossWaveColor),
		infoPanel:   ui.NewInfoPanel(620, 36, face),
	}
}

// Game exposes the simulation for the pause and game-over screens.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(g.game.IsPaused())
}

func (g *GameState) Update(deltaTime float64) {
	if g.game.Phase() == component.GameOverPhase {
		g.sm.SetState(NewGameOverState(g.sm, g))
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	g.handleKeys()

	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(x, y) {
			g.handleGridClick(x, y, ebiten.MouseButtonLeft)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleGridClick(x, y, ebiten.MouseButtonRight)
	}
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleSpeed()
	}
	for i, key := range paletteKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.palette.SelectIndex(i)
		}
	}

	tower, ok := g.game.Selected()
	if !ok {
		return
	}
	for key, track := range upgradeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.report("upgrade", g.game.UpgradeTower(tower.ID, track))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
		g.report("sell", g.game.SellTower(tower.ID))
	}
}

// handleUIClick returns true when the click landed on a HUD element.
func (g *GameState) handleUIClick(x, y int) bool {
	cooldown := time.Duration(config.ClickCooldownMs) * time.Millisecond
	if time.Since(g.lastClick) < cooldown {
		return y < config.HUDHeight
	}
	switch {
	case g.speedButton.IsClicked(x, y):
		g.cycleSpeed()
	case g.pauseButton.IsClicked(x, y):
		g.pause()
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.startWave()
	case g.palette.Click(x, y):
	default:
		return y < config.HUDHeight
	}
	g.lastClick = time.Now()
	return true
}

func (g *GameState) handleGridClick(x, y int, button ebiten.MouseButton) {
	snap := g.game.Snapshot()
	cell, ok := g.renderer.ScreenToCell(x, y, &snap)
	if !ok {
		return
	}
	if button == ebiten.MouseButtonRight {
		g.report("sell", g.game.SellAt(cell))
		return
	}
	if _, selected := g.game.SelectAt(cell); selected {
		return
	}
	if snap.HUD.Phase == component.GameOverPhase {
		return
	}
	g.report("build", g.game.PlaceTower(cell, g.palette.Selected))
}

func (g *GameState) startWave() {
	g.report("wave", g.game.StartWave())
}

func (g *GameState) cycleSpeed() {
	speed := g.game.CycleSpeed()
	g.speedButton.SetState(slices.Index(config.SpeedMultipliers, speed))
}

func (g *GameState) pause() {
	g.sm.SetState(NewPauseState(g.sm, g))
}

// report показывает отказ команды в строке статуса.
func (g *GameState) report(action string, res app.CommandResult) {
	if res.OK() {
		return
	}
	g.deps.Logger.Debug("command rejected", zap.String("action", action), zap.Error(res.Err))
	g.status = action + ": " + statusText(res.Err)
	g.statusUntil = time.Now().Add(statusDuration)
}

func statusText(err error) string {
	switch {
	case errors.Is(err, app.ErrInsufficientFunds):
		return "not enough money"
	case errors.Is(err, app.ErrCellOnPath):
		return "cannot build on the path"
	case errors.Is(err, app.ErrCellOccupied):
		return "cell is taken"
	case errors.Is(err, app.ErrWaveInProgress):
		return "wave still spawning"
	case errors.Is(err, app.ErrFloorComplete):
		return "floor complete"
	case errors.Is(err, app.ErrMaxLevel):
		return "tower is at max level"
	default:
		return err.Error()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	snap := g.game.Snapshot()
	g.renderer.Draw(screen, &snap)
	g.drawHUD(screen, &snap)
}

func (g *GameState) drawHUD(screen *ebiten.Image, snap *app.Snapshot) {
	hud := snap.HUD
	g.renderer.DrawText(screen, hud.Summary(), 10, 10, config.TextLightColor)
	g.palette.Draw(screen, hud.Money)
	g.lives.Draw(screen, hud.Lives, g.game.StartingLives())
	g.waves.Draw(screen, hud.Floor, hud.Wave, hud.WavesPerFloor)

	if tower, ok := g.game.Selected(); ok {
		name := string(tower.Kind)
		if def, ok := g.game.Defs.Tower(tower.Kind); ok {
			name = def.Name
		}
		lines := g.infoPanel.Lines(name, tower, func(track component.UpgradeTrack) (int, error) {
			return g.game.UpgradeCost(tower.ID, track)
		})
		g.infoPanel.Draw(screen, lines)
	}

	stateColor := config.BuildStateColor
	if hud.Phase == component.WavePhase {
		stateColor = config.WaveStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	if g.status != "" && time.Now().Before(g.statusUntil) {
		g.renderer.DrawText(screen, g.status, 10, config.ScreenHeight-20, color.RGBA{255, 200, 80, 255})
	}
}

func (g *GameState) Exit() {}
