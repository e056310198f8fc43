// internal/app/game.go
package app

import (
	"errors"
	"math"

	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/defs"
	"floor-defense/internal/economy"
	"floor-defense/internal/entity"
	"floor-defense/internal/event"
	"floor-defense/internal/system"
	"floor-defense/pkg/gridmap"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options are the collaborators and tuning of a Game.
type Options struct {
	Simulation config.SimulationConfig
	Grid       config.GridConfig
	Defs       *defs.Library
	Paths      gridmap.Provider   // nil = seeded random walk
	Waves      system.WaveBuilder // nil = formulas from Defs
	Dispatcher *event.Dispatcher  // nil = private dispatcher
	Logger     *zap.Logger        // nil = no-op
}

// Game holds the whole state of one run and drives the fixed-step simulation.
// All methods must be called from a single goroutine.
type Game struct {
	Map             *gridmap.GridMap
	ECS             *entity.ECS
	Defs            *defs.Library
	Ledger          *economy.Ledger
	EventDispatcher *event.Dispatcher

	WaveSystem       *system.WaveSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	DamageSystem     *system.DamageSystem

	RunID string

	sim    config.SimulationConfig
	grid   config.GridConfig
	paths  gridmap.Provider
	logger *zap.Logger

	// Game state
	gameTime   float64
	phase      component.Phase
	lives      int
	floor      int
	wave       int // последняя запущенная волна этажа, 0 = ещё ни одной
	isPaused   bool
	speedIndex int
}

// NewGame builds a game ready for its first wave.
func NewGame(opts Options) (*Game, error) {
	if opts.Defs == nil {
		return nil, errors.New("app: defs library is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	if opts.Paths == nil {
		opts.Paths = gridmap.NewRandomWalk(opts.Simulation.Seed)
	}
	if opts.Waves == nil {
		opts.Waves = system.NewFormulaBuilder(opts.Defs, opts.Simulation.WavesPerFloor, opts.Simulation.BossLifeCost)
	}

	ecs := entity.NewECS()
	g := &Game{
		ECS:             ecs,
		Defs:            opts.Defs,
		Ledger:          economy.NewLedger(opts.Simulation.StartingMoney),
		EventDispatcher: opts.Dispatcher,
		sim:             opts.Simulation,
		grid:            opts.Grid,
		paths:           opts.Paths,
		logger:          opts.Logger,
	}
	g.DamageSystem = system.NewDamageSystem(ecs, g.Ledger, g.EventDispatcher, g.logger, g.Floor)
	g.WaveSystem = system.NewWaveSystem(ecs, opts.Waves, g.EventDispatcher, g.logger)
	g.CombatSystem = system.NewCombatSystem(ecs, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.DamageSystem)
	g.MovementSystem = system.NewMovementSystem(ecs, g.EventDispatcher, g.logger)

	g.EventDispatcher.Subscribe(event.EnemyLeaked, &GameEventListener{game: g})

	g.reset()
	return g, nil
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type != event.EnemyLeaked {
		return
	}
	data, ok := e.Data.(event.LeakData)
	if !ok {
		return
	}
	l.game.lives -= data.LifeCost
	if l.game.lives < 0 {
		l.game.lives = 0
	}
}

// Restart discards the run and starts over on floor 1 with a new run ID.
func (g *Game) Restart() CommandResult {
	before := g.Ledger.Balance()
	g.reset()
	g.logger.Info("run restarted", zap.String("run", g.RunID))
	return CommandResult{Delta: g.Ledger.Balance() - before}
}

func (g *Game) reset() {
	g.ECS.ClearUnits()
	g.ECS.ClearTowers()
	g.ECS.GameTime = 0
	g.Ledger.Reset(g.sim.StartingMoney)
	g.RunID = uuid.NewString()
	g.gameTime = 0
	g.phase = component.BuildPhase
	g.lives = g.sim.StartingLives
	g.floor = 1
	g.wave = 0
	g.isPaused = false
	g.newFloorMap()
}

// newFloorMap asks the provider for a path, falling back to a straight one
// when the provider breaks its contract.
func (g *Game) newFloorMap() {
	path := g.paths.GeneratePath(g.grid.Columns, g.grid.Rows)
	if err := gridmap.Validate(path, g.grid.Columns, g.grid.Rows); err != nil {
		g.logger.Warn("path provider returned an invalid path, using a straight one", zap.Error(err))
		path = gridmap.StraightPath(g.grid.Columns, g.grid.Rows)
	}
	g.Map = gridmap.NewGridMap(g.grid.Columns, g.grid.Rows, g.grid.CellSize, path)

	points := g.Map.Waypoints()
	waypoints := make([]component.Position, len(points))
	for i, p := range points {
		waypoints[i] = component.Position{X: p[0], Y: p[1]}
	}
	g.ECS.Waypoints = waypoints
}

// EffectiveDelta is the simulated time one frame advances: the frame time
// capped at MaxDeltaTime and scaled by the speed multiplier. Zero while
// paused or after game over.
func (g *Game) EffectiveDelta(frameDt float64) float64 {
	if g.isPaused || g.phase == component.GameOverPhase || frameDt <= 0 {
		return 0
	}
	return math.Min(frameDt, g.sim.MaxDeltaTime) * g.SpeedMultiplier()
}

// Update advances the simulation by one frame.
// Order: spawn, towers, projectiles, enemies, cleanup, lives, wave clear.
func (g *Game) Update(frameDt float64) {
	dt := g.EffectiveDelta(frameDt)
	if dt == 0 {
		return
	}
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	g.WaveSystem.Update(dt)
	g.CombatSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.ECS.Cleanup()

	if g.lives <= 0 {
		g.gameOver()
		return
	}
	g.pollWaveClear()
}

func (g *Game) gameOver() {
	g.phase = component.GameOverPhase
	result := event.ResultData{
		RunID: g.RunID,
		Score: g.Ledger.Score(),
		Floor: g.floor,
		Wave:  g.wave,
	}
	g.logger.Info("game over",
		zap.String("run", result.RunID),
		zap.Int("score", result.Score),
		zap.Int("floor", result.Floor),
		zap.Int("wave", result.Wave),
	)
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: result})
}

func (g *Game) pollWaveClear() {
	if g.phase != component.WavePhase || !g.WaveSystem.Cleared() {
		return
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveCleared,
		Data: event.WaveData{Wave: g.wave, Floor: g.floor},
	})
	if g.wave >= g.sim.WavesPerFloor {
		g.advanceFloor()
		return
	}
	g.phase = component.BuildPhase
}

// advanceFloor pays the floor bonus, sells every tower back at its sell
// value and generates a fresh path.
func (g *Game) advanceFloor() {
	cleared := g.floor
	bonus := g.sim.FloorBonus * cleared
	refund := 0
	for _, t := range g.ECS.Towers {
		refund += t.SellValue
	}
	g.Ledger.Credit(bonus + refund)

	g.floor++
	g.wave = 0
	g.ECS.ClearUnits()
	g.ECS.ClearTowers()
	g.newFloorMap()
	g.phase = component.BuildPhase

	g.logger.Info("floor cleared",
		zap.Int("floor", cleared),
		zap.Int("bonus", bonus),
		zap.Int("refund", refund),
	)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.FloorCleared,
		Data: event.WaveData{Wave: g.sim.WavesPerFloor, Floor: cleared},
	})
}

func (g *Game) Phase() component.Phase { return g.phase }
func (g *Game) Lives() int              { return g.lives }
func (g *Game) Floor() int              { return g.floor }
func (g *Game) Wave() int               { return g.wave }
func (g *Game) IsPaused() bool          { return g.isPaused }
func (g *Game) GameTime() float64       { return g.gameTime }
func (g *Game) WavesPerFloor() int      { return g.sim.WavesPerFloor }
func (g *Game) StartingLives() int      { return g.sim.StartingLives }

// SpeedMultiplier is the current game speed step.
func (g *Game) SpeedMultiplier() float64 {
	return config.SpeedMultipliers[g.speedIndex]
}
