// Package bootstrap wires config, logging, data and the game together for
// the executables.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"floor-defense/internal/app"
	"floor-defense/internal/audio"
	"floor-defense/internal/config"
	"floor-defense/internal/defs"
	"floor-defense/internal/leaderboard"
	"floor-defense/internal/logger"
	"floor-defense/internal/scripting"
	"floor-defense/internal/system"
	"floor-defense/pkg/gridmap"

	"go.uber.org/zap"
)

// ConfigEnv overrides the config file path.
const ConfigEnv = "FLOOR_DEFENSE_CONFIG"

// DefaultConfigPath is used when ConfigEnv is empty.
const DefaultConfigPath = "config/game.toml"

// Runtime is everything an executable needs to run one session.
type Runtime struct {
	Config   *config.File
	Logger   *zap.Logger
	Defs     *defs.Library
	Game     *app.Game
	Recorder *leaderboard.Recorder // nil when the leaderboard is off
	Cues     *audio.Cues           // nil when audio is off

	closers []func()
}

// ConfigPath resolves the config file location.
func ConfigPath() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	return DefaultConfigPath
}

// Options tweak Setup for a particular front end.
type Options struct {
	Audio bool // open the sound device when config allows
	// LogFile is used when the config does not name one. Terminal front
	// ends set it so log lines do not tear the screen.
	LogFile string
}

// Setup loads everything. Call Close when done, even after an error.
func Setup(ctx context.Context, configPath string, opts Options) (*Runtime, error) {
	rt := &Runtime{}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return rt, fmt.Errorf("load config: %w", err)
	}
	rt.Config = cfg
	if cfg.Logging.File == "" {
		cfg.Logging.File = opts.LogFile
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return rt, fmt.Errorf("init logger: %w", err)
	}
	rt.Logger = log
	rt.closers = append(rt.closers, func() { _ = log.Sync() })

	lib, err := defs.Load(cfg.Defs.Path)
	if err != nil {
		return rt, fmt.Errorf("load defs: %w", err)
	}
	rt.Defs = lib
	log.Info("definitions loaded",
		zap.Int("towers", len(lib.Towers)),
		zap.Int("enemies", len(lib.Enemies)),
		zap.Int("upgrades", len(lib.Upgrades)),
	)

	waves, err := rt.waveBuilder()
	if err != nil {
		return rt, err
	}

	paths := gridmap.NewRandomWalk(cfg.Simulation.Seed)
	log.Info("path seed", zap.Int64("seed", paths.Seed()))

	game, err := app.NewGame(app.Options{
		Simulation: cfg.Simulation,
		Grid:       cfg.Grid,
		Defs:       lib,
		Paths:      paths,
		Waves:      waves,
		Logger:     log.Named("game"),
	})
	if err != nil {
		return rt, fmt.Errorf("create game: %w", err)
	}
	rt.Game = game

	if err := rt.setupLeaderboard(ctx); err != nil {
		return rt, err
	}
	if opts.Audio && cfg.Audio.Enabled {
		rt.setupAudio()
	}
	return rt, nil
}

func (rt *Runtime) waveBuilder() (system.WaveBuilder, error) {
	cfg := rt.Config
	formulas := system.NewFormulaBuilder(rt.Defs, cfg.Simulation.WavesPerFloor, cfg.Simulation.BossLifeCost)
	if cfg.Scripting.WaveScript == "" {
		return formulas, nil
	}
	script, err := scripting.LoadWaveScript(cfg.Scripting.WaveScript, formulas, cfg.Simulation.BossLifeCost, rt.Logger.Named("script"))
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, script.Close)
	return script, nil
}

func (rt *Runtime) setupLeaderboard(ctx context.Context) error {
	cfg := rt.Config.Leaderboard
	log := rt.Logger.Named("leaderboard")

	store, closeStore, err := leaderboard.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}
	if store == nil {
		log.Info("leaderboard disabled")
		return nil
	}

	rec := leaderboard.NewRecorder(store, cfg.SubmitTimeout, cfg.TopN, log)
	rec.Attach(rt.Game.EventDispatcher)
	if err := rec.Refresh(ctx); err != nil {
		log.Warn("leaderboard refresh failed", zap.Error(err))
	}
	rt.Recorder = rec
	// Сначала дождаться отправок, потом закрыть хранилище.
	rt.closers = append(rt.closers, closeStore, rec.Wait)
	return nil
}

func (rt *Runtime) setupAudio() {
	cues := audio.NewCues(rt.Config.Audio.Volume, rt.Logger.Named("audio"))
	if err := cues.Initialize(); err != nil {
		rt.Logger.Warn("audio unavailable", zap.Error(err))
		return
	}
	cues.Attach(rt.Game.EventDispatcher)
	rt.Cues = cues
	rt.closers = append(rt.closers, cues.Close)
}

// Close releases resources in reverse order of acquisition.
func (rt *Runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}
