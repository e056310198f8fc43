// internal/system/wave.go
package system

import (
	"errors"
	"fmt"
	"math"

	"floor-defense/internal/component"
	"floor-defense/internal/defs"
	"floor-defense/internal/entity"
	"floor-defense/internal/event"

	"go.uber.org/zap"
)

//go:generate go tool mockgen -destination=./mocks/wave_builder_mock.go -package=mocks . WaveBuilder

var (
	ErrAlreadySpawning = errors.New("wave is still spawning")
	ErrInvalidWave     = errors.New("wave and floor must be >= 1")
)

// WaveBuilder composes the spawn queue of one wave.
type WaveBuilder interface {
	BuildWave(wave, floor int) ([]component.EnemySpec, error)
}

// WaveState — состояние планировщика волн.
type WaveState int

const (
	WaveIdle WaveState = iota
	WaveSpawning
)

func (s WaveState) String() string {
	if s == WaveSpawning {
		return "spawning"
	}
	return "idle"
}

// FormulaBuilder строит очередь по таблицам defs.
type FormulaBuilder struct {
	lib           *defs.Library
	wavesPerFloor int
	bossLifeCost  int
}

func NewFormulaBuilder(lib *defs.Library, wavesPerFloor, bossLifeCost int) *FormulaBuilder {
	return &FormulaBuilder{lib: lib, wavesPerFloor: wavesPerFloor, bossLifeCost: bossLifeCost}
}

// BaseStats are the normal-enemy stats of a wave before kind factors.
type BaseStats struct {
	Health float64
	Speed  float64
	Reward float64
}

// Base computes the per-wave stats every kind scales from.
func (b *FormulaBuilder) Base(wave, floor int) BaseStats {
	w := b.lib.Wave
	level := float64((floor-1)*b.wavesPerFloor + wave - 1)
	mult := 1 + w.FloorStep*float64(floor-1)
	return BaseStats{
		Health: (w.BaseHealth + w.HealthPerLevel*level) * mult,
		Speed:  w.BaseSpeed + math.Min(w.MaxSpeedBonus, w.SpeedPerLevel*level),
		Reward: w.BaseReward + math.Floor(w.RewardPerLevel*level),
	}
}

// BuildWave returns normals, fasts, tanks and the boss, in that order.
func (b *FormulaBuilder) BuildWave(wave, floor int) ([]component.EnemySpec, error) {
	if wave < 1 || floor < 1 {
		return nil, fmt.Errorf("build wave %d on floor %d: %w", wave, floor, ErrInvalidWave)
	}
	base := b.Base(wave, floor)
	w := b.lib.Wave

	var queue []component.EnemySpec
	for _, kind := range component.EnemyKinds {
		def, ok := b.lib.Enemy(kind)
		if !ok {
			continue
		}
		count := def.Count(wave, b.wavesPerFloor)
		if count == 0 {
			continue
		}
		spec := component.EnemySpec{
			Kind:     kind,
			Health:   math.Round(base.Health * def.HealthFactor),
			Speed:    base.Speed * def.SpeedFactor,
			Reward:   int(math.Round(base.Reward * def.RewardFactor)),
			LifeCost: 1,
			Interval: math.Max(w.MinInterval, def.Interval-w.IntervalDecrement*float64(wave-1)),
		}
		if kind == component.EnemyBoss {
			spec.LifeCost = b.bossLifeCost
		}
		for i := 0; i < count; i++ {
			queue = append(queue, spec)
		}
	}
	return queue, nil
}

// WaveSystem выпускает врагов из очереди текущей волны.
type WaveSystem struct {
	ecs             *entity.ECS
	builder         WaveBuilder
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewWaveSystem(ecs *entity.ECS, builder WaveBuilder, eventDispatcher *event.Dispatcher, logger *zap.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		builder:         builder,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Builder is the source of wave queues.
func (s *WaveSystem) Builder() WaveBuilder { return s.builder }

func (s *WaveSystem) State() WaveState {
	if s.ecs.Wave.Pending() > 0 {
		return WaveSpawning
	}
	return WaveIdle
}

// StartWave builds and installs the queue for wave on floor.
// The first enemy leaves on the next Update.
func (s *WaveSystem) StartWave(wave, floor int) error {
	if s.State() == WaveSpawning {
		return ErrAlreadySpawning
	}
	queue, err := s.builder.BuildWave(wave, floor)
	if err != nil {
		return err
	}
	s.ecs.Wave = &component.Wave{Number: wave, Floor: floor, Queue: queue}

	s.logger.Info("wave started", zap.Int("wave", wave), zap.Int("floor", floor), zap.Int("enemies", len(queue)))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Wave: wave, Floor: floor},
	})
	return nil
}

// Update releases at most one enemy per call. The first enemy leaves at
// once, every later one waits its own Interval after the previous release.
// Overshoot of the timer carries into the next wait.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave.Pending() == 0 {
		return
	}
	if wave.Released > 0 {
		wave.Timer -= deltaTime
		if wave.Timer > 0 {
			return
		}
	}
	spec := wave.Queue[0]
	wave.Queue = wave.Queue[1:]
	wave.Released++
	s.spawnEnemy(spec)

	if len(wave.Queue) > 0 {
		wave.Timer += wave.Queue[0].Interval
	} else {
		wave.Timer = 0
	}
}

// Cleared is the completion predicate: nothing left to release and nothing alive.
func (s *WaveSystem) Cleared() bool {
	return s.ecs.Wave.Pending() == 0 && s.ecs.LiveEnemyCount() == 0
}

func (s *WaveSystem) spawnEnemy(spec component.EnemySpec) {
	var start component.Position
	if len(s.ecs.Waypoints) > 0 {
		start = s.ecs.Waypoints[0]
	}
	enemy := &component.Enemy{
		Kind:         spec.Kind,
		MaxHealth:    spec.Health,
		Health:       spec.Health,
		BaseSpeed:    spec.Speed,
		CurrentSpeed: spec.Speed,
		Reward:       spec.Reward,
		LifeCost:     spec.LifeCost,
		Position:     start,
	}
	id := s.ecs.AddEnemy(enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}
