// internal/system/movement.go
package system

import (
	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/entity"
	"floor-defense/internal/event"

	"go.uber.org/zap"
)

// MovementSystem ведёт врагов по вейпоинтам.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, logger *zap.Logger) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher, logger: logger}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, e := range s.ecs.Enemies {
		if e.IsDead {
			continue
		}
		s.advance(e, deltaTime)
	}
}

// advance тратит весь шаг тика: остаток после вейпоинта уходит на следующий отрезок,
// поэтому время прохождения пути не зависит от размера тика.
func (s *MovementSystem) advance(e *component.Enemy, deltaTime float64) {
	TickSlow(e, deltaTime)
	e.Flash.Tick(deltaTime)

	step := e.CurrentSpeed * deltaTime
	for {
		next := e.PathIndex + 1
		if next >= len(s.ecs.Waypoints) {
			s.leak(e)
			return
		}

		target := s.ecs.Waypoints[next]
		dist := e.Position.DistanceTo(target)
		if dist < config.WaypointEpsilon {
			// Уже у вейпоинта: переключаемся, а не двигаемся на доли пикселя.
			e.Position = target
			e.PathIndex = next
			continue
		}
		if step < dist {
			e.Position = e.Position.MoveTowards(target, step)
			return
		}
		step -= dist
		e.Position = target
		e.PathIndex = next
	}
}

// leak убирает врага, прошедшего весь путь. Это единственный путь потери жизней.
func (s *MovementSystem) leak(e *component.Enemy) {
	e.Health = 0
	e.IsDead = true
	e.Leaked = true

	s.logger.Debug("enemy leaked",
		zap.Uint64("enemy", uint64(e.ID)),
		zap.String("kind", string(e.Kind)),
		zap.Int("life_cost", e.LifeCost),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyLeaked,
		Data: event.LeakData{EnemyID: e.ID, LifeCost: e.LifeCost},
	})
}
