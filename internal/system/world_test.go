package system

import (
	"testing"

	"floor-defense/internal/component"
	"floor-defense/internal/economy"
	"floor-defense/internal/entity"
	"floor-defense/internal/event"

	"go.uber.org/zap"
)

// world bundles the collaborators every system test needs.
type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	ledger     *economy.Ledger
	floor      int
	events     []event.Event
}

func newWorld(t *testing.T, waypoints ...component.Position) *world {
	t.Helper()
	w := &world{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		ledger:     economy.NewLedger(0),
		floor:      1,
	}
	w.ecs.Waypoints = waypoints
	record := event.ListenerFunc(func(e event.Event) { w.events = append(w.events, e) })
	for _, typ := range []event.EventType{event.EnemyKilled, event.EnemyLeaked, event.EnemySpawned, event.TowerFired, event.WaveStarted} {
		w.dispatcher.Subscribe(typ, record)
	}
	return w
}

func (w *world) damage() *DamageSystem {
	return NewDamageSystem(w.ecs, w.ledger, w.dispatcher, zap.NewNop(), func() int { return w.floor })
}

func (w *world) count(typ event.EventType) int {
	n := 0
	for _, e := range w.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func (w *world) enemy(x, y, health, speed float64, reward int) *component.Enemy {
	e := &component.Enemy{
		Kind:         component.EnemyNormal,
		MaxHealth:    health,
		Health:       health,
		BaseSpeed:    speed,
		CurrentSpeed: speed,
		Reward:       reward,
		LifeCost:     1,
		Position:     component.Position{X: x, Y: y},
	}
	w.ecs.AddEnemy(e)
	return e
}
