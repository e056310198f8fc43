package system

import (
	"math"

	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/entity"
	"floor-defense/internal/event"
	"floor-defense/internal/types"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	for _, tower := range s.ecs.Towers {
		tower.Cooldown -= deltaTime
		if tower.Cooldown > 0 {
			continue
		}

		targetID, found := SelectTarget(tower, s.ecs.Enemies, s.ecs.Waypoints)
		if !found {
			// Нет цели: проверим снова чуть позже, а не каждый тик.
			tower.Cooldown = RepollDelay(tower.FireInterval)
			continue
		}
		s.createProjectile(tower, targetID)
		tower.Cooldown = tower.FireInterval
	}
}

// RepollDelay is how long an idle tower waits before looking for a target again.
func RepollDelay(fireInterval float64) float64 {
	return math.Min(config.RepollInterval, fireInterval*config.RepollIntervalFactor)
}

func (s *CombatSystem) createProjectile(tower *component.Tower, targetID types.EntityID) {
	proj := &component.Projectile{
		SourceID: tower.ID,
		TargetID: targetID,
		Position: tower.Position,
		Speed:    tower.ProjectileSpeed,
		Damage:   tower.Damage,
		Effects:  tower.Effects,
	}
	s.ecs.AddProjectile(proj)
	tower.Shots++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerFired,
		Data: event.TowerData{TowerID: tower.ID},
	})
}
