// internal/system/projectile.go
package system

import (
	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/entity"
	"floor-defense/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, damage: damage}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, proj := range s.ecs.Projectiles {
		if proj.IsDead {
			continue
		}
		s.advance(proj, deltaTime)
	}
}

func (s *ProjectileSystem) advance(proj *component.Projectile, deltaTime float64) {
	// Цель пропала или умерла: снаряд исчезает сразу.
	target, ok := s.ecs.LiveEnemy(proj.TargetID)
	if !ok {
		proj.IsDead = true
		return
	}

	threshold := config.ImpactThreshold
	if proj.Effects.Piercing {
		threshold = config.PiercingImpactThreshold
	}
	if proj.Position.DistanceTo(target.Position) > threshold {
		proj.Position = proj.Position.MoveTowards(target.Position, proj.Speed*deltaTime)
		return
	}

	s.damage.ApplyHit(proj, target)
	if !proj.Effects.Piercing {
		proj.IsDead = true
		return
	}

	proj.MarkHit(target.ID)
	next, found := s.nextPiercingTarget(proj, target.Position)
	if !found {
		proj.IsDead = true
		return
	}
	proj.TargetID = next
}

// nextPiercingTarget ищет ближайшего живого врага, ещё не пробитого этим снарядом.
func (s *ProjectileSystem) nextPiercingTarget(proj *component.Projectile, from component.Position) (types.EntityID, bool) {
	var bestID types.EntityID
	bestDist := config.PiercingAcquireRadius
	found := false
	for _, e := range s.ecs.Enemies {
		if e.IsDead || proj.HasHit(e.ID) {
			continue
		}
		d := from.DistanceTo(e.Position)
		if d > bestDist || (found && d == bestDist && e.ID > bestID) {
			continue
		}
		bestID, bestDist, found = e.ID, d, true
	}
	return bestID, found
}
