// internal/system/damage.go
package system

import (
	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/economy"
	"floor-defense/internal/entity"
	"floor-defense/internal/event"

	"go.uber.org/zap"
)

// FloorFunc reports the current floor; score credit is reward times floor.
type FloorFunc func() int

// DamageSystem наносит урон от попаданий и начисляет награды.
type DamageSystem struct {
	ecs             *entity.ECS
	ledger          *economy.Ledger
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
	floor           FloorFunc
}

func NewDamageSystem(ecs *entity.ECS, ledger *economy.Ledger, eventDispatcher *event.Dispatcher, logger *zap.Logger, floor FloorFunc) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		ledger:          ledger,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		floor:           floor,
	}
}

// ApplyHit resolves a projectile striking primary. Hits on an enemy that is
// already dead do nothing, so a kill is only ever rewarded once.
func (s *DamageSystem) ApplyHit(p *component.Projectile, primary *component.Enemy) {
	if primary == nil || primary.IsDead {
		return
	}

	s.hurt(primary, p.Damage)
	if p.Effects.Slow != nil {
		ApplySlow(primary, *p.Effects.Slow)
	}
	if primary.Health <= 0 {
		s.kill(primary, false)
	}

	if !p.Effects.HasSplash() {
		return
	}
	// Сплэш не замедляет и не вызывает новый сплэш.
	splash := p.Damage * config.SplashDamageFraction
	for _, e := range s.ecs.Enemies {
		if e.ID == primary.ID || e.IsDead {
			continue
		}
		if e.Position.DistanceTo(primary.Position) > p.Effects.SplashRadius {
			continue
		}
		s.hurt(e, splash)
		if e.Health <= 0 {
			s.kill(e, true)
		}
	}
}

func (s *DamageSystem) hurt(e *component.Enemy, damage float64) {
	e.Health -= damage
	if e.Health < 0 {
		e.Health = 0
	}
	e.Flash.Start(config.HitFlashDuration)
}

func (s *DamageSystem) kill(e *component.Enemy, bySplash bool) {
	e.IsDead = true
	score := e.Reward * s.floor()
	s.ledger.Credit(e.Reward)
	s.ledger.AddScore(score)

	s.logger.Debug("enemy killed",
		zap.Uint64("enemy", uint64(e.ID)),
		zap.String("kind", string(e.Kind)),
		zap.Int("reward", e.Reward),
		zap.Bool("splash", bySplash),
	)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.KillData{EnemyID: e.ID, Reward: e.Reward, Score: score, Splash: bySplash},
	})
}
