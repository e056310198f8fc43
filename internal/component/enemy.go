package component

import (
	"floor-defense/internal/types"
	"floor-defense/pkg/utils"
)

// EnemyKind — тип врага
type EnemyKind string

const (
	EnemyNormal EnemyKind = "normal"
	EnemyFast   EnemyKind = "fast"
	EnemyTank   EnemyKind = "tank"
	EnemyBoss   EnemyKind = "boss"
)

// EnemyKinds lists every kind in wave queue order.
var EnemyKinds = []EnemyKind{EnemyNormal, EnemyFast, EnemyTank, EnemyBoss}

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID           types.EntityID
	Kind         EnemyKind
	MaxHealth    float64
	Health       float64
	BaseSpeed    float64
	CurrentSpeed float64
	Reward       int
	LifeCost     int     // сколько жизней стоит прорыв
	PathIndex    int     // индекс последнего достигнутого вейпоинта
	Position     Position
	SlowTimer    float64 // оставшееся время замедления, >= 0
	Flash        DamageFlash
	IsDead       bool
	Leaked       bool // дошёл до конца пути
}

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return e != nil && !e.IsDead
}

// HealthFraction is health in [0, 1] for health bars.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return utils.Clamp(e.Health/e.MaxHealth, 0, 1)
}

// IsSlowed reports whether a slow effect is active.
func (e *Enemy) IsSlowed() bool {
	return e.SlowTimer > 0
}
