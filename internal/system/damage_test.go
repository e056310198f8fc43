package system

import (
	"math"
	"testing"

	"floor-defense/internal/component"
	"floor-defense/internal/event"
)

func TestApplyHit_IdempotentDeath(t *testing.T) {
	w := newWorld(t)
	w.floor = 2
	e := w.enemy(0, 0, 30, 70, 12)
	dmg := w.damage()

	first := &component.Projectile{TargetID: e.ID, Damage: 50}
	second := &component.Projectile{TargetID: e.ID, Damage: 50}
	dmg.ApplyHit(first, e)
	dmg.ApplyHit(second, e)

	if !e.IsDead || e.Health != 0 {
		t.Fatalf("dead=%v health=%v", e.IsDead, e.Health)
	}
	if w.ledger.Balance() != 12 {
		t.Errorf("Balance = %d, want reward credited once (12)", w.ledger.Balance())
	}
	if w.ledger.Score() != 24 {
		t.Errorf("Score = %d, want reward*floor (24)", w.ledger.Score())
	}
	if w.count(event.EnemyKilled) != 1 {
		t.Errorf("EnemyKilled events = %d, want 1", w.count(event.EnemyKilled))
	}
}

func TestApplyHit_NonLethal(t *testing.T) {
	w := newWorld(t)
	e := w.enemy(0, 0, 40, 70, 10)
	slow := &component.SlowEffect{Multiplier: 0.5, Duration: 1}

	w.damage().ApplyHit(&component.Projectile{Damage: 15, Effects: component.Effects{Slow: slow}}, e)

	if e.Health != 25 || e.IsDead {
		t.Errorf("health=%v dead=%v", e.Health, e.IsDead)
	}
	if e.CurrentSpeed != 35 || e.SlowTimer != 1 {
		t.Errorf("speed=%v timer=%v, want slowed", e.CurrentSpeed, e.SlowTimer)
	}
	if w.ledger.Balance() != 0 {
		t.Errorf("reward paid for a survivor")
	}
}

func TestApplyHit_SplashNeverSlowsOrChains(t *testing.T) {
	w := newWorld(t)
	primary := w.enemy(0, 0, 100, 100, 10)
	near := w.enemy(30, 0, 100, 100, 10)
	edge := w.enemy(0, 60, 100, 100, 10)
	// Within the splash radius of near but outside the radius of primary.
	chained := w.enemy(80, 0, 100, 100, 10)
	dead := w.enemy(10, 0, 100, 100, 10)
	dead.IsDead = true

	p := &component.Projectile{
		Damage: 20,
		Effects: component.Effects{
			Slow:         &component.SlowEffect{Multiplier: 0.5, Duration: 2},
			SplashRadius: 60,
		},
	}
	w.damage().ApplyHit(p, primary)

	if primary.Health != 80 || !primary.IsSlowed() {
		t.Errorf("primary health=%v slowed=%v", primary.Health, primary.IsSlowed())
	}
	for name, e := range map[string]*component.Enemy{"near": near, "edge": edge} {
		if math.Abs(e.Health-88) > 1e-9 {
			t.Errorf("%s health = %v, want 88 (60%% splash)", name, e.Health)
		}
		if e.IsSlowed() || e.CurrentSpeed != 100 {
			t.Errorf("%s was slowed by splash", name)
		}
	}
	if chained.Health != 100 {
		t.Errorf("splash chained to an enemy outside the radius: health %v", chained.Health)
	}
	if dead.Health != 100 {
		t.Errorf("dead enemy took splash damage")
	}
}

func TestApplyHit_SplashKillsPayOnce(t *testing.T) {
	w := newWorld(t)
	primary := w.enemy(0, 0, 10, 100, 5)
	a := w.enemy(10, 0, 5, 100, 7)
	b := w.enemy(0, 10, 5, 100, 9)
	p := &component.Projectile{Damage: 10, Effects: component.Effects{SplashRadius: 20}}

	dmg := w.damage()
	dmg.ApplyHit(p, primary)
	dmg.ApplyHit(p, primary) // stale second hit on a dead primary

	for _, e := range []*component.Enemy{primary, a, b} {
		if !e.IsDead || e.Health != 0 {
			t.Errorf("enemy %d dead=%v health=%v", e.ID, e.IsDead, e.Health)
		}
	}
	if w.ledger.Balance() != 21 {
		t.Errorf("Balance = %d, want 21", w.ledger.Balance())
	}
	if w.count(event.EnemyKilled) != 3 {
		t.Errorf("EnemyKilled events = %d, want 3", w.count(event.EnemyKilled))
	}
}
