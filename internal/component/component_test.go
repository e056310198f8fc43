package component

import (
	"math"
	"testing"
)

func TestPosition_MoveTowards(t *testing.T) {
	p := Position{X: 0, Y: 0}
	got := p.MoveTowards(Position{X: 10, Y: 0}, 4)
	if got != (Position{X: 4, Y: 0}) {
		t.Errorf("MoveTowards() = %+v, want (4,0)", got)
	}
	// шаг больше расстояния не перелетает цель
	if got := p.MoveTowards(Position{X: 3, Y: 4}, 10); got != (Position{X: 3, Y: 4}) {
		t.Errorf("overshoot: got %+v", got)
	}
	if d := p.DistanceTo(Position{X: 3, Y: 4}); math.Abs(d-5) > 1e-9 {
		t.Errorf("DistanceTo() = %v, want 5", d)
	}
}

func TestDamageFlash(t *testing.T) {
	var f DamageFlash
	if f.Active() {
		t.Fatal("zero flash is active")
	}
	f.Start(0.1)
	f.Tick(0.05)
	if !f.Active() {
		t.Error("flash ended too early")
	}
	f.Tick(0.06)
	if f.Active() {
		t.Error("flash still active after its duration")
	}
}

func TestEnemy_HealthFraction(t *testing.T) {
	e := &Enemy{MaxHealth: 80, Health: 20}
	if got := e.HealthFraction(); got != 0.25 {
		t.Errorf("HealthFraction() = %v, want 0.25", got)
	}
	if (&Enemy{}).HealthFraction() != 0 {
		t.Error("zero max health should give 0")
	}
	var nilEnemy *Enemy
	if nilEnemy.Alive() {
		t.Error("nil enemy reported alive")
	}
}

func TestProjectile_HitSet(t *testing.T) {
	p := &Projectile{}
	if p.HasHit(3) {
		t.Fatal("empty hit set reports a hit")
	}
	p.MarkHit(3)
	if !p.HasHit(3) || p.HasHit(4) {
		t.Errorf("hit set = %v", p.Hit)
	}
}

func TestUpgradeTrack_RoundTrip(t *testing.T) {
	for _, track := range UpgradeTracks {
		got, ok := ParseUpgradeTrack(track.String())
		if !ok || got != track {
			t.Errorf("ParseUpgradeTrack(%q) = %v, %v", track.String(), got, ok)
		}
	}
	if _, ok := ParseUpgradeTrack("speed"); ok {
		t.Error("unknown track parsed")
	}
}

func TestWave_Pending(t *testing.T) {
	var w *Wave
	if w.Pending() != 0 {
		t.Error("nil wave has pending enemies")
	}
	w = &Wave{Queue: make([]EnemySpec, 3)}
	if w.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", w.Pending())
	}
}
