package system

import (
	"testing"

	"floor-defense/internal/component"
)

func TestProjectile_DiesWhenTargetGone(t *testing.T) {
	w := newWorld(t)
	e := w.enemy(100, 0, 40, 0, 1)
	p := &component.Projectile{TargetID: e.ID, Speed: 100, Damage: 5}
	w.ecs.AddProjectile(p)
	sys := NewProjectileSystem(w.ecs, w.damage())

	e.IsDead = true
	sys.Update(0.1)
	if !p.IsDead {
		t.Fatal("projectile outlived its dead target")
	}

	orphan := &component.Projectile{TargetID: 999, Speed: 100}
	w.ecs.AddProjectile(orphan)
	sys.Update(0.1)
	if !orphan.IsDead {
		t.Error("projectile with unknown target kept flying")
	}
}

func TestProjectile_HomesAndHits(t *testing.T) {
	w := newWorld(t)
	e := w.enemy(100, 0, 40, 0, 1)
	p := &component.Projectile{TargetID: e.ID, Speed: 300, Damage: 15}
	w.ecs.AddProjectile(p)
	sys := NewProjectileSystem(w.ecs, w.damage())

	sys.Update(0.1)
	if p.IsDead || p.Position.X != 30 {
		t.Fatalf("after one step pos=%+v dead=%v", p.Position, p.IsDead)
	}
	for i := 0; i < 10 && !p.IsDead; i++ {
		sys.Update(0.1)
	}
	if !p.IsDead || e.Health != 25 {
		t.Errorf("dead=%v enemy health=%v, want one hit", p.IsDead, e.Health)
	}
}

func TestProjectile_PiercingHitsEachEnemyOnce(t *testing.T) {
	w := newWorld(t)
	enemies := []*component.Enemy{
		w.enemy(20, 0, 100, 0, 1),
		w.enemy(60, 0, 100, 0, 1),
		w.enemy(100, 0, 100, 0, 1),
	}
	far := w.enemy(400, 0, 100, 0, 1)
	p := &component.Projectile{
		TargetID: enemies[0].ID,
		Speed:    400,
		Damage:   1,
		Effects:  component.Effects{Piercing: true},
	}
	w.ecs.AddProjectile(p)
	sys := NewProjectileSystem(w.ecs, w.damage())

	for i := 0; i < 300 && !p.IsDead; i++ {
		sys.Update(1.0 / 60)
	}

	if !p.IsDead {
		t.Fatal("piercing projectile never died")
	}
	for _, e := range enemies {
		if e.Health != 99 {
			t.Errorf("enemy %d health = %v, want exactly one hit", e.ID, e.Health)
		}
		if !p.HasHit(e.ID) {
			t.Errorf("enemy %d missing from hit set", e.ID)
		}
	}
	if far.Health != 100 {
		t.Error("piercing projectile reached beyond its acquisition radius")
	}
}
