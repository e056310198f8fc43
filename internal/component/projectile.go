// internal/component/projectile.go
package component

import "floor-defense/internal/types"

// Projectile представляет летящий снаряд.
// Цель хранится только как ID: снаряд никогда не удерживает врага.
type Projectile struct {
	ID       types.EntityID
	SourceID types.EntityID // башня, выпустившая снаряд
	TargetID types.EntityID
	Position Position
	Speed    float64
	Damage   float64
	Effects  Effects
	Hit      map[types.EntityID]bool // только для пробивающих снарядов
	IsDead   bool
}

// HasHit reports whether a piercing projectile already struck id.
func (p *Projectile) HasHit(id types.EntityID) bool {
	return p.Hit[id]
}

// MarkHit remembers a struck enemy.
func (p *Projectile) MarkHit(id types.EntityID) {
	if p.Hit == nil {
		p.Hit = make(map[types.EntityID]bool)
	}
	p.Hit[id] = true
}
