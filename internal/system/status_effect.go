// internal/system/status_effect.go
package system

import "floor-defense/internal/component"

// ApplySlow замедляет врага. Более долгое действующее замедление не укорачивается.
func ApplySlow(e *component.Enemy, slow component.SlowEffect) {
	e.CurrentSpeed = e.BaseSpeed * slow.Multiplier
	if slow.Duration > e.SlowTimer {
		e.SlowTimer = slow.Duration
	}
}

// TickSlow counts the slow down and restores base speed when it runs out.
func TickSlow(e *component.Enemy, deltaTime float64) {
	if e.SlowTimer <= 0 {
		return
	}
	e.SlowTimer -= deltaTime
	if e.SlowTimer <= 0 {
		e.SlowTimer = 0
		e.CurrentSpeed = e.BaseSpeed
	}
}
