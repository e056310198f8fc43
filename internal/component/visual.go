// internal/component/visual.go
package component

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Общая продолжительность эффекта
}

// Start restarts the flash for duration seconds.
func (f *DamageFlash) Start(duration float64) {
	f.Timer = 0
	f.Duration = duration
}

// Tick advances the flash; it never affects the simulation.
func (f *DamageFlash) Tick(deltaTime float64) {
	if f.Active() {
		f.Timer += deltaTime
	}
}

func (f *DamageFlash) Active() bool {
	return f.Duration > 0 && f.Timer < f.Duration
}
