// internal/component/status_effect.go
package component

// SlowEffect describes a slow carried by a tower and its projectiles.
type SlowEffect struct {
	Multiplier float64 // Multiplier for speed (e.g., 0.55).
	Duration   float64 // Seconds the slow lasts.
}

// Effects are the optional hit modifiers of a tower kind.
type Effects struct {
	Slow         *SlowEffect
	SplashRadius float64 // 0 = no splash
	Piercing     bool
}

// HasSplash reports whether hits also damage enemies around the target.
func (e Effects) HasSplash() bool {
	return e.SplashRadius > 0
}
