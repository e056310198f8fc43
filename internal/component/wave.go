package component

// EnemySpec — параметры одного врага в очереди волны.
type EnemySpec struct {
	Kind     EnemyKind
	Health   float64
	Speed    float64
	Reward   int
	LifeCost int
	Interval float64 // пауза перед выпуском этого врага; у первого в очереди не используется
}

// Wave — очередь врагов текущей волны.
type Wave struct {
	Number   int
	Floor    int
	Queue    []EnemySpec
	Timer    float64
	Released int
}

// Pending is the number of enemies not yet released.
func (w *Wave) Pending() int {
	if w == nil {
		return 0
	}
	return len(w.Queue)
}
