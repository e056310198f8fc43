// internal/event/types.go
package event

import "floor-defense/internal/types"

const (
	EnemySpawned  EventType = "EnemySpawned"  // Враг выпущен из очереди
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен башнями
	EnemyLeaked   EventType = "EnemyLeaked"   // Враг дошёл до конца пути
	TowerPlaced   EventType = "TowerPlaced"   // Башня построена
	TowerSold     EventType = "TowerSold"     // Башня продана
	TowerUpgraded EventType = "TowerUpgraded" // Башня улучшена
	TowerFired    EventType = "TowerFired"
	WaveStarted   EventType = "WaveStarted"
	WaveCleared   EventType = "WaveCleared" // очередь пуста и живых врагов нет
	FloorCleared  EventType = "FloorCleared"
	GameOver      EventType = "GameOver"
)

// KillData is the payload of EnemyKilled.
type KillData struct {
	EnemyID types.EntityID
	Reward  int
	Score   int
	Splash  bool
}

// LeakData is the payload of EnemyLeaked.
type LeakData struct {
	EnemyID  types.EntityID
	LifeCost int
}

// TowerData is the payload of tower events.
type TowerData struct {
	TowerID types.EntityID
	Delta   int // изменение баланса
}

// WaveData is the payload of wave and floor events.
type WaveData struct {
	Wave  int
	Floor int
}

// ResultData is the payload of GameOver.
type ResultData struct {
	RunID string
	Score int
	Floor int
	Wave  int
}
