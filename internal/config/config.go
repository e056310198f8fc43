// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 700
	HUDHeight    = 100

	GridSize    = 50.0 // размер клетки в пикселях
	GridColumns = 20
	GridRows    = 12

	MaxDeltaTime    = 0.05 // защита от "spiral of death" на медленных кадрах
	StartingMoney   = 200
	StartingLives   = 20
	BossLifeCost    = 5
	WavesPerFloor   = 3
	FloorBonusBase  = 50
	ClickCooldownMs = 120

	WaypointEpsilon = 0.5

	// Стрельба
	RepollInterval          = 0.1
	RepollIntervalFactor    = 0.4
	ImpactThreshold         = 8.0
	PiercingImpactThreshold = 14.0
	PiercingAcquireRadius   = 120.0
	SplashDamageFraction    = 0.6

	// Экономика
	SellRefundFraction    = 0.65
	UpgradeRefundFraction = 0.7
	MaxTowerLevel         = 10

	EnemyRadius      = 10.0 // если в defs радиус не задан
	TowerRadius      = 16.0
	ProjectileRadius = 4.0
	HitFlashDuration = 0.1
)

// SpeedMultipliers are the game speed steps cycled by the speed button.
var SpeedMultipliers = []float64{1, 2, 4}

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	GridLineColor    = color.RGBA{40, 40, 55, 255}
	PathColor        = color.RGBA{42, 95, 59, 255}
	PathStrokeColor  = color.RGBA{27, 61, 39, 255}
	EntryColor       = color.RGBA{0, 255, 0, 255}
	ExitColor        = color.RGBA{255, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 255, 60}
	HealthBarBack    = color.RGBA{60, 0, 0, 255}
	HealthBarFront   = color.RGBA{80, 220, 80, 255}
	SlowedTint       = color.RGBA{141, 232, 110, 255}
	RunningColor     = color.RGBA{70, 130, 180, 220}
	PausedColor      = color.RGBA{220, 60, 60, 220}
	GameOverColor    = color.RGBA{255, 92, 122, 255}
	BuildStateColor  = color.RGBA{0, 200, 100, 255}
	WaveStateColor   = color.RGBA{220, 120, 40, 255}
	LivesFullColor   = color.RGBA{70, 130, 180, 255}
	LivesLowColor    = color.RGBA{220, 60, 60, 255}
	BossWaveColor    = color.RGBA{255, 60, 60, 255}
)

var SpeedButtonColors = []color.RGBA{
	{70, 130, 180, 220},  // x1
	{220, 60, 60, 220},   // x2
	{194, 178, 128, 255}, // x4, песочно-жёлтый
}
