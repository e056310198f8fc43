package defs

// WaveTuning — базовые параметры волн; тип врага масштабирует их своими множителями.
type WaveTuning struct {
	BaseHealth        float64 `yaml:"base_health"`
	HealthPerLevel    float64 `yaml:"health_per_level"`
	BaseSpeed         float64 `yaml:"base_speed"`
	SpeedPerLevel     float64 `yaml:"speed_per_level"`
	MaxSpeedBonus     float64 `yaml:"max_speed_bonus"`
	BaseReward        float64 `yaml:"base_reward"`
	RewardPerLevel    float64 `yaml:"reward_per_level"`
	FloorStep         float64 `yaml:"floor_step"`         // прирост сложности за этаж
	IntervalDecrement float64 `yaml:"interval_decrement"` // сокращение паузы за волну
	MinInterval       float64 `yaml:"min_interval"`
}
