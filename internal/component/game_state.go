package component

// Phase — фаза игры
type Phase int

const (
	BuildPhase    Phase = iota // волна не идёт, можно строить и запускать волну
	WavePhase                  // волна выпускается или на поле есть враги
	GameOverPhase              // жизни закончились, тики ничего не делают
)

func (p Phase) String() string {
	switch p {
	case BuildPhase:
		return "build"
	case WavePhase:
		return "wave"
	case GameOverPhase:
		return "game over"
	default:
		return "unknown"
	}
}
