package audio

import (
	"sync"
	"time"

	"floor-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// minCueGap limits how often the same cue may start.
const minCueGap = 60 * time.Millisecond

var eventCues = map[event.EventType]Cue{
	event.EnemyKilled:  CueKill,
	event.EnemyLeaked:  CueLeak,
	event.WaveCleared:  CueWaveCleared,
	event.FloorCleared: CueFloorCleared,
	event.GameOver:     CueGameOver,
}

// Cues maps game events to sounds played through one beep mixer.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	lastPlayed  map[Cue]time.Time
	now         func() time.Time
	log         *zap.Logger

	// play is replaced in tests; by default it feeds the speaker mixer.
	play func(beep.Streamer)
}

func NewCues(volume float64, log *zap.Logger) *Cues {
	c := &Cues{
		mixer:      &beep.Mixer{},
		volume:     volume,
		lastPlayed: make(map[Cue]time.Time),
		now:        time.Now,
		log:        log,
	}
	c.play = c.playOnSpeaker
	return c
}

// Initialize opens the audio device. Without it every cue is dropped.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Attach subscribes to every event that has a cue.
func (c *Cues) Attach(d *event.Dispatcher) {
	for t := range eventCues {
		d.Subscribe(t, c)
	}
}

// OnEvent реализует event.Listener.
func (c *Cues) OnEvent(e event.Event) {
	cue, ok := eventCues[e.Type]
	if !ok {
		return
	}
	c.Play(cue)
}

// Play starts cue unless the same cue started less than minCueGap ago.
func (c *Cues) Play(cue Cue) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if last, ok := c.lastPlayed[cue]; ok && now.Sub(last) < minCueGap {
		return false
	}
	c.lastPlayed[cue] = now
	c.play(Build(cue, c.volume, sampleRate))
	return true
}

func (c *Cues) playOnSpeaker(s beep.Streamer) {
	if !c.initialized || s == nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close stops everything that is still playing.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
	c.log.Debug("audio closed")
}
