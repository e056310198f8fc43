package audio

import (
	"testing"
	"time"

	"floor-defense/internal/event"

	"github.com/gopxl/beep"
	"go.uber.org/zap"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			if sample[0] < -1.0001 || sample[0] > 1.0001 {
				t.Fatalf("sample out of range: %v", sample[0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return total
}

func TestOscillator_Length(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSquare, rate)
	if got, want := drain(t, osc), rate.N(100*time.Millisecond); got != want {
		t.Errorf("streamed %d samples, want %d", got, want)
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v", osc.Err())
	}
}

func TestBuild_EveryCueEnds(t *testing.T) {
	for _, cue := range []Cue{CueKill, CueLeak, CueWaveCleared, CueFloorCleared, CueGameOver} {
		s := Build(cue, 0.5, sampleRate)
		if s == nil {
			t.Fatalf("Build(%d) = nil", cue)
		}
		if n := drain(t, s); n == 0 {
			t.Errorf("cue %d produced no samples", cue)
		}
	}
	if Build(Cue(99), 1, sampleRate) != nil {
		t.Error("unknown cue built a streamer")
	}
}

func TestCues_EventsAndThrottle(t *testing.T) {
	c := NewCues(0.5, zap.NewNop())
	var played int
	c.play = func(beep.Streamer) { played++ }

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	d := event.NewDispatcher()
	c.Attach(d)

	d.Dispatch(event.Event{Type: event.EnemyKilled})
	d.Dispatch(event.Event{Type: event.EnemyKilled}) // тот же момент, глушится
	d.Dispatch(event.Event{Type: event.EnemyLeaked})
	d.Dispatch(event.Event{Type: event.TowerPlaced}) // без звука
	if played != 2 {
		t.Fatalf("played = %d, want 2", played)
	}

	clock = clock.Add(minCueGap)
	d.Dispatch(event.Event{Type: event.EnemyKilled})
	if played != 3 {
		t.Errorf("played = %d after the gap, want 3", played)
	}
}

func TestCues_UninitializedIsSilent(t *testing.T) {
	c := NewCues(0.5, zap.NewNop())
	if !c.Play(CueGameOver) {
		t.Error("Play() throttled the first cue")
	}
	c.Close()
}
