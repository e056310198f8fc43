package state

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (s *recordingState) Enter()                    { *s.log = append(*s.log, s.name+".enter") }
func (s *recordingState) Update(deltaTime float64)  { *s.log = append(*s.log, s.name+".update") }
func (s *recordingState) Draw(screen *ebiten.Image) {}
func (s *recordingState) Exit()                     { *s.log = append(*s.log, s.name+".exit") }

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0.016) // пустая машина ничего не делает

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0.016)
	sm.SetState(b)

	want := "a.enter a.update a.exit b.enter"
	if got := strings.Join(log, " "); got != want {
		t.Errorf("transitions = %q, want %q", got, want)
	}
	if sm.Current() != b {
		t.Error("Current() is not the last state")
	}
}
