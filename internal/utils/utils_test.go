package utils

import (
	"image/color"
	"testing"
)

func TestLerpColor(t *testing.T) {
	from := color.RGBA{0, 0, 0, 255}
	to := color.RGBA{200, 100, 50, 255}
	if got := LerpColor(from, to, 0.5); got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("LerpColor(0.5) = %v", got)
	}
	if got := LerpColor(from, to, 2); got != to {
		t.Errorf("t is not clamped: %v", got)
	}
}

func TestPRNGService_Deterministic(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 20; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed produced different sequences")
		}
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed was not replaced")
	}
}

func TestPRNGService_ChooseWeighted(t *testing.T) {
	s := NewPRNGService(1)
	if s.ChooseWeighted(nil) != -1 {
		t.Error("empty weights should give -1")
	}
	for i := 0; i < 50; i++ {
		if got := s.ChooseWeighted([]int{0, 5, 0}); got != 1 {
			t.Fatalf("ChooseWeighted() = %d, want the only positive weight", got)
		}
	}
}
