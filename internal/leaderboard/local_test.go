package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

func openTestManager(t *testing.T) *gdata.Manager {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	manager, err := gdata.Open(gdata.Config{AppName: "floor_defense_test"})
	if err != nil {
		t.Fatalf("gdata.Open() error = %v", err)
	}
	return manager
}

func TestLocalStore_OrdersBestFirst(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStore(nil)
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	entries := []Entry{
		{RunID: "low", Score: 10, Floor: 1, FinishedAt: start},
		{RunID: "late", Score: 50, Floor: 2, FinishedAt: start.Add(2 * time.Minute)},
		{RunID: "early", Score: 50, Floor: 2, FinishedAt: start.Add(time.Minute)},
		{RunID: "deeper", Score: 50, Floor: 3, FinishedAt: start.Add(3 * time.Minute)},
	}
	for _, e := range entries {
		if err := s.Submit(ctx, e); err != nil {
			t.Fatalf("Submit(%s) error = %v", e.RunID, err)
		}
	}

	top, err := s.Top(ctx, 3)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	want := []string{"deeper", "early", "late"}
	if len(top) != len(want) {
		t.Fatalf("len(Top()) = %d, want %d", len(top), len(want))
	}
	for i, id := range want {
		if top[i].RunID != id {
			t.Errorf("Top()[%d] = %s, want %s", i, top[i].RunID, id)
		}
	}
}

func TestLocalStore_IgnoresDuplicateRun(t *testing.T) {
	ctx := context.Background()
	s, _ := NewLocalStore(nil)
	_ = s.Submit(ctx, Entry{RunID: "same", Score: 10})
	_ = s.Submit(ctx, Entry{RunID: "same", Score: 99})

	top, _ := s.Top(ctx, 10)
	if len(top) != 1 || top[0].Score != 10 {
		t.Errorf("Top() = %+v, want the first submission only", top)
	}
}

func TestLocalStore_Truncates(t *testing.T) {
	ctx := context.Background()
	s, _ := NewLocalStore(nil)
	for i := 0; i < MaxLocalEntries+5; i++ {
		_ = s.Submit(ctx, Entry{RunID: string(rune('A' + i)), Score: i})
	}
	top, _ := s.Top(ctx, 1000)
	if len(top) != MaxLocalEntries {
		t.Fatalf("len = %d, want %d", len(top), MaxLocalEntries)
	}
	if top[0].Score != MaxLocalEntries+4 {
		t.Errorf("best score = %d, want %d", top[0].Score, MaxLocalEntries+4)
	}
}

func TestLocalStore_PersistsThroughGdata(t *testing.T) {
	ctx := context.Background()
	manager := openTestManager(t)

	s, err := NewLocalStore(manager)
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	finished := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	if err := s.Submit(ctx, Entry{RunID: "kept", Score: 77, Floor: 2, Wave: 3, FinishedAt: finished}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	reopened, err := NewLocalStore(manager)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	top, _ := reopened.Top(ctx, 5)
	if len(top) != 1 {
		t.Fatalf("len(Top()) = %d after reopen, want 1", len(top))
	}
	if got := top[0]; got.RunID != "kept" || got.Score != 77 || !got.FinishedAt.Equal(finished) {
		t.Errorf("reloaded entry = %+v", got)
	}
}

func TestLocalStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, _ := NewLocalStore(nil)
	if err := s.Submit(ctx, Entry{RunID: "x"}); err == nil {
		t.Error("Submit() with cancelled context returned nil")
	}
}

func TestLines(t *testing.T) {
	if got := Lines(nil); len(got) != 1 || got[0] != "no scores yet" {
		t.Errorf("Lines(nil) = %q", got)
	}
	got := Lines([]Entry{{Score: 1200, Floor: 3, Wave: 2}, {Score: 40, Floor: 1, Wave: 1}})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != " 1.   1200  floor 3 wave 2" {
		t.Errorf("first line = %q", got[0])
	}
}
