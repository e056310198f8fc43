// Package leaderboard keeps the best finished runs.
package leaderboard

import (
	"cmp"
	"context"
	"slices"
	"time"
)

//go:generate mockgen -destination=./mocks/store_mock.go -package=mocks . Store

// Entry is one finished run.
type Entry struct {
	RunID      string    `yaml:"run_id"`
	Score      int       `yaml:"score"`
	Floor      int       `yaml:"floor"`
	Wave       int       `yaml:"wave"`
	FinishedAt time.Time `yaml:"finished_at"`
}

// Store persists entries. Implementations must be safe for concurrent use.
type Store interface {
	Submit(ctx context.Context, e Entry) error
	Top(ctx context.Context, n int) ([]Entry, error)
}

// compareEntries orders entries best first: score, then floor, then the earlier finish.
func compareEntries(a, b Entry) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Floor, a.Floor); c != 0 {
		return c
	}
	return a.FinishedAt.Compare(b.FinishedAt)
}

func sortEntries(entries []Entry) {
	slices.SortStableFunc(entries, compareEntries)
}
