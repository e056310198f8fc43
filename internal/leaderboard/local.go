package leaderboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	scoresObject   = "leaderboard"
	scoresProperty = "scores"

	// MaxLocalEntries — сколько результатов хранится на диске.
	MaxLocalEntries = 50
)

// LocalStore keeps the table in the per-user data dir through gdata.
// With a nil manager it only lives in memory.
type LocalStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
	entries []Entry
}

// OpenLocal opens the gdata storage of appName and loads saved scores.
func OpenLocal(appName string) (*LocalStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open gdata %s: %w", appName, err)
	}
	return NewLocalStore(manager)
}

// NewLocalStore wraps an open manager; nil gives an in-memory store.
func NewLocalStore(manager *gdata.Manager) (*LocalStore, error) {
	s := &LocalStore{manager: manager}
	if err := s.load(); err != nil {
		return s, err
	}
	return s, nil
}

func (s *LocalStore) load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(scoresObject, scoresProperty) {
		return nil
	}
	data, err := s.manager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("unmarshal scores: %w", err)
	}
	sortEntries(entries)
	s.entries = entries
	return nil
}

func (s *LocalStore) save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	if err := s.manager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	return nil
}

// Submit adds e, keeping at most MaxLocalEntries. A run ID already on the
// table is ignored.
func (s *LocalStore) Submit(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.entries {
		if existing.RunID == e.RunID {
			return nil
		}
	}
	s.entries = append(s.entries, e)
	sortEntries(s.entries)
	if len(s.entries) > MaxLocalEntries {
		s.entries = s.entries[:MaxLocalEntries]
	}
	return s.save()
}

// Top returns up to n best entries.
func (s *LocalStore) Top(ctx context.Context, n int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n = min(n, len(s.entries))
	if n <= 0 {
		return nil, nil
	}
	return append([]Entry(nil), s.entries[:n]...), nil
}
