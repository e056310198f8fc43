package leaderboard

import (
	"context"
	"sync"
	"time"

	"floor-defense/internal/event"

	"go.uber.org/zap"
)

// Recorder submits every finished run to a Store off the game loop and
// caches the current top list for the game-over screen.
type Recorder struct {
	store   Store
	log     *zap.Logger
	timeout time.Duration
	topN    int
	now     func() time.Time

	wg  sync.WaitGroup
	mu  sync.Mutex
	top []Entry
}

func NewRecorder(store Store, timeout time.Duration, topN int, log *zap.Logger) *Recorder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Recorder{
		store:   store,
		log:     log,
		timeout: timeout,
		topN:    topN,
		now:     time.Now,
	}
}

// Attach subscribes the recorder to GameOver.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.Subscribe(event.GameOver, r)
}

// OnEvent реализует event.Listener. Сеть и диск не трогаются в тике игры.
func (r *Recorder) OnEvent(e event.Event) {
	data, ok := e.Data.(event.ResultData)
	if !ok {
		return
	}
	entry := Entry{
		RunID:      data.RunID,
		Score:      data.Score,
		Floor:      data.Floor,
		Wave:       data.Wave,
		FinishedAt: r.now().UTC(),
	}
	r.wg.Add(1)
	go r.submit(entry)
}

func (r *Recorder) submit(entry Entry) {
	defer r.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.store.Submit(ctx, entry); err != nil {
		r.log.Warn("score submit failed", zap.String("run", entry.RunID), zap.Error(err))
		return
	}
	r.log.Info("score recorded", zap.String("run", entry.RunID), zap.Int("score", entry.Score))
	if err := r.refresh(ctx); err != nil {
		r.log.Warn("leaderboard refresh failed", zap.Error(err))
	}
}

// Refresh reloads the cached top list.
func (r *Recorder) Refresh(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.refresh(ctx)
}

func (r *Recorder) refresh(ctx context.Context) error {
	top, err := r.store.Top(ctx, r.topN)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.top = top
	r.mu.Unlock()
	return nil
}

// Top returns a copy of the cached list.
func (r *Recorder) Top() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.top...)
}

// Wait blocks until in-flight submissions finish.
func (r *Recorder) Wait() {
	r.wg.Wait()
}
