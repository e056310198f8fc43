package leaderboard

import (
	"context"
	"fmt"

	"floor-defense/internal/config"

	"go.uber.org/zap"
)

// Open builds the store named by cfg.Backend. The returned close func is
// never nil. Backend "none" yields a nil Store.
func Open(ctx context.Context, cfg config.LeaderboardConfig, log *zap.Logger) (Store, func(), error) {
	noop := func() {}
	switch cfg.Backend {
	case "", "none":
		return nil, noop, nil
	case "local":
		s, err := OpenLocal(cfg.AppName)
		if err != nil {
			// хранилище недоступно, играем с таблицей в памяти
			log.Warn("local leaderboard unavailable, keeping scores in memory", zap.Error(err))
			s, _ = NewLocalStore(nil)
		}
		return s, noop, nil
	case "postgres":
		s, err := OpenPostgres(ctx, cfg, log)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown leaderboard backend %q", cfg.Backend)
	}
}
