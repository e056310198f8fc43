package leaderboard

import (
	"context"
	"fmt"
	"time"

	"floor-defense/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PostgresStore is a shared leaderboard in a scores table.
type PostgresStore struct {
	Pool *pgxpool.Pool
	log  *zap.Logger
}

// OpenPostgres connects, pings and migrates the schema.
func OpenPostgres(ctx context.Context, cfg config.LeaderboardConfig, log *zap.Logger) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := RunMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info("leaderboard database ready", zap.String("host", poolCfg.ConnConfig.Host))
	return &PostgresStore{Pool: pool, log: log}, nil
}

func (s *PostgresStore) Close() {
	s.Pool.Close()
}

func (s *PostgresStore) Submit(ctx context.Context, e Entry) error {
	_, err := s.Pool.Exec(ctx,
		`INSERT INTO scores (run_id, score, floor, wave, finished_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (run_id) DO NOTHING`,
		e.RunID, e.Score, e.Floor, e.Wave, e.FinishedAt)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

func (s *PostgresStore) Top(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT run_id, score, floor, wave, finished_at
		 FROM scores
		 ORDER BY score DESC, floor DESC, finished_at ASC
		 LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.RunID, &e.Score, &e.Floor, &e.Wave, &e.FinishedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
