package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval = 5 * time.Second
	poolWaitWarnAfter   = 50 * time.Millisecond
)

// poolMonitor reports connection-pool contention. Dashboard reads fan out over
// several connections at once, so waits show up here before they show up as
// slow requests.
type poolMonitor struct {
	logger    *slog.Logger
	stats     func() sql.DBStats
	warnAfter time.Duration
	prev      sql.DBStats
}

func newPoolMonitor(logger *slog.Logger, stats func() sql.DBStats) *poolMonitor {
	return &poolMonitor{
		logger:    logger,
		stats:     stats,
		warnAfter: poolWaitWarnAfter,
		prev:      stats(),
	}
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx)
		}
	}
}

// observe logs the waits since the previous call, at WARN once the added wait
// time reaches warnAfter and at DEBUG below it.
func (m *poolMonitor) observe(ctx context.Context) {
	cur := m.stats()
	prev := m.prev
	m.prev = cur

	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("wait_count", waits),
		slog.Duration("wait_duration", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
