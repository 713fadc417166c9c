package dbmetrics

import (
	"context"
	"time"
)

// DefaultStatsInterval период опроса статистики пула соединений
const DefaultStatsInterval = 15 * time.Second

// CollectStats периодически публикует статистику пула соединений, пока не отменен ctx
func (d *DB) CollectStats(ctx context.Context, dbName string, interval time.Duration) {
	if d.metrics == nil {
		return
	}
	if interval <= 0 {
		interval = DefaultStatsInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.publishStats(dbName)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (d *DB) publishStats(dbName string) {
	stats := d.db.Stats()
	d.metrics.DBOpenConns.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConns.WithLabelValues(dbName).Set(float64(stats.InUse))
	d.metrics.DBIdleConns.WithLabelValues(dbName).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(dbName).Set(float64(stats.WaitCount))
}
