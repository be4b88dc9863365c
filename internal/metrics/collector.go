package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"feedgraph/internal/config"
	"feedgraph/internal/core"
	"feedgraph/internal/persistence"
)

const defaultCollectInterval = 15 * time.Second

var (
	tableCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "feedgraph_table_estimated_count",
		Help: "Estimated record count for a table.",
	}, []string{"table"})
)

// Collector periodically exports the planner's row estimates of the service tables.
type Collector struct {
	Logger *slog.Logger
	Config *config.Config
	DB     core.DB
}

func (c *Collector) Init(_ context.Context) error {
	c.Logger = c.Logger.With("component", "metrics.Collector")
	return nil
}

func (c *Collector) Run(ctx context.Context) error {
	interval := c.Config.CollectInterval
	if interval <= 0 {
		interval = defaultCollectInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Logger.Debug("Collecting metrics")
			if err := c.Collect(ctx); err != nil {
				c.Logger.Warn("Failed to collect metrics", "error", err)
			}
		}
	}
}

// Collect updates the gauge of every table once. A failing table does not prevent the others from updating.
func (c *Collector) Collect(ctx context.Context) error {
	var errs []error

	for _, table := range persistence.TableNames() {
		count, err := c.DB.EstimatedCount(ctx, table)
		if err != nil {
			errs = append(errs, fmt.Errorf("estimate %s: %w", table, err))
			continue
		}
		tableCount.WithLabelValues(table).Set(float64(count))
	}

	return errors.Join(errs...)
}
