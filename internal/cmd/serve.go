package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"feedgraph/internal/api"
	"feedgraph/internal/cmd/flags"
	"feedgraph/internal/core"
	"feedgraph/internal/db"
	"feedgraph/internal/events"
	"feedgraph/internal/metrics"
	"feedgraph/internal/nats"
	"feedgraph/internal/social"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Serve the HTTP API, metrics and health endpoints",
	Flags: []cli.Flag{
		flags.DatabaseURL,
		flags.DatabaseMaxConns,
		flags.APIAddr,
		flags.MetricsAddr,
		flags.CollectInterval,
		flags.NATSUrl,
		flags.InitNATS,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		cfg, err := parseConfig(c)
		if err != nil {
			return err
		}

		var publisher pal.ServiceDef = pal.Provide[core.EventPublisher](&events.Nop{})
		if cfg.EventsEnabled() {
			publisher = nats.Provide()
		}

		return run(ctx, cfg,
			db.ProvideStores(),
			publisher,
			pal.Provide(&social.Service{}),
			pal.Provide(&api.Backend{}),
			pal.Provide(&api.Server{}),
			pal.Provide(&metrics.Server{}),
			pal.Provide(&metrics.Collector{}),
		)
	},
}
