package flags

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var ErrInvalidFlag = errors.New("invalid flag value")

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("%w: log level %s, allowed values are: %s", ErrInvalidFlag, value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var DatabaseURL = &cli.StringFlag{
	Name:     "database-url",
	Aliases:  []string{"d"},
	Usage:    "Postgres connection string",
	Required: true,
	Validator: func(value string) error {
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
			return fmt.Errorf("%w: database url must be a postgres:// URL", ErrInvalidFlag)
		}
		return nil
	},
	Sources: cli.EnvVars("DATABASE_URL"),
}

var DatabaseMaxConns = &cli.IntFlag{
	Name:    "database-max-conns",
	Usage:   "Maximum number of open database connections",
	Value:   20,
	Sources: cli.EnvVars("DATABASE_MAX_CONNS"),
}

var APIAddr = &cli.StringFlag{
	Name:    "api-addr",
	Usage:   "Listen address of the HTTP API",
	Value:   ":8888",
	Sources: cli.EnvVars("API_ADDR"),
}

var MetricsAddr = &cli.StringFlag{
	Name:    "metrics-addr",
	Usage:   "Listen address of the metrics and health endpoints",
	Value:   ":8080",
	Sources: cli.EnvVars("METRICS_ADDR"),
}

var CollectInterval = &cli.DurationFlag{
	Name:    "collect-interval",
	Usage:   "How often table size metrics are collected",
	Value:   15 * time.Second,
	Sources: cli.EnvVars("COLLECT_INTERVAL"),
}

var NATSUrl = &cli.StringFlag{
	Name:    "nats-url",
	Aliases: []string{"n"},
	Usage:   "The URL of the NATS server, domain events are not published when empty",
	Sources: cli.EnvVars("NATS_URL"),
}

var InitNATS = &cli.BoolFlag{
	Name:        "nats-init",
	Aliases:     []string{"i"},
	Usage:       "Initialize the NATS server: create the events stream",
	DefaultText: "false",
	Value:       false,
	Sources:     cli.EnvVars("NATS_INIT"),
}

var ServerURL = &cli.StringFlag{
	Name:    "server-url",
	Aliases: []string{"s"},
	Usage:   "Base URL of a running feedgraph API",
	Value:   "http://localhost:8888",
	Sources: cli.EnvVars("SERVER_URL"),
}

var UserID = &cli.IntFlag{
	Name:     "user-id",
	Aliases:  []string{"u"},
	Usage:    "Acting user id",
	Required: true,
	Sources:  cli.EnvVars("USER_ID"),
}

var Limit = &cli.IntFlag{
	Name:    "limit",
	Usage:   "Page size",
	Value:   20,
	Sources: cli.EnvVars("LIMIT"),
}
