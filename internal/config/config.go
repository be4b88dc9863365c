package config

import "time"

type Config struct {
	LogLevel string `flag:"log-level"`

	DatabaseURL      string `flag:"database-url"`
	DatabaseMaxConns int    `flag:"database-max-conns"`

	APIAddr         string        `flag:"api-addr"`
	MetricsAddr     string        `flag:"metrics-addr"`
	CollectInterval time.Duration `flag:"collect-interval"`

	NATSURL  string `flag:"nats-url"`
	NATSInit bool   `flag:"nats-init"`

	ServerURL string `flag:"server-url"`
	UserID    int64  `flag:"user-id"`
	Limit     int    `flag:"limit"`
}

// EventsEnabled reports whether domain events are forwarded to NATS.
func (c *Config) EventsEnabled() bool {
	return c.NATSURL != ""
}
