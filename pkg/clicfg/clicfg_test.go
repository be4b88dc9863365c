package clicfg_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"feedgraph/pkg/clicfg"
)

type source map[string]any

func (s source) Value(name string) any {
	return s[name]
}

type config struct {
	Name     string        `flag:"name"`
	Enabled  bool          `flag:"enabled"`
	Port     int           `flag:"port"`
	UserID   int64         `flag:"user-id"`
	Interval time.Duration `flag:"interval"`
	Ratio    float64       `flag:"ratio"`
	Missing  string        `flag:"missing"`
	Untagged string
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		cfg := config{Untagged: "kept"}
		err := clicfg.ParseFlags(source{
			"name":     "feedgraph",
			"enabled":  true,
			"port":     int64(8888),
			"user-id":  42,
			"interval": 15 * time.Second,
			"ratio":    "0.5",
		}, &cfg)

		require.NoError(t, err)
		require.Equal(t, config{
			Name:     "feedgraph",
			Enabled:  true,
			Port:     8888,
			UserID:   42,
			Interval: 15 * time.Second,
			Ratio:    0.5,
			Untagged: "kept",
		}, cfg)
	})

	t.Run("not a pointer", func(t *testing.T) {
		t.Parallel()

		err := clicfg.ParseFlags(source{}, config{})
		require.ErrorIs(t, err, clicfg.ErrCannotParseFlags)
	})

	t.Run("not a struct", func(t *testing.T) {
		t.Parallel()

		s := "string"
		err := clicfg.ParseFlags(source{}, &s)
		require.ErrorIs(t, err, clicfg.ErrCannotParseFlags)
	})

	t.Run("unconvertible value", func(t *testing.T) {
		t.Parallel()

		cfg := config{}
		err := clicfg.ParseFlags(source{"port": "eighty"}, &cfg)
		require.ErrorIs(t, err, clicfg.ErrCannotParseFlags)
	})
}
