package nats

import (
	"context"
	"log/slog"
	"time"

	libnats "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"feedgraph/internal/config"
)

const (
	appName = "feedgraph"

	streamMaxAge = 7 * 24 * time.Hour
)

// MsgPublisher is the part of JetStream the event forwarder needs.
type MsgPublisher interface {
	PublishMsg(ctx context.Context, msg *libnats.Msg, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

type NATS struct {
	Logger *slog.Logger
	Config *config.Config

	js jetstream.JetStream
}

func (n *NATS) Init(ctx context.Context) error {
	n.Logger = n.Logger.With("component", "nats.NATS")

	nc, err := libnats.Connect(n.Config.NATSURL, libnats.Name(appName))
	if err != nil {
		return err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return err
	}
	n.js = js

	if n.Config.NATSInit {
		return n.initStream(ctx)
	}

	return nil
}

func (n *NATS) PublishMsg(ctx context.Context, msg *libnats.Msg, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	return n.js.PublishMsg(ctx, msg, opts...)
}

func (n *NATS) HealthCheck(context.Context) error {
	_, err := n.js.Conn().RTT()
	return err
}

func (n *NATS) Shutdown(context.Context) error {
	return n.js.Conn().Drain()
}

func (n *NATS) initStream(ctx context.Context) error {
	n.Logger.Info("Initializing NATS")
	_, err := n.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       appName,
		Subjects:   []string{appName + ".>"},
		MaxAge:     streamMaxAge,
		Duplicates: 2 * time.Minute,
	})
	if err != nil {
		return err
	}
	n.Logger.Info("Stream created or updated", "name", appName)

	return nil
}
