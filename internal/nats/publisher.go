package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	libnats "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"feedgraph/internal/core"
	"feedgraph/pkg/pips"
	"feedgraph/pkg/pips/apply"
)

const queueSize = 1024

var eventsForwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "feedgraph_events_forwarded_total",
	Help: "The total number of domain events handed to JetStream by status.",
}, []string{"kind", "status"})

// Subject is the JetStream subject events of kind are published to.
func Subject(kind core.EventKind) string {
	return appName + "." + string(kind)
}

// Publisher forwards committed domain events to JetStream in the background. Publish never waits for the
// broker: when the queue is full the event is dropped.
type Publisher struct {
	Logger *slog.Logger
	JS     MsgPublisher

	queue chan core.Event
}

func (p *Publisher) Init(_ context.Context) error {
	p.Logger = p.Logger.With("component", "nats.Publisher")
	p.queue = make(chan core.Event, queueSize)
	return nil
}

func (p *Publisher) Publish(_ context.Context, event core.Event) {
	select {
	case p.queue <- event:
	default:
		eventsForwarded.WithLabelValues(string(event.Kind), "dropped").Inc()
		p.Logger.Warn("Event queue is full, dropping event", "id", event.ID())
	}
}

func (p *Publisher) Run(ctx context.Context) error {
	out := pips.New[core.Event, *jetstream.PubAck]().
		Then(apply.Each(func(_ context.Context, event core.Event) error {
			p.Logger.Debug("Forwarding event", "id", event.ID())
			return nil
		})).
		Then(apply.Filter(p.known)).
		Then(apply.Map(p.publish)).
		Run(ctx, p.queue)

	pips.Drain(out, func(err error) {
		p.Logger.Warn("Failed to forward event", "error", err)
	})

	return nil
}

// known drops events without a routable subject.
func (p *Publisher) known(_ context.Context, event core.Event) (bool, error) {
	if event.Kind.Known() {
		return true, nil
	}

	eventsForwarded.WithLabelValues(string(event.Kind), "skipped").Inc()
	p.Logger.Warn("Skipping event of unknown kind", "id", event.ID())
	return false, nil
}

func (p *Publisher) publish(ctx context.Context, event core.Event) (*jetstream.PubAck, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	msg := &libnats.Msg{
		Subject: Subject(event.Kind),
		Data:    payload,
		Header: libnats.Header{
			libnats.MsgIdHdr: []string{event.ID()},
		},
	}

	ack, err := p.JS.PublishMsg(ctx, msg)
	if err != nil {
		eventsForwarded.WithLabelValues(string(event.Kind), "failed").Inc()
		return nil, fmt.Errorf("publish %s: %w", event.ID(), err)
	}

	eventsForwarded.WithLabelValues(string(event.Kind), "published").Inc()
	return ack, nil
}
