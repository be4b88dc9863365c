// Package events holds the in-process EventPublisher implementations.
// The NATS-backed one lives in internal/nats.
package events

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"feedgraph/internal/core"
)

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, core.Event) {}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []core.Event
}

func (r *Recorder) Publish(_ context.Context, event core.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

func (r *Recorder) Events() []core.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]core.Event(nil), r.events...)
}

func (r *Recorder) Kinds() []core.EventKind {
	return lo.Map(r.Events(), func(e core.Event, _ int) core.EventKind { return e.Kind })
}
