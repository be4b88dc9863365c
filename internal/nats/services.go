package nats

import (
	"github.com/zhulik/pal"

	"feedgraph/internal/core"
)

// Provide registers the JetStream connection and the event forwarder as the EventPublisher.
func Provide() pal.ServiceDef {
	return pal.ProvideList(
		pal.Provide[MsgPublisher](&NATS{}),
		pal.Provide[core.EventPublisher](&Publisher{}),
	)
}
