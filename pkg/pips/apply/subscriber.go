package apply

import (
	"context"

	"feedgraph/pkg/pips"
)

type SubscriptionHandler[T any] func(ctx context.Context, item T, out chan<- pips.D[any]) error

// Subscriber runs h for every item of input. Errors returned by h are forwarded as items,
// failed upstream items are forwarded untouched.
func Subscriber(ctx context.Context, input <-chan pips.D[any], h SubscriptionHandler[pips.D[any]]) <-chan pips.D[any] {
	out := make(chan pips.D[any])

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return

			case res, ok := <-input:
				if !ok {
					return
				}

				if res.Err != nil {
					if !pips.Send(ctx, out, res) {
						return
					}
					continue
				}

				if err := h(ctx, res, out); err != nil {
					if !pips.Send(ctx, out, pips.ErrD[any](err)) {
						return
					}
				}
			}
		}
	}()

	return out
}
