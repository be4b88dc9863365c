package apply

import (
	"context"

	"feedgraph/pkg/pips"
)

type eachStage[T any] struct {
	f func(context.Context, T) error
}

func (s eachStage[T]) Run(ctx context.Context, input <-chan pips.D[any]) <-chan pips.D[any] {
	return Subscriber(ctx, input, func(ctx context.Context, item pips.D[any], out chan<- pips.D[any]) error {
		if err := s.f(ctx, item.Value.(T)); err != nil {
			return err
		}

		pips.Send(ctx, out, item)
		return nil
	})
}

// Each calls f for its side effect and passes the item on unchanged.
func Each[T any](f func(context.Context, T) error) pips.Stage {
	return eachStage[T]{f}
}
