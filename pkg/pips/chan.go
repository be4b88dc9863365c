package pips

import (
	"context"
)

func CastDChan[I any, O any](ctx context.Context, ch <-chan D[I]) <-chan D[O] {
	return MapChan(ctx, ch, CastD[I, O])
}

// MapChan maps input into a new channel which is closed once input is drained or ctx is done.
func MapChan[I any, O any](ctx context.Context, input <-chan I, f func(I) O) <-chan O {
	out := make(chan O)

	go func() {
		defer close(out)
		MapToChan(ctx, input, out, f)
	}()

	return out
}

// MapToChan maps the input channel to the output channel using the given function. Does not close any channels.
// Blocks.
func MapToChan[I any, O any](ctx context.Context, input <-chan I, output chan<- O, f func(I) O) {
	for {
		select {
		case <-ctx.Done():
			return

		case res, ok := <-input:
			if !ok {
				return
			}
			if !Send(ctx, output, f(res)) {
				return
			}
		}
	}
}

// Send delivers v unless ctx is done first. Reports whether v was delivered.
func Send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- v:
		return true
	}
}
