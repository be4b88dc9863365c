package pips_test

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"feedgraph/pkg/pips"
)

var (
	testErr = errors.New("test error")
)

func inputChan() <-chan string {
	ch := make(chan string)
	go func() {
		ch <- "test"
		ch <- "foo"
		ch <- "bazz"
		ch <- "train"
		close(ch)
	}()
	return ch
}

func testPipeline(t *testing.T, stages ...pips.Stage) <-chan pips.D[string] {
	t.Helper()

	return pips.New[string, string](stages...).Run(t.Context(), inputChan())
}

func requireSuccessfulPiping[T any](t *testing.T, out <-chan pips.D[T], expected []T) {
	t.Helper()

	collected := lo.ChannelToSlice(out)

	require.Equal(t, expected,
		lo.Map(collected, func(item pips.D[T], _ int) T {
			require.NoError(t, item.Err)
			return item.Value
		}),
	)
}

// requireErroredPiping expects every input item to come out as err: failures do not stop the stream.
func requireErroredPiping[T any](t *testing.T, out <-chan pips.D[T], err error) {
	t.Helper()

	collected := lo.ChannelToSlice(out)

	require.Len(t, collected, 4)
	for _, item := range collected {
		require.ErrorIs(t, item.Err, err)
	}
}
