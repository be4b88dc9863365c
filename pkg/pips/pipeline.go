// Package pips builds channel pipelines out of stages. Items travel as D values: a stage that fails on an
// item emits the error in its place and keeps consuming, so one bad item never stalls the stream.
package pips

import (
	"context"
)

type Stage interface {
	Run(context.Context, <-chan D[any]) <-chan D[any]
}

type Pipeline[I any, O any] struct {
	stages []Stage
}

func New[I any, O any](stages ...Stage) *Pipeline[I, O] {
	return &Pipeline[I, O]{stages}
}

func (p *Pipeline[I, O]) Then(stages ...Stage) *Pipeline[I, O] {
	p.stages = append(p.stages, stages...)
	return p
}

// Run starts the stages. The output is closed when input is closed and drained or when ctx is done.
func (p *Pipeline[I, O]) Run(ctx context.Context, input <-chan I) <-chan D[O] {
	var out <-chan D[any] = MapChan(ctx, input, AnyD[I])

	for _, stage := range p.stages {
		out = stage.Run(ctx, out)
	}

	return CastDChan[any, O](ctx, out)
}

// Drain consumes out until it is closed, handing every failed item to onErr.
func Drain[T any](out <-chan D[T], onErr func(error)) {
	for d := range out {
		if d.Err != nil {
			onErr(d.Err)
		}
	}
}
