package pips

import (
	"github.com/samber/lo"
)

// D carries either a value or the error produced while computing it.
type D[T any] struct {
	Value T
	Err   error
}

func NewD[T any](value T) D[T] {
	return D[T]{value, nil}
}

func AnyD[T any](value T) D[any] {
	return NewD[any](value)
}

func ErrD[T any](err error) D[T] {
	return D[T]{lo.Empty[T](), err}
}

// CastD converts the value to O, panics when the value is not an O.
func CastD[I any, O any](d D[I]) D[O] {
	if d.Err != nil {
		return ErrD[O](d.Err)
	}
	return NewD(any(d.Value).(O))
}

func (r D[T]) Unpack() (T, error) {
	return r.Value, r.Err
}
