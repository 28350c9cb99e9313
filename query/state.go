// Package query models the outcome of one backend read as a single tagged value,
// so a view can never see "loading" and "failed" at the same time.
package query

import (
	"context"
	"errors"
	"time"
)

type kind uint8

const (
	kindLoading kind = iota
	kindFailed
	kindReady
)

// State is Loading, Failed(err) or Ready(value). The zero value is Loading.
type State[T any] struct {
	kind  kind
	value T
	err   error
}

func Loading[T any]() State[T] { return State[T]{kind: kindLoading} }

func Failed[T any](err error) State[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return State[T]{kind: kindFailed, err: err}
}

func Ready[T any](v T) State[T] { return State[T]{kind: kindReady, value: v} }

func (s State[T]) IsLoading() bool { return s.kind == kindLoading }
func (s State[T]) IsFailed() bool  { return s.kind == kindFailed }
func (s State[T]) IsReady() bool   { return s.kind == kindReady }

// Value returns the loaded value, or the zero T unless Ready.
func (s State[T]) Value() T { return s.value }

// Err returns the failure reason, or nil unless Failed.
func (s State[T]) Err() error { return s.err }

// Fetch runs fn and waits at most budget for it. A result arriving in time becomes
// Ready or Failed; otherwise the state stays Loading and fn's context is cancelled.
// A non-positive budget waits for fn (bounded only by ctx).
func Fetch[T any](ctx context.Context, budget time.Duration, fn func(context.Context) (T, error)) State[T] {
	if budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn(ctx)
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if budget > 0 && errors.Is(r.err, context.DeadlineExceeded) && ctx.Err() != nil {
				return Loading[T]()
			}
			return Failed[T](r.err)
		}
		return Ready(r.v)
	case <-ctx.Done():
		if budget > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Loading[T]()
		}
		return Failed[T](ctx.Err())
	}
}
