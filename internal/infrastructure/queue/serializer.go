package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const defaultBuffer = 64

// ErrStopped is returned for work submitted after the serializer's worker
// has exited.
var ErrStopped = errors.New("serializer stopped")

type job struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error
}

// Serializer runs submitted work one item at a time, in submission order, on
// a single worker goroutine. Code that is not safe for concurrent use can be
// shared between request goroutines by routing every call through Do.
type Serializer struct {
	jobs    chan job
	stopped chan struct{}
	log     zerolog.Logger
}

// NewSerializer creates a Serializer whose queue holds up to buffer pending
// jobs. If buffer <= 0, defaultBuffer is used.
func NewSerializer(buffer int, log zerolog.Logger) *Serializer {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Serializer{
		jobs:    make(chan job, buffer),
		stopped: make(chan struct{}),
		log:     log,
	}
}

// Start launches the worker. It stops when ctx is cancelled; the job in
// progress is allowed to finish.
func (s *Serializer) Start(ctx context.Context) {
	go s.runWorker(ctx)
}

// Do queues fn and blocks until it has run. A job whose context is done by
// the time the worker reaches it is skipped and reports the context error.
func (s *Serializer) Do(ctx context.Context, fn func(context.Context) error) error {
	j := job{ctx: ctx, fn: fn, done: make(chan error, 1)}

	select {
	case s.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.stopped:
		return ErrStopped
	}

	select {
	case err := <-j.done:
		return err
	case <-s.stopped:
		select {
		case err := <-j.done:
			return err
		default:
			return ErrStopped
		}
	}
}

func (s *Serializer) runWorker(ctx context.Context) {
	defer close(s.stopped)
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.jobs:
			j.done <- s.run(j)
		}
	}
}

func (s *Serializer) run(j job) (err error) {
	if err := j.ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("serialized job panicked")
			err = fmt.Errorf("serialized job panicked: %v", r)
		}
	}()
	return j.fn(j.ctx)
}

// call runs fn on s and hands back its result.
func call[T any](ctx context.Context, s *Serializer, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := s.Do(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	return out, err
}

// Pending returns the number of queued jobs not yet picked up.
func (s *Serializer) Pending() int {
	return len(s.jobs)
}
