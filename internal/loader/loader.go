package loader

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoadFunc produces the value to publish.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Observer is told how each load ended.
type Observer interface {
	ObserveLoad(name string, status Status, took time.Duration)
}

// Loader runs a LoadFunc once and publishes its result into a Snapshot.
type Loader[T any] struct {
	name     string
	load     LoadFunc[T]
	snap     *Snapshot[T]
	observer Observer
	logger   *zap.Logger
}

// New creates a Loader. observer may be nil.
func New[T any](name string, load LoadFunc[T], snap *Snapshot[T], observer Observer, logger *zap.Logger) *Loader[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader[T]{
		name:     name,
		load:     load,
		snap:     snap,
		observer: observer,
		logger:   logger.With(zap.String("document", name)),
	}
}

// Run performs the load synchronously and returns the final status.
func (l *Loader[T]) Run(ctx context.Context) Status {
	start := time.Now()

	v, err := l.load(ctx)
	took := time.Since(start)

	status := Loaded
	if err != nil {
		status = Failed
		l.snap.Fail(err)
		l.logger.Error("load failed", zap.Error(err), zap.Duration("took", took))
	} else {
		l.snap.Publish(v)
		l.logger.Info("load finished", zap.Duration("took", took))
	}

	if l.observer != nil {
		l.observer.ObserveLoad(l.name, status, took)
	}
	return status
}

// Start runs the load in the background. The returned channel receives the
// final status once and is then closed.
func (l *Loader[T]) Start(ctx context.Context) <-chan Status {
	done := make(chan Status, 1)
	go func() {
		defer close(done)
		done <- l.Run(ctx)
	}()
	return done
}
