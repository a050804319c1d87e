package loader

import (
	"sync/atomic"
)

// state is swapped in whole; readers never observe a half-published load.
type state[T any] struct {
	status Status
	value  T
	err    error
}

// Snapshot holds the current value of a document together with its load
// status. The zero value is not usable; call NewSnapshot.
type Snapshot[T any] struct {
	cur atomic.Pointer[state[T]]
}

// NewSnapshot returns a Pending snapshot.
func NewSnapshot[T any]() *Snapshot[T] {
	s := &Snapshot[T]{}
	s.cur.Store(&state[T]{status: Pending})
	return s
}

// Publish replaces the value and marks the snapshot Loaded.
func (s *Snapshot[T]) Publish(v T) {
	s.cur.Store(&state[T]{status: Loaded, value: v})
}

// Fail marks the snapshot Failed. Any previously published value is dropped.
func (s *Snapshot[T]) Fail(err error) {
	s.cur.Store(&state[T]{status: Failed, err: err})
}

// Get returns the current value and status. The value must be treated as
// read-only.
func (s *Snapshot[T]) Get() (T, Status) {
	st := s.cur.Load()
	return st.value, st.status
}

// Status returns the current load status.
func (s *Snapshot[T]) Status() Status {
	return s.cur.Load().status
}

// Err returns the error recorded by Fail, if any.
func (s *Snapshot[T]) Err() error {
	return s.cur.Load().err
}
