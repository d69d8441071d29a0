// Package workerpool implements the bounded-concurrency task runner the NRPA
// parallel batch runner dispatches sub-searches to, built directly on
// golang.org/x/sync/errgroup's bounded concurrency.
package workerpool

import "golang.org/x/sync/errgroup"

// Pool runs submitted tasks with at most NbThreads of them in flight at once.
type Pool struct {
	group *errgroup.Group
	n     int
}

// New returns a Pool capped at n concurrent tasks. n <= 0 means unbounded.
func New(n int) *Pool {
	group := &errgroup.Group{}
	if n > 0 {
		group.SetLimit(n)
	}
	return &Pool{group: group, n: n}
}

// Submit enqueues fn, blocking until a slot is free if the pool is at
// capacity. Any error fn returns is recorded and later surfaced by Wait (the
// first one, per errgroup.Group semantics); fn is expected to recover its own
// panics into an error if it must not crash the pool.
func (p *Pool) Submit(fn func() error) {
	p.group.Go(fn)
}

// Wait blocks until every submitted task has returned, and reports the first
// non-nil error among them, if any.
func (p *Pool) Wait() error {
	return p.group.Wait()
}

// NbThreads reports the pool's configured capacity (0 meaning unbounded).
func (p *Pool) NbThreads() int {
	return p.n
}
