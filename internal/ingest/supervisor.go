package ingest

import (
	"context"
	"io"
	"sync"

	"github.com/loggraph/loggraph/internal"
)

// Reader is one long-lived ingestion task. Run blocks until the stream
// ends or ctx is cancelled; failures inside a reader must never reach a
// sibling.
type Reader interface {
	Name() string
	Run(ctx context.Context) error
}

// Supervisor runs all configured readers concurrently for the process
// lifetime. Each reader gets its own goroutine and panic isolation; the
// supervisor returns once every reader has stopped.
type Supervisor struct {
	readers []Reader

	// closeOnCancel holds handles whose Close unblocks a reader stuck in
	// a blocking read (the serial line) when ctx is cancelled.
	closeOnCancel []io.Closer
}

// NewSupervisor returns a supervisor over the given readers.
func NewSupervisor(readers ...Reader) *Supervisor {
	return &Supervisor{readers: readers}
}

// CloseOnCancel registers a handle to close when the run context ends,
// so blocking reads unblock promptly during shutdown.
func (s *Supervisor) CloseOnCancel(c io.Closer) {
	s.closeOnCancel = append(s.closeOnCancel, c)
}

// Run starts every reader and waits for all of them to stop. It returns
// ctx.Err when the run was cancelled, nil when every reader ended on its
// own.
func (s *Supervisor) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			for _, c := range s.closeOnCancel {
				_ = c.Close()
			}
		case <-done:
		}
	}()

	var wg sync.WaitGroup
	for _, reader := range s.readers {
		wg.Add(1)
		go func(r Reader) {
			defer wg.Done()
			s.runIsolated(ctx, r)
		}(reader)
	}
	wg.Wait()
	close(done)

	return ctx.Err()
}

// runIsolated runs one reader, converting panics and errors into log
// lines so sibling readers keep going.
func (s *Supervisor) runIsolated(ctx context.Context, r Reader) {
	defer func() {
		if rec := recover(); rec != nil {
			internal.Warningf("%s reader panicked: %v", r.Name(), rec)
		}
	}()
	if err := r.Run(ctx); err != nil && ctx.Err() == nil {
		internal.Warningf("%s reader stopped: %v", r.Name(), err)
	}
}
