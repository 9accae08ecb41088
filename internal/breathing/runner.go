package breathing

import (
	"context"
	"sync"
	"time"
)

// Runner drives a session with a one-second ticker. Start and Stop are fully
// serialized and a new run is only installed after the previous tick
// goroutine has drained, so exactly one decrement stream ever touches the
// session countdown.
type Runner struct {
	// mu serializes Start and Stop, including the drain of the previous run.
	mu sync.Mutex
	// sessionMu guards session state against the tick goroutine. It is never
	// held while waiting on done, so draining cannot deadlock.
	sessionMu sync.Mutex
	session   *Session
	interval  time.Duration
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewRunner returns a runner for the session.
func NewRunner(session *Session) *Runner {
	return &Runner{
		session:  session,
		interval: time.Second,
	}
}

// Start begins ticking the session until Stop is called or the context is
// cancelled. A run already in progress is cancelled and drained first.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	r.sessionMu.Lock()
	r.session.Start()
	r.sessionMu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				r.sessionMu.Lock()
				r.session.Tick()
				r.sessionMu.Unlock()
			}
		}
	}()
}

// Stop cancels the ticker and resets the session.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()

	r.sessionMu.Lock()
	r.session.Stop()
	r.sessionMu.Unlock()
}

func (r *Runner) stopLocked() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
	r.cancel = nil
	r.done = nil
}

// Snapshot returns the session state under the runner's session lock.
func (r *Runner) Snapshot() (Phase, int, bool) {
	r.sessionMu.Lock()
	defer r.sessionMu.Unlock()
	return r.session.Phase(), r.session.SecondsRemaining(), r.session.Active()
}
