package loop

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vango-dev/transitiongate/internal/errors"
)

// DefaultQueueSize is the dispatch queue capacity used when Config.QueueSize
// is zero.
const DefaultQueueSize = 256

// Config configures a Loop.
type Config struct {
	// QueueSize is the capacity of the dispatch queue.
	QueueSize int

	// Logger receives dispatch warnings and recovered panics.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Loop executes queued functions one at a time on the goroutine that
// calls Run.
type Loop struct {
	dispatchCh chan func()
	done       chan struct{}
	closed     atomic.Bool
	closeOnce  sync.Once
	logger     *slog.Logger
}

// New creates a Loop. It does nothing until Run is called.
func New(config Config) *Loop {
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultQueueSize
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Loop{
		dispatchCh: make(chan func(), config.QueueSize),
		done:       make(chan struct{}),
		logger:     config.Logger,
	}
}

// Run processes dispatched functions until ctx is cancelled or Close is
// called. It returns ctx.Err() when stopped by the context, nil otherwise.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Close()
	for {
		select {
		case fn := <-l.dispatchCh:
			l.execute(fn)
		case <-l.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// execute runs fn with panic recovery so one bad callback does not stop
// the loop.
func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("dispatch panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

// Dispatch queues fn to run on the loop. It is safe to call from any
// goroutine and never blocks: when the loop is closed or the queue is full
// the callback is discarded and Dispatch returns false.
func (l *Loop) Dispatch(fn func()) bool {
	if l.closed.Load() {
		return false
	}
	select {
	case l.dispatchCh <- fn:
		return true
	case <-l.done:
		return false
	default:
		l.logger.Warn("dispatch queue full, discarding callback")
		return false
	}
}

// Do runs fn on the loop and waits for it to finish. It must not be called
// from the loop goroutine itself.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	if l.closed.Load() {
		return errors.New("E104")
	}

	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		fn()
	}

	select {
	case l.dispatchCh <- wrapped:
	case <-l.done:
		return errors.New("E104")
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return errors.New("E104")
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops the loop. Queued callbacks that have not started are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
	})
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// AfterFunc implements Scheduler. The callback is queued onto the loop
// when the timer fires, so it runs serialized with all other loop work.
// Unlike Dispatch, delivery waits for queue space: a timer callback is
// only lost when the loop stops.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.enqueue(func() {
			// Stop may have won the race after the timer fired but before
			// the callback reached the front of the queue.
			if t.fired.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

// enqueue queues fn, blocking until there is room or the loop stops.
func (l *Loop) enqueue(fn func()) bool {
	select {
	case l.dispatchCh <- fn:
		return true
	case <-l.done:
		return false
	}
}

type loopTimer struct {
	timer *time.Timer
	fired atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	return t.fired.CompareAndSwap(false, true)
}
