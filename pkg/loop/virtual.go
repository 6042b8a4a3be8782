package loop

import (
	"sort"
	"sync"
	"time"
)

// Virtual is a Scheduler whose clock only moves when Advance is called.
// Callbacks run synchronously inside Advance, in due-time order, with ties
// broken by scheduling order.
type Virtual struct {
	mu        sync.Mutex
	now       time.Duration
	seq       uint64
	timers    []*virtualTimer
	scheduled int
	stopCalls int
	stopped   int
	fired     int
}

type virtualTimer struct {
	v    *Virtual
	when time.Duration
	seq  uint64
	fn   func()
	done bool
}

// NewVirtual creates a virtual scheduler at time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// AfterFunc implements Scheduler. Negative delays are treated as zero.
func (v *Virtual) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	v.scheduled++
	t := &virtualTimer{v: v, when: v.now + d, seq: v.seq, fn: fn}
	v.timers = append(v.timers, t)
	return t
}

func (t *virtualTimer) Stop() bool {
	v := t.v
	v.mu.Lock()
	defer v.mu.Unlock()

	v.stopCalls++
	if t.done {
		return false
	}
	t.done = true
	v.stopped++
	v.remove(t)
	return true
}

// remove drops t from the pending list. Caller holds mu.
func (v *Virtual) remove(t *virtualTimer) {
	for i, p := range v.timers {
		if p == t {
			v.timers = append(v.timers[:i], v.timers[i+1:]...)
			return
		}
	}
}

// Now returns the elapsed virtual time.
func (v *Virtual) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

// Advance moves the clock forward by d, running every callback that falls
// due. Callbacks scheduled by other callbacks also run if they fall due
// within the window. It returns the number of callbacks run.
func (v *Virtual) Advance(d time.Duration) int {
	v.mu.Lock()
	target := v.now + d
	v.mu.Unlock()
	return v.AdvanceTo(target)
}

// AdvanceTo moves the clock to t (if t is in the future) and runs every
// callback due by then.
func (v *Virtual) AdvanceTo(t time.Duration) int {
	ran := 0
	for {
		v.mu.Lock()
		next := v.nextDue(t)
		if next == nil {
			if t > v.now {
				v.now = t
			}
			v.mu.Unlock()
			return ran
		}
		next.done = true
		v.remove(next)
		if next.when > v.now {
			v.now = next.when
		}
		v.fired++
		v.mu.Unlock()

		next.fn()
		ran++
	}
}

// nextDue returns the earliest pending timer due by t. Caller holds mu.
func (v *Virtual) nextDue(t time.Duration) *virtualTimer {
	if len(v.timers) == 0 {
		return nil
	}
	sort.SliceStable(v.timers, func(i, j int) bool {
		if v.timers[i].when != v.timers[j].when {
			return v.timers[i].when < v.timers[j].when
		}
		return v.timers[i].seq < v.timers[j].seq
	})
	if v.timers[0].when > t {
		return nil
	}
	return v.timers[0]
}

// Pending returns the number of callbacks that are scheduled and neither
// stopped nor run.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.timers)
}

// NextDue returns the due time of the earliest pending callback.
func (v *Virtual) NextDue() (time.Duration, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if next := v.nextDue(1<<63 - 1); next != nil {
		return next.when, true
	}
	return 0, false
}

// Stats reports scheduler call counts.
type Stats struct {
	Scheduled int // AfterFunc calls
	StopCalls int // Handle.Stop calls
	Stopped   int // Stop calls that prevented a callback
	Fired     int // callbacks run
}

// Stats returns call counts since creation.
func (v *Virtual) Stats() Stats {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Stats{
		Scheduled: v.scheduled,
		StopCalls: v.stopCalls,
		Stopped:   v.stopped,
		Fired:     v.fired,
	}
}
