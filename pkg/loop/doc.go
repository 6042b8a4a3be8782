// Package loop provides the single-threaded event loop that transition
// gates run on, and the timer schedulers they use.
//
// Gate code is not safe for concurrent use. Instead, every mutation is
// funnelled onto one goroutine: callers outside the loop use Dispatch or
// Do, and timers created with Loop.AfterFunc deliver their callbacks
// through the same queue, so a timer callback never runs concurrently
// with a props update.
//
//	l := loop.New(loop.Config{})
//	go l.Run(ctx)
//
//	l.Do(ctx, func() {
//	    gate.Update(props)
//	})
//
// Virtual is a deterministic Scheduler driven by explicit Advance calls.
// Tests and scenario playback use it to step through time without sleeping.
package loop
