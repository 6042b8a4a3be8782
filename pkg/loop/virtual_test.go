package loop

import (
	"testing"
	"time"
)

func TestVirtualFiresInOrder(t *testing.T) {
	v := NewVirtual()

	var got []string
	v.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	v.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	v.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	if n := v.Advance(5 * time.Millisecond); n != 0 {
		t.Fatalf("Advance(5ms) ran %d, want 0", n)
	}
	if n := v.Advance(25 * time.Millisecond); n != 3 {
		t.Fatalf("Advance(25ms) ran %d, want 3", n)
	}
	if want := "abc"; join(got) != want {
		t.Errorf("order = %q, want %q", join(got), want)
	}
	if v.Now() != 30*time.Millisecond {
		t.Errorf("Now = %v, want 30ms", v.Now())
	}
}

func TestVirtualNowDuringCallback(t *testing.T) {
	v := NewVirtual()

	var at time.Duration
	v.AfterFunc(40*time.Millisecond, func() { at = v.Now() })
	v.Advance(100 * time.Millisecond)

	if at != 40*time.Millisecond {
		t.Errorf("Now inside callback = %v, want 40ms", at)
	}
	if v.Now() != 100*time.Millisecond {
		t.Errorf("Now after Advance = %v, want 100ms", v.Now())
	}
}

func TestVirtualChainedCallbacks(t *testing.T) {
	v := NewVirtual()

	count := 0
	var tick func()
	tick = func() {
		count++
		v.AfterFunc(10*time.Millisecond, tick)
	}
	v.AfterFunc(10*time.Millisecond, tick)

	v.Advance(35 * time.Millisecond)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if v.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", v.Pending())
	}
	if due, ok := v.NextDue(); !ok || due != 40*time.Millisecond {
		t.Errorf("NextDue = %v, %v; want 40ms, true", due, ok)
	}
}

func TestVirtualStop(t *testing.T) {
	v := NewVirtual()

	ran := false
	h := v.AfterFunc(10*time.Millisecond, func() { ran = true })
	if !h.Stop() {
		t.Error("Stop should report success")
	}
	if h.Stop() {
		t.Error("second Stop should return false")
	}
	v.Advance(time.Second)

	if ran {
		t.Error("stopped callback ran")
	}

	h2 := v.AfterFunc(0, func() {})
	v.Advance(0)
	if h2.Stop() {
		t.Error("Stop after firing should return false")
	}

	want := Stats{Scheduled: 2, StopCalls: 3, Stopped: 1, Fired: 1}
	if got := v.Stats(); got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}
}

func TestVirtualNegativeDelay(t *testing.T) {
	v := NewVirtual()
	ran := false
	v.AfterFunc(-time.Second, func() { ran = true })
	v.Advance(0)
	if !ran {
		t.Error("negative delay should fire immediately")
	}
}

func join(parts []string) string {
	s := ""
	for _, p := range parts {
		s += p
	}
	return s
}
