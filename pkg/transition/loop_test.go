package transition

import (
	"context"
	"testing"
	"time"

	"github.com/vango-dev/transitiongate/pkg/loop"
	"github.com/vango-dev/transitiongate/pkg/vdom"
)

func TestGateOnEventLoop(t *testing.T) {
	l := loop.New(loop.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	commits := make(chan Commit, 16)
	var g *Gate
	do := func(fn func()) {
		t.Helper()
		if err := l.Do(ctx, fn); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}

	do(func() {
		g = New(l, WithOnCommit(func(c Commit) { commits <- c }))
		_ = g.Update(props(vdom.Div("A"), 20*time.Millisecond))
		_ = g.Update(props(nil, 20*time.Millisecond))
	})
	<-commits
	<-commits

	select {
	case c := <-commits:
		if !c.Timer || c.Output != nil {
			t.Errorf("commit = %+v, want timer commit with no output", c)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("removal never fired")
	}

	do(func() {
		_ = g.Update(props(vdom.Div("B"), 20*time.Millisecond))
		_ = g.Update(props(nil, 20*time.Millisecond))
		g.Unmount()
	})
	<-commits
	<-commits

	select {
	case c := <-commits:
		t.Errorf("unexpected commit after unmount: %+v", c)
	case <-time.After(100 * time.Millisecond):
	}
}
