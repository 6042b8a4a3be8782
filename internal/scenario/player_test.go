package scenario

import (
	"testing"

	"github.com/vango-dev/transitiongate/internal/errors"
	"github.com/vango-dev/transitiongate/pkg/transition"
)

func TestPlayCardSwap(t *testing.T) {
	s, err := Parse([]byte(cardSwap), false)
	if err != nil {
		t.Fatal(err)
	}

	frames, err := (&Player{}).Play(s)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	want := []Frame{
		{AtMs: 0, HTML: `<div class="card in">first</div>`},
		{AtMs: 500, HTML: `<div class="card out">first</div>`, IsExit: true, Pending: "swap"},
		{AtMs: 700, HTML: `<section class="in">second</section>`, Timer: true},
		{AtMs: 1000, HTML: `<section class="out">second</section>`, IsExit: true, Pending: "removal"},
		{AtMs: 1200, HTML: ``, Timer: true},
	}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, want %d: %+v", len(frames), len(want), frames)
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestPlayComponentTypes(t *testing.T) {
	s, err := Parse([]byte(`
props: {enterClass: in, exitClass: out, exitDurationMs: 100}
steps:
  - at: 0
    children: {component: card, text: one}
  - at: 10
    children: {component: card, text: two}
  - at: 20
    children: {component: panel, text: three}
`), false)
	if err != nil {
		t.Fatal(err)
	}

	frames, err := (&Player{}).Play(s)
	if err != nil {
		t.Fatal(err)
	}

	if len(frames) != 4 {
		t.Fatalf("got %d frames: %+v", len(frames), frames)
	}
	if frames[1].HTML != `<div class="in" data-component="card">two</div>` || frames[1].Pending != "" {
		t.Errorf("same component type should update in place, got %+v", frames[1])
	}
	if frames[2].Pending != "swap" || !frames[2].IsExit {
		t.Errorf("new component type should swap, got %+v", frames[2])
	}
	if frames[3].AtMs != 120 || frames[3].HTML != `<div class="in" data-component="panel">three</div>` {
		t.Errorf("swap frame = %+v", frames[3])
	}
}

func TestPlayTail(t *testing.T) {
	s, err := Parse([]byte("tailMs: 50\nsteps: [{at: 0, children: {tag: p}}]"), false)
	if err != nil {
		t.Fatal(err)
	}
	frames, err := (&Player{}).Play(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 1 {
		t.Errorf("got %d frames, want 1", len(frames))
	}
}

func TestPlayRejectedStep(t *testing.T) {
	s, err := Parse([]byte("steps: [{at: 0, children: {text: bare}}]"), false)
	if err != nil {
		t.Fatal(err)
	}

	p := &Player{Options: []transition.Option{transition.WithStrictChildren(true)}}
	_, err = p.Play(s)
	if !errors.HasCode(err, "E303") || !errors.HasCode(err, "E102") {
		t.Errorf("Play = %v, want E303 wrapping E102", err)
	}
}
