package scenario

import (
	"log/slog"
	"time"

	"github.com/vango-dev/transitiongate/internal/errors"
	"github.com/vango-dev/transitiongate/pkg/loop"
	"github.com/vango-dev/transitiongate/pkg/render"
	"github.com/vango-dev/transitiongate/pkg/transition"
)

// maxTimerFires bounds playback of a scenario whose transitions keep
// re-arming.
const maxTimerFires = 10000

// Frame is one committed render.
type Frame struct {
	AtMs    int64  `json:"atMs"`
	HTML    string `json:"html"`
	IsExit  bool   `json:"isExit"`
	Pending string `json:"pending,omitempty"`
	Timer   bool   `json:"timer"`
}

// NewFrame builds a frame from a gate commit rendered at the given offset.
func NewFrame(at time.Duration, c transition.Commit, r *render.Renderer) (Frame, error) {
	html, err := r.RenderToString(c.Output)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		AtMs:    at.Milliseconds(),
		HTML:    html,
		IsExit:  c.State.IsExit,
		Pending: string(c.Pending),
		Timer:   c.Timer,
	}, nil
}

// Player plays scenarios against a fresh gate on a virtual clock.
type Player struct {
	// Defaults are the props a scenario's own props override.
	Defaults transition.Props

	// Options are passed to every gate the player creates.
	Options []transition.Option

	// Renderer renders frames. Defaults to a compact renderer.
	Renderer *render.Renderer

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Play runs s to completion and returns its frames in commit order.
func (p *Player) Play(s *Scenario) ([]Frame, error) {
	cues, err := s.Compile(p.Defaults)
	if err != nil {
		return nil, err
	}

	r := p.Renderer
	if r == nil {
		r = render.NewRenderer(render.RendererConfig{})
	}
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	clock := loop.NewVirtual()
	var (
		frames    []Frame
		renderErr error
	)
	opts := append([]transition.Option{}, p.Options...)
	opts = append(opts, transition.WithOnCommit(func(c transition.Commit) {
		f, err := NewFrame(clock.Now(), c, r)
		if err != nil && renderErr == nil {
			renderErr = err
		}
		frames = append(frames, f)
	}))

	g := transition.New(clock, opts...)
	defer g.Unmount()

	for i, cue := range cues {
		clock.AdvanceTo(cue.At)
		if err := g.Update(cue.Props); err != nil {
			return frames, errors.New("E303").WithDetailf("Step %d at %v was rejected.", i, cue.At).Wrap(err)
		}
	}

	for fired := 0; ; fired++ {
		due, ok := clock.NextDue()
		if !ok {
			break
		}
		if fired >= maxTimerFires {
			return frames, errors.New("E303").WithDetail("Transitions did not settle.")
		}
		clock.AdvanceTo(due)
	}
	if tail := s.Tail(); tail > 0 {
		clock.Advance(tail)
	}

	if renderErr != nil {
		return frames, errors.New("E303").Wrap(renderErr)
	}

	logger.Debug("scenario played", "name", s.Name, "steps", len(cues), "frames", len(frames),
		"duration", clock.Now())
	return frames, nil
}
