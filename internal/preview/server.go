package preview

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/transitiongate/internal/config"
	"github.com/vango-dev/transitiongate/internal/scenario"
	"github.com/vango-dev/transitiongate/pkg/loop"
	"github.com/vango-dev/transitiongate/pkg/middleware"
	"github.com/vango-dev/transitiongate/pkg/render"
	"github.com/vango-dev/transitiongate/pkg/transition"
)

// Options configures the preview server.
type Options struct {
	// Config is the loaded configuration.
	Config *config.Config

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Scenario, when set, is played as soon as the server starts.
	Scenario *scenario.Scenario
}

// Server is the preview server.
type Server struct {
	config   *config.Config
	logger   *slog.Logger
	autoplay *scenario.Scenario

	loop     *loop.Loop
	gate     *transition.Gate
	hub      *Hub
	renderer *render.Renderer
	registry *prometheus.Registry
	router   chi.Router
	started  time.Time

	// Owned by the loop goroutine.
	props transition.Props
	cues  []loop.Handle

	mu         sync.RWMutex
	last       scenario.Frame
	httpServer *http.Server
}

// NewServer creates a preview server. Nothing runs until Start.
func NewServer(opts Options) *Server {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:   cfg,
		logger:   logger,
		autoplay: opts.Scenario,
		loop:     loop.New(loop.Config{Logger: logger}),
		renderer: render.NewRenderer(render.RendererConfig{}),
		registry: prometheus.NewRegistry(),
		started:  time.Now(),
		props: transition.Props{
			EnterClass:   cfg.Gate.EnterClass,
			ExitClass:    cfg.Gate.ExitClass,
			ExitDuration: cfg.ExitDuration(),
			Wrap:         cfg.Gate.Wrap,
		},
	}
	s.hub = NewHub(s.greeting)

	s.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := transition.NewMetrics(
		transition.WithRegistry(s.registry),
		transition.WithNamespace(cfg.Metrics.Namespace),
	)

	s.gate = transition.New(s.loop,
		transition.WithLogger(logger),
		transition.WithMetrics(metrics),
		transition.WithStrictChildren(cfg.Gate.Strict),
		transition.WithOnCommit(s.record),
	)

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.OpenTelemetry())
	r.Use(middleware.Prometheus(
		middleware.WithRegistry(s.registry),
		middleware.WithNamespace(s.config.Metrics.Namespace),
	))

	r.Get("/", s.handlePage)
	r.Get("/ws", s.hub.HandleWebSocket)
	r.Get("/frame", s.handleFrame)
	r.Put("/children", s.handleSetChildren)
	r.Delete("/children", s.handleClearChildren)
	r.Patch("/props", s.handlePatchProps)
	r.Post("/scenario", s.handlePlayScenario)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if s.config.Metrics.Enabled {
		r.Handle(s.config.Metrics.Path, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return r
}

// logRequests logs each request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the event loop and serves HTTP until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	go s.loop.Run(ctx)

	if s.autoplay != nil {
		if err := s.play(ctx, s.autoplay); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              s.config.Address(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("preview server running", "url", s.config.URL())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		s.Stop()
		return err
	}
}

// Stop unmounts the gate and shuts the server down.
func (s *Server) Stop() {
	// Unmount on the loop; if the loop is gone, nothing else touches the gate.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.loop.Do(ctx, s.gate.Unmount); err != nil {
		s.gate.Unmount()
	}
	s.loop.Close()
	s.hub.Close()

	s.mu.Lock()
	srv := s.httpServer
	s.httpServer = nil
	s.mu.Unlock()
	if srv != nil {
		srv.Shutdown(ctx)
	}
}

// record is the gate's commit hook. It runs on the loop goroutine; the
// hub only queues frames, so slow browsers never stall the loop.
func (s *Server) record(c transition.Commit) {
	f, err := scenario.NewFrame(time.Since(s.started), c, s.renderer)
	if err != nil {
		s.logger.Error("render frame", "error", err)
		s.hub.PushError(err.Error())
		return
	}

	s.mu.Lock()
	s.last = f
	s.mu.Unlock()

	s.hub.PushFrame(f)
}

// LastFrame returns the most recently committed frame.
func (s *Server) LastFrame() scenario.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *Server) greeting() *Message {
	f := s.LastFrame()
	return &Message{Type: MessageFrame, Frame: &f}
}

// update applies change to the current props and commits them on the loop.
func (s *Server) update(ctx context.Context, change func(transition.Props) transition.Props) error {
	var updateErr error
	err := s.loop.Do(ctx, func() {
		p := change(s.props)
		if updateErr = s.gate.Update(p); updateErr == nil {
			s.props = p
		}
	})
	if err != nil {
		return err
	}
	return updateErr
}

// play schedules every step of sc on the loop, replacing the steps of a
// scenario already playing.
func (s *Server) play(ctx context.Context, sc *scenario.Scenario) error {
	var compileErr error
	err := s.loop.Do(ctx, func() {
		cues, err := sc.Compile(s.props)
		if err != nil {
			compileErr = err
			return
		}

		for _, h := range s.cues {
			h.Stop()
		}
		s.cues = s.cues[:0]

		for i, cue := range cues {
			i, cue := i, cue
			s.cues = append(s.cues, s.loop.AfterFunc(cue.At, func() {
				if err := s.gate.Update(cue.Props); err != nil {
					s.logger.Warn("scenario step rejected", "name", sc.Name, "step", i, "error", err)
					s.hub.PushError(err.Error())
					return
				}
				s.props = cue.Props
			}))
		}
		s.logger.Info("scenario playing", "name", sc.Name, "steps", len(cues))
	})
	if err != nil {
		return err
	}
	return compileErr
}
