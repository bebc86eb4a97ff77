// Package metrics exposes game and session counters for Prometheus.
// Labels are bounded; nothing is labeled per user or per session.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Metrics holds every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	runsStarted    prometheus.Counter
	gameOvers      prometheus.Counter
	obstaclesTotal prometheus.Counter
	restarts       prometheus.Counter
	finalScore     prometheus.Histogram
	ticks          *prometheus.CounterVec
}

// New creates collectors on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		sessionsActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "flappy_sessions_active",
			Help: "Currently connected play sessions",
		}),
		sessionsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "flappy_sessions_total",
			Help: "Play sessions opened since start",
		}),
		runsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "flappy_runs_started_total",
			Help: "Runs started by a first jump",
		}),
		gameOvers: f.NewCounter(prometheus.CounterOpts{
			Name: "flappy_game_overs_total",
			Help: "Runs ended by a collision",
		}),
		obstaclesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "flappy_obstacles_passed_total",
			Help: "Obstacles passed across all runs",
		}),
		restarts: f.NewCounter(prometheus.CounterOpts{
			Name: "flappy_restarts_total",
			Help: "Explicit restarts",
		}),
		finalScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "flappy_final_score",
			Help:    "Score at game over",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		ticks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "flappy_ticks_total",
			Help: "Engine ticks applied, by timer",
		}, []string{"timer"}), // Bounded: "vertical", "horizontal"
	}
}

// Timer names used as the ticks label.
const (
	TimerVertical   = "vertical"
	TimerHorizontal = "horizontal"
)

// SessionOpened records a new session.
func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.sessionsTotal.Inc()
	m.sessionsActive.Inc()
}

// SessionClosed records a session ending.
func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

// Tick records one applied tick of the named timer.
func (m *Metrics) Tick(timer string) {
	if m == nil {
		return
	}
	m.ticks.WithLabelValues(timer).Inc()
}

// Observe records the events of one engine step.
func (m *Metrics) Observe(res engine.StepResult) {
	if m == nil {
		return
	}
	for _, ev := range res.Events {
		switch ev.Kind {
		case engine.EventStarted:
			m.runsStarted.Inc()
		case engine.EventScored:
			m.obstaclesTotal.Inc()
		case engine.EventGameOver:
			m.gameOvers.Inc()
			m.finalScore.Observe(float64(ev.Score))
		case engine.EventRestarted:
			m.restarts.Inc()
		}
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Server serves /metrics and /health on a dedicated listener.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// Listen binds addr and prepares the metrics server. Serve starts it.
func (m *Metrics) Listen(addr string) (*Server, error) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck // Best-effort response
	})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics: cannot listen on %s: %w", addr, err)
	}
	return &Server{
		srv: &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second},
		ln:  ln,
	}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Serve blocks until Shutdown is called.
func (s *Server) Serve() error {
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
