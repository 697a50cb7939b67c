package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lixenwraith/kickoff/event"
	"github.com/lixenwraith/kickoff/match"
	"github.com/lixenwraith/kickoff/status"
)

const (
	defaultEventLimit = 50
	shutdownTimeout   = 3 * time.Second
)

// debugServer exposes read-only match state over HTTP
// The game loop publishes, handlers only read
type debugServer struct {
	snapshot atomic.Pointer[match.Snapshot]
	history  *event.History
	metrics  *prometheus.Registry
	logger   *zap.Logger
}

func newDebugServer(reg *status.Registry, history *event.History, logger *zap.Logger) *debugServer {
	metrics := prometheus.NewRegistry()
	metrics.MustRegister(status.NewCollector(reg, "kickoff"))
	return &debugServer{
		history: history,
		metrics: metrics,
		logger:  logger,
	}
}

// Publish stores a copy of the latest snapshot
func (d *debugServer) Publish(s match.Snapshot) {
	d.snapshot.Store(&s)
}

func (d *debugServer) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", d.Health)
	r.Get("/snapshot", d.Snapshot)
	r.Get("/events", d.Events)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.metrics, promhttp.HandlerOpts{}))
	return r
}

// Health check endpoint
func (d *debugServer) Health(w http.ResponseWriter, r *http.Request) {
	d.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Snapshot returns the latest published match state
func (d *debugServer) Snapshot(w http.ResponseWriter, r *http.Request) {
	s := d.snapshot.Load()
	if s == nil {
		d.errorResponse(w, http.StatusServiceUnavailable, "no snapshot yet")
		return
	}
	d.jsonResponse(w, http.StatusOK, s)
}

// Events returns the most recent match events, oldest first, ?limit=n caps the count
func (d *debugServer) Events(w http.ResponseWriter, r *http.Request) {
	limit := defaultEventLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			d.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events := d.history.Recent()
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	d.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"count":  len(events),
		"events": events,
	})
}

func (d *debugServer) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		d.logger.Warn("encode response", zap.Error(err))
	}
}

func (d *debugServer) errorResponse(w http.ResponseWriter, status int, message string) {
	d.jsonResponse(w, status, map[string]string{"error": message})
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
func (d *debugServer) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           d.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		d.logger.Info("debug server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	// Server failures are logged and never end the session
	select {
	case err := <-errCh:
		d.logger.Error("debug server failed", zap.String("addr", addr), zap.Error(err))
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		d.logger.Warn("debug server shutdown", zap.Error(err))
		return nil
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		d.logger.Warn("debug server stopped with error", zap.Error(err))
		return nil
	}
	d.logger.Info("debug server stopped")
	return nil
}
