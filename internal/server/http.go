package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
	"github.com/renato0307/prinbox/internal/services"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 500
)

// ErrorResponse is the body of every failed API request
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Handler serves the read-only JSON API over the shared dashboard
type Handler struct {
	dashboard Dashboard
	now       func() time.Time
	r         *chi.Mux
	refresh   func()          // Starts a manual refresh without waiting for it
	runs      ports.RunReader // Nil when run history is unavailable
}

// NewHandler creates the API handler. ctx bounds refreshes requested over HTTP.
func NewHandler(ctx context.Context, dashboard Dashboard, runs ports.RunReader) *Handler {
	h := &Handler{
		dashboard: dashboard,
		now:       time.Now,
		r:         chi.NewRouter(),
		runs:      runs,
	}
	h.refresh = func() {
		go dashboard.Refresh(ctx, domain.TriggerManual)
	}
	h.routes()
	return h
}

// Router returns the HTTP handler
func (h *Handler) Router() http.Handler { return h.r }

func (h *Handler) routes() {
	h.r.Get("/healthz", h.health)
	h.r.Get("/api/snapshot", h.snapshot)
	h.r.Post("/api/refresh", h.triggerRefresh)
	h.r.Get("/api/runs", h.listRuns)
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code, message string, statusCode int) {
	errorResp := ErrorResponse{}
	errorResp.Error.Code = code
	errorResp.Error.Message = message
	h.writeJSON(w, errorResp, statusCode)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.dashboard.Latest()
	if snap == nil {
		h.writeError(w, "NOT_READY", "no refresh cycle has completed yet", http.StatusServiceUnavailable)
		return
	}

	flat := r.URL.Query().Get("layout") == "flat"
	h.writeJSON(w, services.NewSnapshotView(snap, h.now(), flat), http.StatusOK)
}

func (h *Handler) triggerRefresh(w http.ResponseWriter, r *http.Request) {
	logging.Logger.Info("Refresh requested over HTTP", "remote_addr", r.RemoteAddr)
	h.refresh()
	h.writeJSON(w, map[string]string{"status": "accepted"}, http.StatusAccepted)
}

func (h *Handler) listRuns(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		h.writeError(w, "UNAVAILABLE", "run history is not available", http.StatusServiceUnavailable)
		return
	}

	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxRunsLimit {
			h.writeError(w, "BAD_REQUEST", fmt.Sprintf("limit must be between 1 and %d", maxRunsLimit), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	runs, err := h.runs.ListRecent(r.Context(), limit)
	if err != nil {
		logging.Logger.Error("Failed to list refresh runs", "error", err)
		h.writeError(w, "INTERNAL_ERROR", "failed to list refresh runs", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, services.NewRunViews(runs), http.StatusOK)
}

// HTTPServer serves Handler on an address
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer creates an HTTP server for handler
func NewHTTPServer(address string, handler *Handler) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Address returns the configured listen address
func (s *HTTPServer) Address() string {
	return s.server.Addr
}

// ListenAndServe blocks until the server stops. A clean shutdown returns nil.
func (s *HTTPServer) ListenAndServe() error {
	logging.Logger.Info("Starting HTTP server", "address", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx expires
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	logging.Logger.Info("HTTP server stopped")
	return nil
}
