// Package http exposes the engine over a small JSON API plus a
// server-sent-events channel for progress and result streaming.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atelier-tools/sift"
	"github.com/atelier-tools/sift/pkg/domain"
)

// Server holds the handler dependencies.
type Server struct {
	engine  *sift.Engine
	broker  *Broker
	metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithMetricsHandler mounts a metrics endpoint at /metrics, typically
// promhttp.Handler().
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// NewHandler builds the router. The broker must be the same instance
// wired into the engine as its presenter, otherwise /events stays silent.
func NewHandler(engine *sift.Engine, broker *Broker, opts ...Option) http.Handler {
	s := &Server{engine: engine, broker: broker}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/query", s.handleQuery)
	r.Post("/identify", s.handleIdentify)
	r.Post("/select", s.handleSelect)
	r.Get("/selection", s.handleSelection)
	r.Get("/document", s.handleDocument)
	r.Get("/scope", s.handleGetScope)
	r.Put("/scope", s.handlePutScope)
	r.Get("/events", s.handleEvents)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	return r
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var q domain.Query
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	res, err := s.engine.Run(r.Context(), &q)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, domain.ErrNoSelection) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key domain.AttributeKey `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	value, err := s.engine.Inspect(r.Context(), body.Key)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key": body.Key, "value": value})
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.engine.SelectElement(r.Context(), body.ID); err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, domain.ErrUnknownNode) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	attrs, err := s.engine.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"attributes": attrs})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Tree().Root())
}

func (s *Server) handleGetScope(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"scope": s.engine.Scope()})
}

func (s *Server) handlePutScope(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Scope domain.Scope `json:"scope"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.engine.SetScope(r.Context(), body.Scope); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scope": body.Scope})
}

// handleEvents streams presenter messages as server-sent events until
// the client disconnects.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch := s.broker.subscribe()
	defer s.broker.unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			data, err := encodeEvent(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, data)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
