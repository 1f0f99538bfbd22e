// Package stubserver hosts deterministic endpoints for rehearsing a
// monitoring configuration: fixed status codes, delays, and echo routes a
// test set can point at before it watches anything real.
package stubserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"servicemonitor/internal/stubserver/middleware"
)

// maxDelay caps /delay so a typo cannot park a connection for an hour.
const maxDelay = 30 * time.Second

type Server struct {
	Logger *zap.Logger
	APIKey string
}

func NewServer(l *zap.Logger, apiKey string) *Server {
	return &Server{Logger: l, APIKey: apiKey}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/status/{code}", s.handleStatus)
	r.Post("/status/{code}", s.handleStatus)
	r.Get("/delay/{duration}", s.handleDelay)
	r.Post("/delay/{duration}", s.handleDelay)
	r.Post("/echo", s.handleEcho)
	r.Get("/query", s.handleQuery)

	// Routes for rehearsing the failure modes a monitor must classify.
	r.Group(func(g chi.Router) {
		g.Use(middleware.RateLimit(60, 3))
		g.Get("/limited/ping", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	})
	r.Group(func(g chi.Router) {
		g.Use(middleware.RequireKey(s.APIKey))
		g.Get("/secure/ping", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	})

	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	// Informational codes are excluded: net/http would treat them as interim
	// responses and the probe would see whatever follows, not the 1xx.
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil || code < 200 || code > 599 {
		http.Error(w, "bad status code", http.StatusBadRequest)
		return
	}
	s.Logger.Debug("stub_status",
		zap.Int("code", code),
		zap.String("method", r.Method),
	)
	w.WriteHeader(code)
	if bodyAllowed(code) {
		fmt.Fprintf(w, "status %d", code)
	}
}

func (s *Server) handleDelay(w http.ResponseWriter, r *http.Request) {
	d, err := time.ParseDuration(chi.URLParam(r, "duration"))
	if err != nil || d < 0 {
		http.Error(w, "bad duration", http.StatusBadRequest)
		return
	}
	if d > maxDelay {
		d = maxDelay
	}
	s.Logger.Debug("stub_delay", zap.Duration("sleep", d))

	select {
	case <-r.Context().Done():
		return
	case <-time.After(d):
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "slept %s", d)
}

func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]string)
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

// bodyAllowed mirrors what net/http accepts: 204 and 304 must not carry a
// body.
func bodyAllowed(code int) bool {
	return code != http.StatusNoContent && code != http.StatusNotModified
}
