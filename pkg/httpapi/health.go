package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultCheckTimeout = 5 * time.Second

	// StatusHealthy indicates all checks passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy indicates one or more checks failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(ctx context.Context) error

// Checks is a map of named health check functions.
type Checks map[string]CheckFunc

// HealthResponse is the JSON body of the health endpoints.
type HealthResponse struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the status of a single health check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// runChecks executes all checks in parallel and aggregates their results.
func runChecks(ctx context.Context, checks Checks, timeout time.Duration, l *slog.Logger) *HealthResponse {
	if len(checks) == 0 {
		return &HealthResponse{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[string]Check, len(checks))
	)
	for name, check := range checks {
		g.Go(func() error {
			result := Check{Status: StatusHealthy}
			err := check(ctx)
			if err != nil {
				result = Check{Status: StatusUnhealthy, Error: err.Error()}
				l.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.Any("error", err),
				)
			}

			mu.Lock()
			results[name] = result
			mu.Unlock()
			return err
		})
	}

	status := StatusHealthy
	if err := g.Wait(); err != nil {
		status = StatusUnhealthy
	}
	return &HealthResponse{Status: status, Checks: results}
}

func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	if wantsText(r) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
		return
	}
	writeJSON(w, http.StatusOK, &HealthResponse{Status: StatusHealthy})
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	resp := runChecks(r.Context(), s.checks, s.checkTimeout, s.logger)

	status := http.StatusOK
	if resp.Status == StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	if wantsText(r) {
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte("OK"))
		} else {
			_, _ = w.Write([]byte("Service Unavailable"))
		}
		return
	}
	writeJSON(w, status, resp)
}

// wantsText reports whether the client asked for a plain text probe response.
func wantsText(r *http.Request) bool {
	if r.URL.Query().Get("format") == "text" {
		return true
	}
	return strings.HasPrefix(r.Header.Get("Accept"), "text/plain")
}
