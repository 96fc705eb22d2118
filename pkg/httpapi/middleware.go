package httpapi

import (
	"log/slog"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/phoneinput/pkg/i18n"
	"github.com/dmitrymomot/phoneinput/pkg/logger"
)

// DefaultRequestIDHeaders are the headers checked (in order) for an existing request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// RequestID assigns a request ID to each request. Upstream IDs from headers
// are kept, otherwise gen (uuid.NewString when nil) creates one.
// The ID is stored with logger.WithRequestID and echoed in the response.
func RequestID(gen func() string, headers ...string) Middleware {
	if gen == nil {
		gen = uuid.NewString
	}
	if len(headers) == 0 {
		headers = DefaultRequestIDHeaders
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var reqID string
			for _, header := range headers {
				if v := r.Header.Get(header); v != "" {
					reqID = v
					break
				}
			}
			if reqID == "" {
				reqID = gen()
			}

			w.Header().Set(RequestIDHeader, reqID)
			next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), reqID)))
		})
	}
}

// Recover turns a panic into a 500 JSON response and logs it with the stack.
func Recover(l *slog.Logger) Middleware {
	if l == nil {
		l = logger.NewNope()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				stack := make([]byte, DefaultStackSize)
				stack = stack[:runtime.Stack(stack, false)]
				pe := &PanicError{Value: v, Stack: stack}

				l.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", v),
					slog.String("stack", string(stack)),
				)
				if !rw.Written() {
					writeError(rw, r, NewError(http.StatusInternalServerError,
						http.StatusText(http.StatusInternalServerError), pe))
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// Locale resolves the request locale: the "locale" query parameter wins,
// then Accept-Language negotiated against catalog, then the catalog default.
// The result is stored with logger.WithLocale.
func Locale(catalog *i18n.Catalog) Middleware {
	if catalog == nil {
		catalog = i18n.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := r.URL.Query().Get("locale")
			if locale == "" {
				if header := r.Header.Get("Accept-Language"); header != "" {
					locale = catalog.Negotiate(header)
				}
			}
			if locale == "" {
				locale = catalog.DefaultLanguage()
			}

			w.Header().Set("Content-Language", i18n.Language(locale))
			next.ServeHTTP(w, r.WithContext(logger.WithLocale(r.Context(), locale)))
		})
	}
}

// AccessLog logs every request at Info level once it completes.
func AccessLog(l *slog.Logger) Middleware {
	if l == nil {
		l = logger.NewNope()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			l.InfoContext(r.Context(), "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.Status()),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// Instrument records request counts and latency per route pattern.
func Instrument(m *Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			route := routePattern(r)
			m.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.Status())).Inc()
			m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// routePattern returns the matched chi pattern, or "unmatched".
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
