package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/i18n"
	"github.com/dmitrymomot/phoneinput/pkg/logger"
	"github.com/dmitrymomot/phoneinput/pkg/phone"
)

// Server defaults.
const (
	DefaultAddress         = ":8080"
	DefaultShutdownTimeout = 30 * time.Second

	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
)

// Server is the HTTP lookup service over the country directory,
// the phone core and the UI strings catalog.
type Server struct {
	dir     *country.Directory
	catalog *i18n.Catalog
	phone   *phone.Core
	logger  *slog.Logger

	registry *prometheus.Registry
	metrics  *Metrics

	defaultRegion string
	checks        Checks
	checkTimeout  time.Duration
	requestID     func() string
	address       string
	shutdown      time.Duration
	shutdownHooks []func(context.Context) error

	handler http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithDirectory sets the country directory (country.Default when unset).
func WithDirectory(d *country.Directory) Option {
	return func(s *Server) {
		if d != nil {
			s.dir = d
		}
	}
}

// WithCatalog sets the UI strings catalog (i18n.Default when unset).
func WithCatalog(c *i18n.Catalog) Option {
	return func(s *Server) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithPhone sets the phone core (phone.Default when unset).
func WithPhone(p *phone.Core) Option {
	return func(s *Server) {
		if p != nil {
			s.phone = p
		}
	}
}

// WithLogger sets the logger for access logs, panics and lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry registers the service metrics with reg and serves reg on /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithDefaultRegion sets the region used by the phone endpoints when the
// request carries none.
func WithDefaultRegion(region string) Option {
	return func(s *Server) {
		s.defaultRegion = strings.ToUpper(strings.TrimSpace(region))
	}
}

// WithChecks adds readiness checks next to the built-in ones.
func WithChecks(checks Checks) Option {
	return func(s *Server) {
		for name, fn := range checks {
			if fn != nil {
				s.checks[name] = fn
			}
		}
	}
}

// WithCheckTimeout bounds the total duration of the readiness checks.
func WithCheckTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.checkTimeout = d
		}
	}
}

// WithRequestIDGenerator sets the generator for new request IDs.
func WithRequestIDGenerator(gen func() string) Option {
	return func(s *Server) {
		s.requestID = gen
	}
}

// WithAddress sets the listen address used by Run.
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.address = addr
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown in Run.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdown = d
		}
	}
}

// WithShutdownHook registers fn to run after the HTTP server stopped.
func WithShutdownHook(fn func(context.Context) error) Option {
	return func(s *Server) {
		if fn != nil {
			s.shutdownHooks = append(s.shutdownHooks, fn)
		}
	}
}

// New creates a Server and builds its router.
func New(opts ...Option) *Server {
	s := &Server{
		logger:       logger.NewNope(),
		checks:       Checks{},
		checkTimeout: defaultCheckTimeout,
		address:      DefaultAddress,
		shutdown:     DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.dir == nil {
		s.dir = country.Default()
	}
	if s.catalog == nil {
		s.catalog = i18n.Default()
	}
	if s.phone == nil {
		s.phone = phone.Default()
	}
	if _, ok := s.checks["directory"]; !ok {
		s.checks["directory"] = s.checkDirectory
	}
	if _, ok := s.checks["phone"]; !ok {
		s.checks["phone"] = s.checkPhone
	}

	s.metrics = NewMetrics(s.registry)
	s.handler = s.routes()
	return s
}

// Handler returns the HTTP handler of the service.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the service metrics.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		RequestID(s.requestID),
		AccessLog(s.logger),
		Instrument(s.metrics),
		Recover(s.logger),
		Locale(s.catalog),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound(ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, NewError(http.StatusMethodNotAllowed,
			http.StatusText(http.StatusMethodNotAllowed), ErrMethodNotAllowed))
	})

	r.Get("/healthz", s.handleLiveness)
	r.Get("/readyz", s.handleReadiness)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/countries", s.handleCountries)
		r.Get("/countries/search", s.handleSearch)
		r.Get("/countries/{code}", s.handleCountry)
		r.Get("/dial-codes/{dialCode}", s.handleDialCode)
		r.Get("/phone/parse", s.handleParse)
		r.Get("/phone/format", s.handleFormat)
		r.Get("/phone/normalize", s.handleNormalize)
		r.Get("/strings", s.handleStrings)
	})

	return r
}

func (s *Server) checkDirectory(context.Context) error {
	if len(s.dir.List(s.dir.DefaultLocale())) == 0 {
		return ErrNoCountries
	}
	return nil
}

func (s *Server) checkPhone(context.Context) error {
	if s.phone.DialCodeFor("US") == "" {
		return ErrNoMetadata
	}
	return nil
}

// Run serves the handler on the configured address until ctx is cancelled
// or the process receives SIGINT or SIGTERM, then shuts down gracefully
// and runs the shutdown hooks.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.shutdown)
	defer shutdownCancel()

	var errs []error
	if err := server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	for _, hook := range s.shutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			s.logger.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		s.logger.Error("shutdown completed with errors")
		return errors.Join(errs...)
	}
	s.logger.Info("shutdown completed")
	return nil
}
