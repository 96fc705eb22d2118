package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type config struct {
	out   io.Writer
	level slog.Level
	text  bool
}

// Option configures a logger built by New or NewWithSentry.
type Option func(*config)

// WithLevel sets the minimum level. Defaults to slog.LevelInfo.
func WithLevel(l slog.Level) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets the destination. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithText switches from JSON to the human readable text handler.
func WithText() Option {
	return func(c *config) {
		c.text = true
	}
}

func newConfig(opts []Option) *config {
	c := &config{out: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: c.level}
	if c.text {
		return slog.NewTextHandler(c.out, ho)
	}
	return slog.NewJSONHandler(c.out, ho)
}

// New creates a logger with optional context extractors.
func New(opts []Option, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(newConfig(opts).handler(), extractors...))
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Anything else yields slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
