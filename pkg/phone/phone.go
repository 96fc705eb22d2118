package phone

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/phoneinput/pkg/logger"
)

// Core wraps a Metadata capability and converts every failure into a safe value.
// It holds no mutable state and is safe for concurrent use.
type Core struct {
	meta   Metadata
	logger *slog.Logger
}

// Option configures a Core.
type Option func(*Core)

// WithMetadata replaces the default phonenumbers-backed capability.
func WithMetadata(m Metadata) Option {
	return func(c *Core) {
		if m != nil {
			c.meta = m
		}
	}
}

// WithLogger sets the logger used to report swallowed failures at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Core) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Core. Without options it uses Phonenumbers and a no-op logger.
func New(opts ...Option) *Core {
	c := &Core{
		meta:   Phonenumbers{},
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Metadata returns the underlying capability.
func (c *Core) Metadata() Metadata {
	return c.meta
}

// Parse parses text with region as the default region.
// Any failure yields a Parsed value that is neither valid nor possible.
func (c *Core) Parse(text, region string) Parsed {
	parsed, err := guard(func() (Parsed, error) {
		return c.meta.Parse(text, region)
	})
	if err != nil {
		c.logger.Debug("phone parse failed",
			slog.String("region", region),
			slog.String("error", err.Error()),
		)
		return Parsed{}
	}
	return parsed
}

// Format renders text in the given style. An empty style means StyleAsYouType.
// Empty input yields an empty string; any failure yields text unchanged.
func (c *Core) Format(text string, style Style, region string) string {
	if text == "" {
		return ""
	}

	switch style {
	case StyleNone:
		return text
	case StyleAsYouType, "":
		return c.FormatAsYouType(text, region)
	}

	out, err := guard(func() (string, error) {
		return c.meta.Format(text, style, region)
	})
	if err != nil {
		c.logger.Debug("phone format failed",
			slog.String("style", string(style)),
			slog.String("region", region),
			slog.String("error", err.Error()),
		)
		return text
	}
	return out
}

// FormatAsYouType applies incremental formatting to partial input.
func (c *Core) FormatAsYouType(text, region string) string {
	out, err := guard(func() (string, error) {
		return c.meta.AsYouType(text, region), nil
	})
	if err != nil {
		c.logger.Debug("as-you-type format failed",
			slog.String("region", region),
			slog.String("error", err.Error()),
		)
		return text
	}
	return out
}

// IsValid reports whether text is a valid number for region.
func (c *Core) IsValid(text, region string) bool {
	return c.Parse(text, region).IsValid
}

// IsPossible reports whether text has a plausible length for region.
func (c *Core) IsPossible(text, region string) bool {
	return c.Parse(text, region).IsPossible
}

// GuessCountry returns the ISO region of an internationally formatted number,
// or an empty string when it cannot be determined.
func (c *Core) GuessCountry(text string) string {
	return c.Parse(text, "").CountryCode
}

// DialCodeFor returns "+" followed by the calling code of region,
// or an empty string for unknown regions.
func (c *Core) DialCodeFor(region string) string {
	code, err := guard(func() (int, error) {
		return c.meta.CallingCode(region)
	})
	if err != nil {
		return ""
	}
	return "+" + strconv.Itoa(code)
}

// Normalize keeps only ASCII digits, and a leading "+" if and only if
// text starts with one.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	if text[0] == '+' {
		b.WriteByte('+')
	}
	for i := 0; i < len(text); i++ {
		if ch := text[i]; ch >= '0' && ch <= '9' {
			b.WriteByte(ch)
		}
	}
	return b.String()
}

// guard runs fn and turns a panic inside the metadata capability into ErrPanic.
func guard[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}
