package theme

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

const (
	// FlagSize is the rendered flag size in the input.
	FlagSize = 32
	// ChevronSize is the rendered chevron size in the input.
	ChevronSize = 20
	// DisabledOpacity applies to the container of a disabled input.
	DisabledOpacity = 0.6
)

// Theme bundles tokens with the styles derived from them.
type Theme struct {
	Tokens Tokens `yaml:"tokens" json:"tokens"`
	Styles Styles `yaml:"styles" json:"styles"`
}

// Option configures a Theme built by New.
type Option func(*builder)

type builder struct {
	tokens Tokens
	styles Styles
}

// WithTokens applies token overrides. Non-zero fields win.
func WithTokens(t Tokens) Option {
	return func(b *builder) {
		b.tokens = b.tokens.Merge(t)
	}
}

// WithStyles applies style overrides on top of the derived styles. Non-zero fields win.
func WithStyles(s Styles) Option {
	return func(b *builder) {
		b.styles = b.styles.Merge(s)
	}
}

// New builds a theme: default tokens with overrides, styles derived from the
// resulting tokens, then style overrides.
func New(opts ...Option) Theme {
	b := &builder{tokens: DefaultTokens()}
	for _, opt := range opts {
		opt(b)
	}
	return Theme{
		Tokens: b.tokens,
		Styles: DefaultStyles(b.tokens).Merge(b.styles),
	}
}

// Default returns the stock theme.
func Default() Theme {
	return New()
}

// Merge returns base with overrides applied. Token overrides do not re-derive
// base styles; use New for that.
func Merge(base, override Theme) Theme {
	return Theme{
		Tokens: base.Tokens.Merge(override.Tokens),
		Styles: base.Styles.Merge(override.Styles),
	}
}

// ContainerState describes the input container for color resolution.
type ContainerState struct {
	Focused  bool
	HasError bool
	Disabled bool
}

// Container resolves the container style for state: focus paints the border
// primary, a visible error paints it error (error wins), and a disabled input
// gets the disabled background at reduced opacity.
func (t Theme) Container(state ContainerState) Style {
	s := t.Styles.Container
	if state.Focused {
		s.BorderColor = t.Tokens.Colors.Primary
	}
	if state.HasError {
		s.BorderColor = t.Tokens.Colors.Error
	}
	if state.Disabled {
		s.BackgroundColor = t.Tokens.Colors.Disabled
		s.Opacity = DisabledOpacity
	}
	return s
}

// Mirror returns s laid out right to left.
func Mirror(s Style) Style {
	if s.FlexDirection == "row" || s.FlexDirection == "" {
		s.FlexDirection = "row-reverse"
	}
	return s
}

// LoadYAML reads a theme override document and applies it with New.
func LoadYAML(r io.Reader) (Theme, error) {
	var doc Theme
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("%w: %s", ErrInvalidTheme, err)
	}
	return New(WithTokens(doc.Tokens), WithStyles(doc.Styles)), nil
}

// LoadFile reads name from fsys with LoadYAML.
func LoadFile(fsys fs.FS, name string) (Theme, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Theme{}, fmt.Errorf("opening theme %q: %w", name, err)
	}
	defer f.Close()
	return LoadYAML(f)
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying t.
func WithContext(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

// FromContext returns the theme carried by ctx, or Default.
func FromContext(ctx context.Context) Theme {
	if t, ok := ctx.Value(ctxKey{}).(Theme); ok {
		return t
	}
	return Default()
}
