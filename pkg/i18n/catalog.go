package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync"
)

// DefaultLang is the fallback language of the built-in catalog.
const DefaultLang = "en"

// DefaultRTLLanguages lists the language subtags written right to left.
var DefaultRTLLanguages = []string{"ar", "he", "fa", "ur"}

//go:embed locales
var builtinFS embed.FS

// Catalog maps language subtags to UI labels.
// It is immutable after creation.
type Catalog struct {
	strings     map[string]Strings
	rtl         map[string]bool
	defaultLang string
	languages   []string
	noBuiltin   bool
}

// Option configures a Catalog during construction.
type Option func(*Catalog) error

// New creates a Catalog from opts. The built-in labels sit beneath anything the
// options set, unless WithoutBuiltin is given.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		strings:     make(map[string]Strings),
		rtl:         make(map[string]bool),
		defaultLang: DefaultLang,
	}
	for _, lang := range DefaultRTLLanguages {
		c.rtl[lang] = true
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if !c.noBuiltin {
		if err := c.underlayBuiltin(); err != nil {
			return nil, err
		}
	}

	if c.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	fallback := c.strings[c.defaultLang]
	for lang, s := range c.strings {
		c.strings[lang] = s.merge(fallback)
	}

	c.languages = c.buildLanguages()
	return c, nil
}

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) error {
		lang = Language(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.defaultLang = lang
		return nil
	}
}

// WithStrings adds or overrides labels for lang. Empty fields keep the previous value.
func WithStrings(lang string, s Strings) Option {
	return func(c *Catalog) error {
		lang = Language(lang)
		if lang == "" {
			return ErrEmptyLanguage
		}
		c.strings[lang] = c.strings[lang].overlay(s)
		return nil
	}
}

// WithRTLLanguages replaces the right-to-left language set.
func WithRTLLanguages(langs ...string) Option {
	return func(c *Catalog) error {
		c.rtl = make(map[string]bool, len(langs))
		for _, lang := range langs {
			if lang = Language(lang); lang != "" {
				c.rtl[lang] = true
			}
		}
		return nil
	}
}

// WithoutBuiltin starts from an empty catalog instead of the shipped labels.
func WithoutBuiltin() Option {
	return func(c *Catalog) error {
		c.noBuiltin = true
		return nil
	}
}

// underlayBuiltin puts the shipped labels beneath whatever the options set.
func (c *Catalog) underlayBuiltin() error {
	sub, err := fs.Sub(builtinFS, "locales")
	if err != nil {
		return fmt.Errorf("i18n: opening built-in labels: %w", err)
	}

	base := &Catalog{strings: make(map[string]Strings)}
	if err := loadDir(base, sub); err != nil {
		return fmt.Errorf("i18n: loading built-in labels: %w", err)
	}

	for lang, s := range base.strings {
		c.strings[lang] = s.overlay(c.strings[lang])
	}
	return nil
}

// Strings returns the labels for the language of locale, falling back to the
// default language.
func (c *Catalog) Strings(locale string) Strings {
	if s, ok := c.strings[Language(locale)]; ok {
		return s
	}
	return c.strings[c.defaultLang]
}

// IsRTL reports whether the language of locale is written right to left.
func (c *Catalog) IsRTL(locale string) bool {
	return c.rtl[Language(locale)]
}

// Has reports whether the catalog carries labels for the language of locale.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.strings[Language(locale)]
	return ok
}

// Languages returns the available languages, default language first, the rest sorted.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.languages)
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

func (c *Catalog) buildLanguages() []string {
	langs := make([]string, 0, len(c.strings))
	for lang := range c.strings {
		if lang != c.defaultLang {
			langs = append(langs, lang)
		}
	}
	slices.Sort(langs)
	return append([]string{c.defaultLang}, langs...)
}

// Language returns the language subtag of a locale tag: the part before the
// first hyphen (or underscore), lowercased and trimmed.
func Language(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	return strings.ToLower(locale)
}

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Default returns the built-in catalog. It panics if the embedded files are broken.
func Default() *Catalog {
	builtinOnce.Do(func() {
		c, err := New()
		if err != nil {
			panic(err)
		}
		builtin = c
	})
	return builtin
}

// GetStrings returns built-in labels for locale.
func GetStrings(locale string) Strings {
	return Default().Strings(locale)
}

// IsRTL reports whether locale is right to left according to the built-in catalog.
func IsRTL(locale string) bool {
	return Default().IsRTL(locale)
}
