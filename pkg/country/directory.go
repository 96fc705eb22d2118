package country

import (
	"cmp"
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/phoneinput/pkg/cache"
	"github.com/dmitrymomot/phoneinput/pkg/flag"
	"github.com/dmitrymomot/phoneinput/pkg/i18n"
	"github.com/dmitrymomot/phoneinput/pkg/logger"
	"github.com/dmitrymomot/phoneinput/pkg/phone"
)

const (
	// DefaultLocale is the locale used when a call passes an empty one.
	DefaultLocale = "en"

	// DefaultMaxLocales bounds how many non-default locale snapshots stay cached.
	DefaultMaxLocales = 64
)

// CallingCodes is the slice of phone metadata the directory needs.
// phone.Metadata satisfies it.
type CallingCodes interface {
	Regions() []string
	CallingCode(region string) (int, error)
}

// Directory lists countries per locale. Snapshots are built lazily and cached;
// a Directory is safe for concurrent use.
type Directory struct {
	codes         CallingCodes
	names         *names
	logger        *slog.Logger
	defaultLocale string
	maxLocales    int
	flags         bool
	snapshots     *cache.LRU[*snapshot]
}

// snapshot is an immutable, sorted directory for one locale.
type snapshot struct {
	list   []Country
	byCode map[string]int
}

// Option configures a Directory during construction.
type Option func(*Directory) error

// New creates a Directory backed by the phonenumbers metadata and the
// built-in name tables.
func New(opts ...Option) (*Directory, error) {
	n, err := builtin()
	if err != nil {
		return nil, err
	}

	d := &Directory{
		codes:         phone.Phonenumbers{},
		names:         n,
		logger:        logger.NewNope(),
		defaultLocale: DefaultLocale,
		maxLocales:    DefaultMaxLocales,
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	d.snapshots = cache.New[*snapshot](
		cache.WithMaxEntries(d.maxLocales),
		cache.WithPinned(cacheKey(d.defaultLocale)),
	)
	d.snapshots.SetEvictCallback(func(locale string, _ *snapshot) {
		d.logger.Debug("country snapshot evicted", slog.String("locale", locale))
	})

	return d, nil
}

// WithCallingCodes sets the calling-code metadata source.
func WithCallingCodes(codes CallingCodes) Option {
	return func(d *Directory) error {
		if codes != nil {
			d.codes = codes
		}
		return nil
	}
}

// WithNamesFS merges {lang}.yaml name tables from the root of fsys over the
// built-in ones. A file named canonical.yaml extends the English fallback table.
func WithNamesFS(fsys fs.FS) Option {
	return func(d *Directory) error {
		return d.names.load(fsys)
	}
}

// WithNames adds or overrides display names for one language.
func WithNames(lang string, table map[string]string) Option {
	return func(d *Directory) error {
		lang = i18n.Language(lang)
		if lang == "" {
			return fmt.Errorf("%w: empty language", ErrInvalidNames)
		}
		if d.names.locales[lang] == nil {
			d.names.locales[lang] = make(map[string]string, len(table))
		}
		mergeTable(d.names.locales[lang], table)
		return nil
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Directory) error {
		if l != nil {
			d.logger = l
		}
		return nil
	}
}

// WithDefaultLocale sets the locale used for empty locale arguments.
// Its snapshot is never evicted.
func WithDefaultLocale(locale string) Option {
	return func(d *Directory) error {
		if locale = strings.TrimSpace(locale); locale != "" {
			d.defaultLocale = locale
		}
		return nil
	}
}

// WithMaxLocales bounds the number of cached non-default locale snapshots.
// Zero means unlimited.
func WithMaxLocales(n int) Option {
	return func(d *Directory) error {
		if n >= 0 {
			d.maxLocales = n
		}
		return nil
	}
}

// WithFlags fills Country.Flag with the emoji flag of each country.
func WithFlags() Option {
	return func(d *Directory) error {
		d.flags = true
		return nil
	}
}

// List returns every country, named for locale and sorted by that locale's collation.
// The returned slice is a copy the caller may modify.
func (d *Directory) List(locale string) []Country {
	return slices.Clone(d.snapshot(locale).list)
}

// ByCode returns the country with the given ISO code.
func (d *Directory) ByCode(code, locale string) (Country, bool) {
	s := d.snapshot(locale)
	i, ok := s.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Country{}, false
	}
	return s.list[i], true
}

// ByDialCode returns the first country, in directory order, whose dial code
// equals dialCode. The leading "+" is optional.
func (d *Directory) ByDialCode(dialCode, locale string) (Country, bool) {
	dialCode = strings.TrimSpace(dialCode)
	if dialCode == "" {
		return Country{}, false
	}
	if !strings.HasPrefix(dialCode, "+") {
		dialCode = "+" + dialCode
	}

	for _, c := range d.snapshot(locale).list {
		if c.DialCode == dialCode {
			return c, true
		}
	}
	return Country{}, false
}

// DialCodeFor returns "+" followed by the calling code of code, or "" when unknown.
func (d *Directory) DialCodeFor(code string) string {
	cc, err := d.callingCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return ""
	}
	return "+" + strconv.Itoa(cc)
}

// Name returns the display name of code for locale.
func (d *Directory) Name(code, locale string) string {
	return d.names.resolve(strings.ToUpper(code), d.locale(locale))
}

// Languages lists the languages that have their own name table.
func (d *Directory) Languages() []string {
	return d.names.languages()
}

// DefaultLocale returns the locale used for empty locale arguments.
func (d *Directory) DefaultLocale() string {
	return d.defaultLocale
}

// Warm builds and caches the snapshots for locales (the default locale when none given).
func (d *Directory) Warm(locales ...string) {
	if len(locales) == 0 {
		locales = []string{d.defaultLocale}
	}
	for _, l := range locales {
		d.snapshot(l)
	}
}

func (d *Directory) locale(locale string) string {
	if locale = strings.TrimSpace(locale); locale == "" {
		return d.defaultLocale
	}
	return locale
}

func (d *Directory) snapshot(locale string) *snapshot {
	locale = d.locale(locale)
	s, err := d.snapshots.GetOrLoad(cacheKey(locale), func() (*snapshot, error) {
		return d.build(locale), nil
	})
	if err != nil {
		d.logger.Error("country snapshot load failed", slog.String("locale", locale), slog.Any("error", err))
		return d.build(locale)
	}
	return s
}

func (d *Directory) build(locale string) *snapshot {
	start := time.Now()

	regions := d.regions()
	if len(regions) == 0 {
		d.logger.Warn("country snapshot is empty", slog.String("locale", locale), slog.Any("error", ErrNoRegions))
	}
	list := make([]Country, 0, len(regions))
	seen := make(map[string]bool, len(regions))
	excluded := 0

	for _, code := range regions {
		code = strings.ToUpper(code)
		if seen[code] {
			continue
		}
		cc, err := d.callingCode(code)
		if err != nil {
			excluded++
			d.logger.Debug("country excluded", slog.String("code", code), slog.Any("error", err))
			continue
		}
		seen[code] = true

		c := Country{
			Code:     code,
			Name:     d.names.resolve(code, locale),
			DialCode: "+" + strconv.Itoa(cc),
		}
		if d.flags {
			c.Flag = flag.Emoji(code)
		}
		list = append(list, c)
	}

	sortByName(list, locale)

	byCode := make(map[string]int, len(list))
	for i, c := range list {
		byCode[c.Code] = i
	}

	d.logger.Debug("country snapshot built",
		slog.String("locale", locale),
		slog.Int("countries", len(list)),
		slog.Int("excluded", excluded),
		slog.Duration("took", time.Since(start)),
	)

	return &snapshot{list: list, byCode: byCode}
}

// regions returns the metadata regions, or nil if the metadata panics.
func (d *Directory) regions() (out []string) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("listing regions panicked", slog.Any("panic", r))
			out = nil
		}
	}()
	return d.codes.Regions()
}

// callingCode wraps the metadata lookup; panics and non-positive codes are errors.
func (d *Directory) callingCode(code string) (cc int, err error) {
	defer func() {
		if r := recover(); r != nil {
			cc, err = 0, fmt.Errorf("%w: %v", phone.ErrPanic, r)
		}
	}()

	cc, err = d.codes.CallingCode(code)
	if err != nil {
		return 0, err
	}
	if cc <= 0 {
		return 0, fmt.Errorf("%w: %q", phone.ErrUnknownRegion, code)
	}
	return cc, nil
}

// sortByName sorts by locale collation of the display name, then by code.
// A collator is not safe for concurrent use, so each sort gets its own.
func sortByName(list []Country, locale string) {
	col := collate.New(collationTag(locale))
	slices.SortStableFunc(list, func(a, b Country) int {
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
}

func collationTag(locale string) language.Tag {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Make(i18n.Language(locale))
	}
	return tag
}

func cacheKey(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

var (
	defaultOnce sync.Once
	defaultDir  *Directory
)

// Default returns a shared Directory with the built-in configuration.
// It panics if the embedded name tables are broken.
func Default() *Directory {
	defaultOnce.Do(func() {
		d, err := New()
		if err != nil {
			panic(err)
		}
		defaultDir = d
	})
	return defaultDir
}
