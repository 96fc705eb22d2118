package internal

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/i18n"
	"github.com/dmitrymomot/phoneinput/pkg/phone"
	"github.com/dmitrymomot/phoneinput/pkg/theme"
)

// Option configures an Input.
type Option func(*Input)

// Validator checks a non-empty value. Returning ErrInvalidNumber (or an error
// wrapping it) shows the localized invalid-number message; any other error
// shows its own text. c is the zero Country when none is selected.
type Validator func(value string, c country.Country) error

// RegionDetector guesses a region code from a locale tag.
type RegionDetector interface {
	DetectRegion(locale string) string
}

// RegionDetectorFunc adapts a function to RegionDetector.
type RegionDetectorFunc func(locale string) string

func (f RegionDetectorFunc) DetectRegion(locale string) string { return f(locale) }

// WithValue makes the caller the owner of the value and sets its initial value.
func WithValue(v string) Option {
	return func(i *Input) {
		i.ownership = ExternallyOwned
		i.value = v
	}
}

// WithDefaultValue sets the initial value of an internally owned input.
func WithDefaultValue(v string) Option {
	return func(i *Input) {
		if i.ownership == InternallyOwned {
			i.value = phone.Normalize(v)
		}
	}
}

// WithDefaultCountry sets the initial country. Defaults to "US".
func WithDefaultCountry(code string) Option {
	return func(i *Input) {
		if code = strings.TrimSpace(code); code != "" {
			i.defaultCountry = strings.ToUpper(code)
		}
	}
}

// WithLocale sets the locale for names, labels and direction. Defaults to "en".
func WithLocale(locale string) Option {
	return func(i *Input) {
		if locale = strings.TrimSpace(locale); locale != "" {
			i.locale = locale
		}
	}
}

// WithDetectCountry picks the initial country from the locale's region, falling
// back to the default country.
func WithDetectCountry() Option {
	return func(i *Input) {
		i.detectCountry = true
	}
}

// WithRegionDetector replaces the locale-based region detector.
func WithRegionDetector(d RegionDetector) Option {
	return func(i *Input) {
		if d != nil {
			i.detector = d
		}
	}
}

// WithPreferredCountries lists codes shown first in the picker, in order.
func WithPreferredCountries(codes ...string) Option {
	return func(i *Input) {
		i.preferred = codes
	}
}

// WithAllowedCountries restricts the picker to codes.
func WithAllowedCountries(codes ...string) Option {
	return func(i *Input) {
		i.allowed = codes
	}
}

// WithExcludedCountries removes codes from the picker.
func WithExcludedCountries(codes ...string) Option {
	return func(i *Input) {
		i.excluded = codes
	}
}

// WithValidation configures when validation runs, whether a value is required
// and an optional custom validator.
func WithValidation(mode ValidationMode, required bool, custom Validator) Option {
	return func(i *Input) {
		if mode != "" {
			i.validationMode = mode
		}
		i.required = required
		i.validator = custom
	}
}

// WithFormatter sets the display and GetNumber style. Defaults to as-you-type
// for display and E.164 for GetNumber.
func WithFormatter(style phone.Style) Option {
	return func(i *Input) {
		i.formatStyle = style
	}
}

// WithListener sets the event listener. Defaults to NopListener.
func WithListener(l Listener) Option {
	return func(i *Input) {
		if l != nil {
			i.listener = l
		}
	}
}

// WithRenderer sets the slot renderer. Defaults to emoji flags.
func WithRenderer(r Renderer) Option {
	return func(i *Input) {
		if r != nil {
			i.renderer = r
		}
	}
}

// WithShowFlag toggles the flag slot. Shown by default.
func WithShowFlag(show bool) Option {
	return func(i *Input) { i.show.flag = show }
}

// WithShowChevron toggles the chevron slot. Shown by default.
func WithShowChevron(show bool) Option {
	return func(i *Input) { i.show.chevron = show }
}

// WithShowCountryCode toggles the ISO code text. Hidden by default.
func WithShowCountryCode(show bool) Option {
	return func(i *Input) { i.show.countryCode = show }
}

// WithShowDialCode toggles the dial code text. Shown by default.
func WithShowDialCode(show bool) Option {
	return func(i *Input) { i.show.dialCode = show }
}

// WithShowPlaceholder toggles the placeholder. Shown by default.
func WithShowPlaceholder(show bool) Option {
	return func(i *Input) { i.show.placeholder = show }
}

// WithShowSearch toggles the picker search field. Shown by default.
func WithShowSearch(show bool) Option {
	return func(i *Input) { i.show.search = show }
}

// WithShowError toggles the error text. Shown by default.
func WithShowError(show bool) Option {
	return func(i *Input) { i.show.error = show }
}

// WithDisabled disables the input and its picker.
func WithDisabled(disabled bool) Option {
	return func(i *Input) { i.disabled = disabled }
}

// WithEditable toggles text editing. Editable by default.
func WithEditable(editable bool) Option {
	return func(i *Input) { i.editable = editable }
}

// WithPlaceholder sets the placeholder variant and an optional explicit text
// that wins over the variant.
func WithPlaceholder(variant PlaceholderVariant, text string) Option {
	return func(i *Input) {
		if variant != "" {
			i.placeholderVariant = variant
		}
		i.placeholderText = text
	}
}

// WithSearchPlaceholder overrides the localized picker search placeholder.
func WithSearchPlaceholder(text string) Option {
	return func(i *Input) {
		i.searchPlaceholder = text
	}
}

// WithError sets an external error message. It wins over validation errors.
func WithError(msg string) Option {
	return func(i *Input) {
		i.externalErr = msg
	}
}

// WithTheme sets the theme. Defaults to theme.Default().
func WithTheme(t theme.Theme) Option {
	return func(i *Input) {
		i.theme = t
	}
}

// WithDirectory sets the country directory. Defaults to country.Default().
func WithDirectory(d *country.Directory) Option {
	return func(i *Input) {
		if d != nil {
			i.dir = d
		}
	}
}

// WithCatalog sets the label catalog. Defaults to i18n.Default().
func WithCatalog(c *i18n.Catalog) Option {
	return func(i *Input) {
		if c != nil {
			i.catalog = c
		}
	}
}

// WithPhone sets the phone core used for parsing and formatting. Defaults to phone.Default().
func WithPhone(p *phone.Core) Option {
	return func(i *Input) {
		if p != nil {
			i.phone = p
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(i *Input) {
		if l != nil {
			i.logger = l
		}
	}
}
