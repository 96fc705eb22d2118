package phoneinput

import (
	"log/slog"

	"github.com/dmitrymomot/phoneinput/internal"
	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/flag"
	"github.com/dmitrymomot/phoneinput/pkg/i18n"
	"github.com/dmitrymomot/phoneinput/pkg/phone"
	"github.com/dmitrymomot/phoneinput/pkg/theme"
)

// Type aliases - public API
type (
	// Input is a headless phone number input.
	Input = internal.Input

	// Option configures an Input.
	Option = internal.Option

	// View is the render model of an Input.
	View = internal.View

	// Listener receives input events.
	Listener = internal.Listener

	// ListenerFuncs adapts optional functions to Listener.
	ListenerFuncs = internal.ListenerFuncs

	// NopListener ignores every event.
	NopListener = internal.NopListener

	// Renderer draws the flag, chevron and picker row slots.
	Renderer = internal.Renderer

	// DefaultRenderer draws flags with a flag variant and a text chevron.
	DefaultRenderer = internal.DefaultRenderer

	// FlagProps describes the flag slot.
	FlagProps = internal.FlagProps

	// ChevronProps describes the chevron slot.
	ChevronProps = internal.ChevronProps

	// Validator checks a non-empty value.
	Validator = internal.Validator

	// RegionDetector guesses a region code from a locale tag.
	RegionDetector = internal.RegionDetector

	// RegionDetectorFunc adapts a function to RegionDetector.
	RegionDetectorFunc = internal.RegionDetectorFunc

	// Ownership says who owns the input value.
	Ownership = internal.Ownership

	// State is the focus lifecycle of the input.
	State = internal.State

	// ValidationMode decides when validation runs on its own.
	ValidationMode = internal.ValidationMode

	// PlaceholderVariant selects the placeholder text.
	PlaceholderVariant = internal.PlaceholderVariant

	// Country is a directory entry.
	Country = country.Country

	// Parsed is the structured result of parsing a number.
	Parsed = phone.Parsed

	// Style is a number format style.
	Style = phone.Style
)

// Value ownership.
const (
	InternallyOwned = internal.InternallyOwned
	ExternallyOwned = internal.ExternallyOwned
)

// Focus states.
const (
	StatePristine = internal.StatePristine
	StateFocused  = internal.StateFocused
	StateBlurred  = internal.StateBlurred
)

// Validation modes.
const (
	ValidateOnChange = internal.ValidateOnChange
	ValidateOnBlur   = internal.ValidateOnBlur
	ValidateManual   = internal.ValidateManual
)

// Placeholder variants.
const (
	PlaceholderLocalized = internal.PlaceholderLocalized
	PlaceholderDialCode  = internal.PlaceholderDialCode
	PlaceholderNone      = internal.PlaceholderNone
)

// Format styles.
const (
	StyleAsYouType     = phone.StyleAsYouType
	StyleE164          = phone.StyleE164
	StyleInternational = phone.StyleInternational
	StyleNational      = phone.StyleNational
	StyleNone          = phone.StyleNone
)

// Errors
var (
	ErrInvalidNumber   = internal.ErrInvalidNumber
	ErrInternallyOwned = internal.ErrInternallyOwned
	ErrUnknownCountry  = internal.ErrUnknownCountry
	ErrDisabled        = internal.ErrDisabled
)

// New creates an input. Without options it owns its value, starts on the US,
// uses English labels and validates only when Validate is called.
//
// Example:
//
//	in := phoneinput.New(
//	    phoneinput.WithLocale("fr"),
//	    phoneinput.WithDefaultCountry("FR"),
//	    phoneinput.WithValidation(phoneinput.ValidateOnBlur, true, nil),
//	    phoneinput.WithListener(phoneinput.ListenerFuncs{
//	        Change: func(v string) { log.Println("value", v) },
//	    }),
//	)
//	in.ChangeText("06 12 34 56 78")
//	in.GetNumber(phoneinput.StyleE164) // "+33612345678"
func New(opts ...Option) *Input {
	return internal.New(opts...)
}

// NewDefaultRenderer returns a DefaultRenderer using variant for every flag.
func NewDefaultRenderer(variant flag.Variant) DefaultRenderer {
	return internal.NewDefaultRenderer(variant)
}

// Value options

// WithValue makes the caller the owner of the value. The input reports changes
// through the Listener and waits for SetValue.
func WithValue(v string) Option {
	return internal.WithValue(v)
}

// WithDefaultValue sets the initial value of an internally owned input.
func WithDefaultValue(v string) Option {
	return internal.WithDefaultValue(v)
}

// Country options

// WithDefaultCountry sets the initial country. Defaults to "US".
func WithDefaultCountry(code string) Option {
	return internal.WithDefaultCountry(code)
}

// WithLocale sets the locale for names, labels and direction. Defaults to "en".
func WithLocale(locale string) Option {
	return internal.WithLocale(locale)
}

// WithDetectCountry picks the initial country from the locale region.
func WithDetectCountry() Option {
	return internal.WithDetectCountry()
}

// WithRegionDetector replaces the locale-based region detector.
func WithRegionDetector(d RegionDetector) Option {
	return internal.WithRegionDetector(d)
}

// WithPreferredCountries lists codes shown first in the picker.
func WithPreferredCountries(codes ...string) Option {
	return internal.WithPreferredCountries(codes...)
}

// WithAllowedCountries restricts the picker to codes.
func WithAllowedCountries(codes ...string) Option {
	return internal.WithAllowedCountries(codes...)
}

// WithExcludedCountries removes codes from the picker.
func WithExcludedCountries(codes ...string) Option {
	return internal.WithExcludedCountries(codes...)
}

// Validation and formatting options

// WithValidation sets the validation mode, the required flag and a custom validator.
func WithValidation(mode ValidationMode, required bool, custom Validator) Option {
	return internal.WithValidation(mode, required, custom)
}

// WithFormatter sets the display and GetNumber style.
func WithFormatter(style Style) Option {
	return internal.WithFormatter(style)
}

// WithListener sets the event listener.
func WithListener(l Listener) Option {
	return internal.WithListener(l)
}

// WithRenderer sets the slot renderer.
func WithRenderer(r Renderer) Option {
	return internal.WithRenderer(r)
}

// Visibility options

// WithShowFlag toggles the flag slot.
func WithShowFlag(show bool) Option { return internal.WithShowFlag(show) }

// WithShowChevron toggles the chevron slot.
func WithShowChevron(show bool) Option { return internal.WithShowChevron(show) }

// WithShowCountryCode toggles the ISO code text.
func WithShowCountryCode(show bool) Option { return internal.WithShowCountryCode(show) }

// WithShowDialCode toggles the dial code text.
func WithShowDialCode(show bool) Option { return internal.WithShowDialCode(show) }

// WithShowPlaceholder toggles the placeholder.
func WithShowPlaceholder(show bool) Option { return internal.WithShowPlaceholder(show) }

// WithShowSearch toggles the picker search field.
func WithShowSearch(show bool) Option { return internal.WithShowSearch(show) }

// WithShowError toggles the error text.
func WithShowError(show bool) Option { return internal.WithShowError(show) }

// WithDisabled disables the input and its picker.
func WithDisabled(disabled bool) Option { return internal.WithDisabled(disabled) }

// WithEditable toggles text editing.
func WithEditable(editable bool) Option { return internal.WithEditable(editable) }

// Text options

// WithPlaceholder sets the placeholder variant and an optional explicit text.
func WithPlaceholder(variant PlaceholderVariant, text string) Option {
	return internal.WithPlaceholder(variant, text)
}

// WithSearchPlaceholder overrides the picker search placeholder.
func WithSearchPlaceholder(text string) Option {
	return internal.WithSearchPlaceholder(text)
}

// WithError sets an external error message that wins over validation errors.
func WithError(msg string) Option {
	return internal.WithError(msg)
}

// Dependency options

// WithTheme sets the theme.
func WithTheme(t theme.Theme) Option {
	return internal.WithTheme(t)
}

// WithDirectory sets the country directory.
func WithDirectory(d *country.Directory) Option {
	return internal.WithDirectory(d)
}

// WithCatalog sets the label catalog.
func WithCatalog(c *i18n.Catalog) Option {
	return internal.WithCatalog(c)
}

// WithPhone sets the phone core used for parsing and formatting.
func WithPhone(p *phone.Core) Option {
	return internal.WithPhone(p)
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}
