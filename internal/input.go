package internal

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/flag"
	"github.com/dmitrymomot/phoneinput/pkg/i18n"
	"github.com/dmitrymomot/phoneinput/pkg/logger"
	"github.com/dmitrymomot/phoneinput/pkg/phone"
	"github.com/dmitrymomot/phoneinput/pkg/picker"
	"github.com/dmitrymomot/phoneinput/pkg/theme"
)

// Defaults applied by New.
const (
	DefaultCountry = "US"
	DefaultLocale  = "en"
)

type visibility struct {
	flag        bool
	chevron     bool
	countryCode bool
	dialCode    bool
	placeholder bool
	search      bool
	error       bool
}

// Input is a headless phone number input: value ownership, country selection,
// formatting, validation and the render model.
// It is not safe for concurrent use.
type Input struct {
	ownership Ownership
	state     State
	value     string

	selected    country.Country
	hasCountry  bool
	validErr    string
	externalErr string

	defaultCountry     string
	locale             string
	detectCountry      bool
	detector           RegionDetector
	preferred          []string
	allowed            []string
	excluded           []string
	validationMode     ValidationMode
	required           bool
	validator          Validator
	formatStyle        phone.Style
	placeholderVariant PlaceholderVariant
	placeholderText    string
	searchPlaceholder  string
	show               visibility
	disabled           bool
	editable           bool

	listener Listener
	renderer Renderer
	theme    theme.Theme
	dir      *country.Directory
	catalog  *i18n.Catalog
	phone    *phone.Core
	picker   *picker.Picker
	logger   *slog.Logger
}

// New creates an Input. Without options the input owns its value, starts on
// the US, uses English labels and validates only on demand.
func New(opts ...Option) *Input {
	i := &Input{
		ownership:          InternallyOwned,
		defaultCountry:     DefaultCountry,
		locale:             DefaultLocale,
		detector:           RegionDetectorFunc(country.DetectRegion),
		validationMode:     ValidateManual,
		placeholderVariant: PlaceholderLocalized,
		show: visibility{
			flag:        true,
			chevron:     true,
			dialCode:    true,
			placeholder: true,
			search:      true,
			error:       true,
		},
		editable: true,
		listener: NopListener{},
		renderer: NewDefaultRenderer(flag.VariantEmoji),
		theme:    theme.Default(),
		logger:   logger.NewNope(),
	}

	for _, opt := range opts {
		opt(i)
	}

	if i.dir == nil {
		i.dir = country.Default()
	}
	if i.catalog == nil {
		i.catalog = i18n.Default()
	}
	if i.phone == nil {
		i.phone = phone.Default()
	}

	i.initCountry()
	i.picker = picker.New(i.countries(),
		picker.WithPreferred(i.preferred...),
		picker.WithSearch(i.show.search),
		picker.WithSearchPlaceholder(i.searchPlaceholder),
		picker.WithLocale(i.locale),
		picker.WithCatalog(i.catalog),
		picker.WithSelected(i.selected.Code),
		picker.WithItemRenderer(i.renderer),
		picker.WithLogger(i.logger),
		picker.OnSelect(i.changeCountry),
	)

	return i
}

func (i *Input) initCountry() {
	if i.detectCountry {
		if code := i.detector.DetectRegion(i.locale); code != "" {
			if c, ok := i.dir.ByCode(code, i.locale); ok {
				i.selected, i.hasCountry = c, true
				return
			}
			i.logger.Debug("detected region not in directory", slog.String("region", code))
		}
	}
	if c, ok := i.dir.ByCode(i.defaultCountry, i.locale); ok {
		i.selected, i.hasCountry = c, true
		return
	}
	i.logger.Warn("default country not in directory", slog.String("country", i.defaultCountry))
}

// countries is the directory for the locale after allowed/excluded filtering.
func (i *Input) countries() []country.Country {
	return country.Filter(i.dir.List(i.locale), i.allowed, i.excluded)
}

// Ownership reports who owns the value.
func (i *Input) Ownership() Ownership {
	return i.ownership
}

// State returns the focus state.
func (i *Input) State() State {
	return i.state
}

// Value returns the current raw value.
func (i *Input) Value() string {
	return i.value
}

// Formatted returns the value formatted for display.
func (i *Input) Formatted() string {
	return i.format(i.value, i.displayStyle())
}

// ChangeText handles user typing: normalizes text, stores it when internally
// owned, auto-detects the country from international input, emits change
// events and validates in ValidateOnChange mode.
func (i *Input) ChangeText(text string) {
	normalized := phone.Normalize(text)

	if i.ownership == InternallyOwned {
		i.value = normalized
	}
	i.listener.OnChange(normalized)

	if strings.HasPrefix(normalized, "+") {
		i.detectFromNumber(normalized)
	}

	i.listener.OnChangeFormatted(i.format(normalized, i.displayStyle()), normalized)

	if i.validationMode == ValidateOnChange {
		i.validate(normalized)
	}
}

func (i *Input) detectFromNumber(number string) {
	code := i.phone.GuessCountry(number)
	if code == "" || (i.hasCountry && code == i.selected.Code) {
		return
	}
	if !i.available(code) {
		i.logger.Debug("guessed country not available", slog.String("country", code))
		return
	}
	if c, ok := i.dir.ByCode(code, i.locale); ok {
		i.changeCountry(c)
	}
}

func (i *Input) available(code string) bool {
	return len(country.Filter([]country.Country{{Code: code}}, i.allowed, i.excluded)) == 1
}

// SetValue replaces the value of an externally owned input.
func (i *Input) SetValue(v string) error {
	if i.ownership != ExternallyOwned {
		return ErrInternallyOwned
	}
	i.value = v
	return nil
}

// Focus marks the input focused.
func (i *Input) Focus() {
	i.state = StateFocused
}

// Blur marks the input blurred and validates in ValidateOnBlur mode.
func (i *Input) Blur() {
	i.state = StateBlurred
	if i.validationMode == ValidateOnBlur {
		i.validate(i.value)
	}
}

// Focused reports whether the input has focus.
func (i *Input) Focused() bool {
	return i.state == StateFocused
}

// Clear behaves like the user erasing all text.
func (i *Input) Clear() {
	i.ChangeText("")
}

// Validate runs validation on the current value and reports whether it passed.
func (i *Input) Validate() bool {
	return i.validate(i.value)
}

// ValidationError returns the message of the last failed validation, or "".
func (i *Input) ValidationError() string {
	return i.validErr
}

// SetError sets or clears (with "") the external error message.
func (i *Input) SetError(msg string) {
	i.externalErr = msg
}

// DisplayError returns the error to display: the external error wins over the
// validation error.
func (i *Input) DisplayError() string {
	if i.externalErr != "" {
		return i.externalErr
	}
	return i.validErr
}

func (i *Input) validate(v string) bool {
	strs := i.catalog.Strings(i.locale)

	if v == "" {
		if i.required {
			return i.fail(strs.RequiredField)
		}
		return i.pass()
	}

	if i.validator != nil {
		if err := i.validator(v, i.selected); err != nil {
			if errors.Is(err, ErrInvalidNumber) {
				return i.fail(strs.InvalidPhoneNumber)
			}
			return i.fail(err.Error())
		}
	}

	if !i.phone.IsValid(v, i.selected.Code) {
		return i.fail(strs.InvalidPhoneNumber)
	}
	return i.pass()
}

func (i *Input) fail(msg string) bool {
	i.validErr = msg
	i.listener.OnValidationChange(false, msg)
	return false
}

func (i *Input) pass() bool {
	i.validErr = ""
	i.listener.OnValidationChange(true, "")
	return true
}

// GetNumber formats the current value with style; an empty style falls back to
// the configured formatter, then E.164.
func (i *Input) GetNumber(style phone.Style) string {
	if style == "" {
		style = i.formatStyle
	}
	if style == "" {
		style = phone.StyleE164
	}
	return i.format(i.value, style)
}

// GetCountry returns the selected country.
func (i *Input) GetCountry() (country.Country, bool) {
	return i.selected, i.hasCountry
}

// SetCountry selects code. Unknown codes return ErrUnknownCountry and change nothing.
func (i *Input) SetCountry(code string) error {
	c, ok := i.dir.ByCode(code, i.locale)
	if !ok {
		return ErrUnknownCountry
	}
	i.changeCountry(c)
	return nil
}

func (i *Input) changeCountry(c country.Country) {
	i.selected, i.hasCountry = c, true
	if i.picker != nil {
		i.picker.SetSelected(c.Code)
	}
	i.logger.Debug("country changed", slog.String("country", c.Code))
	i.listener.OnCountryChange(c)
}

// OpenPicker shows the country picker. A disabled input, or one without a
// selected country, refuses.
func (i *Input) OpenPicker() error {
	if i.disabled {
		return ErrDisabled
	}
	if !i.hasCountry {
		return ErrUnknownCountry
	}
	i.picker.Open()
	return nil
}

// Picker returns the country picker.
func (i *Input) Picker() *picker.Picker {
	return i.picker
}

// SelectCountry picks code through the picker, as if the user tapped it.
func (i *Input) SelectCountry(code string) error {
	if i.disabled {
		return ErrDisabled
	}
	if _, ok := i.picker.Select(code); !ok {
		return ErrUnknownCountry
	}
	return nil
}

// Parsed parses the current value against the selected country.
func (i *Input) Parsed() phone.Parsed {
	return i.phone.Parse(i.value, i.selected.Code)
}

// Locale returns the configured locale.
func (i *Input) Locale() string {
	return i.locale
}

func (i *Input) displayStyle() phone.Style {
	if i.formatStyle == "" {
		return phone.StyleAsYouType
	}
	return i.formatStyle
}

func (i *Input) format(v string, style phone.Style) string {
	if v == "" {
		return ""
	}
	return i.phone.Format(v, style, i.selected.Code)
}
