package internal

import "github.com/dmitrymomot/phoneinput/pkg/country"

// Listener receives input events. Calls happen synchronously on the goroutine
// that drives the input, so a listener may call back into it.
type Listener interface {
	// OnChange receives the normalized value after every text change.
	OnChange(value string)
	// OnChangeFormatted receives the formatted and raw value after every text change.
	OnChangeFormatted(formatted, raw string)
	// OnCountryChange fires when the selected country changes.
	OnCountryChange(c country.Country)
	// OnValidationChange fires after every validation run. msg is empty when valid.
	OnValidationChange(valid bool, msg string)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) OnChange(string) {}
func (NopListener) OnChangeFormatted(string, string) {}
func (NopListener) OnCountryChange(country.Country) {}
func (NopListener) OnValidationChange(bool, string) {}

// ListenerFuncs adapts optional functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	Change           func(value string)
	ChangeFormatted  func(formatted, raw string)
	CountryChange    func(c country.Country)
	ValidationChange func(valid bool, msg string)
}

func (l ListenerFuncs) OnChange(value string) {
	if l.Change != nil {
		l.Change(value)
	}
}

func (l ListenerFuncs) OnChangeFormatted(formatted, raw string) {
	if l.ChangeFormatted != nil {
		l.ChangeFormatted(formatted, raw)
	}
}

func (l ListenerFuncs) OnCountryChange(c country.Country) {
	if l.CountryChange != nil {
		l.CountryChange(c)
	}
}

func (l ListenerFuncs) OnValidationChange(valid bool, msg string) {
	if l.ValidationChange != nil {
		l.ValidationChange(valid, msg)
	}
}
