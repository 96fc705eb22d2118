// Package phoneinput is a headless phone number input with country selection,
// localized labels and formatting.
//
// The package holds no UI toolkit code. An [Input] keeps the state a phone
// field needs (value, selected country, focus, validation result) and exposes
// a [View] render model. The embedding UI draws the view and forwards user
// actions as method calls.
//
// # Quick Start
//
//	in := phoneinput.New(
//	    phoneinput.WithDefaultCountry("GB"),
//	    phoneinput.WithPreferredCountries("GB", "US"),
//	    phoneinput.WithValidation(phoneinput.ValidateOnBlur, true, nil),
//	)
//
//	in.Focus()
//	in.ChangeText("020 7183 8750")
//	in.Blur()
//
//	view := in.View()          // formatted value, flag, dial code, error, colors
//	in.GetNumber("")           // "+442071838750"
//
// # Value Ownership
//
// By default the input owns its value. With [WithValue] the caller owns it:
// the input reports typed text through the [Listener] and displays whatever the
// caller pushes back with SetValue.
//
//	var in *phoneinput.Input
//	in = phoneinput.New(
//	    phoneinput.WithValue(stored),
//	    phoneinput.WithListener(phoneinput.ListenerFuncs{
//	        Change: func(v string) { stored = v; _ = in.SetValue(v) },
//	    }),
//	)
//
// # Countries
//
// Countries come from a [country.Directory]: names are localized, lists are
// sorted by the locale's collation. Typing an international number ("+44...")
// switches the selected country; national input never does. The picker lists
// preferred countries first and supports search:
//
//	in.OpenPicker()
//	in.Picker().SetQuery("king")
//	in.SelectCountry("GB")
//
// # Validation
//
// Validation checks, in order: required and empty, empty (valid), the custom
// [Validator], then number validity for the selected country. Messages come
// from the label catalog for the input locale. An external error set with
// [WithError] or SetError wins over validation errors in the view.
//
// # Customization
//
// A [Renderer] draws the flag, chevron and picker rows; [theme.Theme] supplies
// colors and styles; visibility toggles hide individual slots.
//
// # Packages
//
//   - pkg/phone: normalization, parsing, formatting and validation
//   - pkg/country: locale-aware country directory
//   - pkg/search: country search and ranking
//   - pkg/i18n: UI labels and right-to-left detection
//   - pkg/picker: headless country picker
//   - pkg/theme: design tokens and styles
//   - pkg/flag: flag rendering
//   - pkg/httpapi: JSON lookup service over the packages above
package phoneinput
