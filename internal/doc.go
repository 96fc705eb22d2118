// Package internal implements the headless phone input behind the root
// phoneinput package.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/phoneinput" instead, which re-exports the public API.
//
// # Core Types
//
//   - Input: value ownership, country selection, formatting, validation and the render model
//   - Option: functional options consumed by New
//   - Listener: change, formatted change, country change and validation events
//   - Renderer: flag, chevron and picker row slots
//   - View: what an embedding UI draws
//
// # Value Ownership
//
// Ownership is fixed at construction. WithValue makes the caller the owner:
// ChangeText reports the normalized text through the Listener but leaves the
// value alone until the caller pushes it back with SetValue. Without WithValue
// the input owns its value and ChangeText stores it.
//
// # Lifecycle
//
// The focus state moves pristine → focused → blurred. Validation runs on every
// ChangeText (ValidateOnChange), on Blur (ValidateOnBlur) or only through
// Validate (ValidateManual).
//
// # Country Detection
//
// Typing a value that starts with "+" guesses its country and selects it when
// it differs from the current one and passes the allowed/excluded filters.
// National-format input never changes the country.
package internal
