package internal

import "errors"

var (
	// ErrInvalidNumber is returned by a Validator to reject a value with the
	// localized "invalid phone number" message.
	ErrInvalidNumber = errors.New("phoneinput: invalid phone number")

	// ErrInternallyOwned is returned by SetValue when the input owns its value.
	ErrInternallyOwned = errors.New("phoneinput: value is internally owned")

	// ErrUnknownCountry is returned when a country code is not in the directory.
	ErrUnknownCountry = errors.New("phoneinput: unknown country")

	// ErrDisabled is returned by operations a disabled input refuses.
	ErrDisabled = errors.New("phoneinput: input is disabled")
)
