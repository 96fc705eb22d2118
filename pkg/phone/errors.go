package phone

import "errors"

// Sentinel errors reported by Metadata implementations.
// They never escape the Core API; they are logged and degraded to safe values.
var (
	ErrParse         = errors.New("phone: failed to parse number")
	ErrUnknownRegion = errors.New("phone: unknown region")
	ErrUnknownStyle  = errors.New("phone: unknown format style")
	ErrPanic         = errors.New("phone: metadata panicked")
)
