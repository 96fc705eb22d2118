package theme

import "errors"

var ErrInvalidTheme = errors.New("theme: invalid theme document")
