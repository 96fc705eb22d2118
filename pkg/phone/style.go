package phone

// Style selects how a number is rendered.
type Style string

const (
	StyleAsYouType     Style = "asYouType"
	StyleE164          Style = "e164"
	StyleInternational Style = "international"
	StyleNational      Style = "national"
	StyleNone          Style = "none"
)

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	switch s {
	case StyleAsYouType, StyleE164, StyleInternational, StyleNational, StyleNone:
		return true
	}
	return false
}

// ParseStyle converts a user supplied string into a Style.
// Unknown values return false.
func ParseStyle(s string) (Style, bool) {
	style := Style(s)
	return style, style.Valid()
}
