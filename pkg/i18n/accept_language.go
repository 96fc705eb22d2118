package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header size handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the best entry of available for an Accept-Language
// header. It returns the first available entry when nothing matches or the
// header is empty or malformed, and "" when available is empty.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, len(available))
	for i, a := range available {
		supported[i] = language.Make(a)
	}

	_, idx, conf := language.NewMatcher(supported).Match(desired...)
	if conf == language.No {
		return available[0]
	}
	return available[idx]
}

// Negotiate resolves an Accept-Language header against the catalog languages.
func (c *Catalog) Negotiate(header string) string {
	return ParseAcceptLanguage(header, c.languages)
}
