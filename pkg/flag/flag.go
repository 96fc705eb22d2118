// Package flag renders country flags for ISO 3166-1 alpha-2 codes.
package flag

import "strings"

// Variant selects how a flag is rendered.
type Variant string

const (
	VariantEmoji Variant = "emoji"
	VariantCode  Variant = "code"
	VariantNone  Variant = "none"
)

const regionalIndicatorA = 0x1F1E6

// Emoji returns the flag emoji for a two-letter region code, built from
// regional indicator symbols. Anything that is not two ASCII letters yields "".
func Emoji(code string) string {
	if len(code) != 2 {
		return ""
	}
	code = strings.ToUpper(code)

	runes := make([]rune, 0, 2)
	for i := 0; i < 2; i++ {
		c := code[i]
		if c < 'A' || c > 'Z' {
			return ""
		}
		runes = append(runes, rune(regionalIndicatorA+int(c-'A')))
	}
	return string(runes)
}

// Render renders code with variant. Unknown variants behave like VariantEmoji.
func Render(code string, v Variant) string {
	switch v {
	case VariantNone:
		return ""
	case VariantCode:
		return strings.ToUpper(code)
	default:
		return Emoji(code)
	}
}
