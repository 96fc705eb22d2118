package phone

var std = New()

// Default returns the shared Core backed by Phonenumbers.
func Default() *Core {
	return std
}

// Parse parses text using the default Core.
func Parse(text, region string) Parsed {
	return std.Parse(text, region)
}

// Format formats text using the default Core.
func Format(text string, style Style, region string) string {
	return std.Format(text, style, region)
}

// FormatAsYouType formats partial input using the default Core.
func FormatAsYouType(text, region string) string {
	return std.FormatAsYouType(text, region)
}

// IsValid validates text using the default Core.
func IsValid(text, region string) bool {
	return std.IsValid(text, region)
}

// IsPossible checks text length plausibility using the default Core.
func IsPossible(text, region string) bool {
	return std.IsPossible(text, region)
}

// GuessCountry guesses the region of text using the default Core.
func GuessCountry(text string) string {
	return std.GuessCountry(text)
}

// DialCodeFor returns the dial code of region using the default Core.
func DialCodeFor(region string) string {
	return std.DialCodeFor(region)
}
