// Package phone normalizes raw phone input and delegates parsing, formatting and
// validation to a phone-number metadata capability.
//
// The package owns none of the numbering rules. Every operation that needs
// metadata goes through the [Metadata] interface; the default implementation is
// backed by github.com/nyaruka/phonenumbers. Failures inside the capability are
// never returned to the caller: parse failures yield a [Parsed] value with
// IsValid and IsPossible set to false, and format failures return the input text
// unchanged.
//
// # Basic Usage
//
//	phone.Normalize("+1 (415) 555-2671")             // "+14155552671"
//	phone.IsValid("+14155552671", "US")              // true
//	phone.Format("+14155552671", phone.StyleNational, "US")
//	// Output: "(415) 555-2671"
//	phone.GuessCountry("+442071838750")              // "GB"
//	phone.DialCodeFor("AE")                          // "+971"
//
// # Custom Metadata
//
// Any library that can parse a number into a structured result and format it in
// a given style satisfies [Metadata]:
//
//	core := phone.New(
//		phone.WithMetadata(myMetadata),
//		phone.WithLogger(log),
//	)
//	parsed := core.Parse("020 7183 8750", "GB")
//
// # Format Styles
//
//   - [StyleAsYouType]: incremental formatting of partial input
//   - [StyleE164]: "+14155552671"
//   - [StyleInternational]: "+1 415-555-2671"
//   - [StyleNational]: "(415) 555-2671"
//   - [StyleNone]: input returned as is
package phone
