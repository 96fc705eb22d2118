// Package theme holds the design tokens and component styles of the phone input.
//
// A [Theme] pairs [Tokens] (spacing, radius, colors, font sizes and weights)
// with [Styles] derived from them. [Default] returns the stock theme; [New]
// builds one from token and style overrides, deriving styles from the final
// tokens before style overrides apply:
//
//	th := theme.New(
//		theme.WithTokens(theme.Tokens{Colors: theme.Colors{Primary: "#0A84FF"}}),
//		theme.WithStyles(theme.Styles{Container: theme.Style{MinHeight: 56}}),
//	)
//
// Zero values in an override mean "keep the base value".
//
// # Context
//
// A theme travels through a request or render pass in a context:
//
//	ctx = theme.WithContext(ctx, th)
//	th = theme.FromContext(ctx) // Default() when none is set
//
// # Files
//
// [LoadYAML] reads overrides in the same shape as the Go types:
//
//	tokens:
//	  colors:
//	    primary: "#0A84FF"
//	styles:
//	  container:
//	    min_height: 56
package theme
