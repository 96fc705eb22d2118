// Package search filters and ranks country lists against a free-text query.
//
// Matching is case-insensitive (Unicode case folding) on the display name, the
// ISO code and the dial code. The query is trimmed; a blank query returns the
// input unchanged from both [Search] and [Rank].
//
// # Filtering
//
// [Search] keeps input order. A country matches when its name or code contains
// the query, or when its dial code, with or without the leading "+", contains it:
//
//	search.Search(countries, "united") // United Arab Emirates, United Kingdom, ...
//	search.Search(countries, "44")     // United Kingdom, Guernsey, ...
//
// # Ranking
//
// [Rank] scores each country by the first rule that applies and drops the rest:
//
//	ScoreExactName  1000  name equals the query
//	ScoreNamePrefix  500  name starts with the query
//	ScoreExactCode   300  ISO code equals the query
//	ScoreDialCode    200  dial code contains the query
//	ScoreNameInfix   100  name contains the query
//
// Higher scores come first; equal scores keep input order.
package search
