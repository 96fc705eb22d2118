package country

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Country is a single directory entry.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	DialCode string `json:"dial_code"`
	Flag     string `json:"flag,omitempty"`
}

// Filter keeps countries whose code is in allowed (when non-empty), then drops
// countries whose code is in excluded (when non-empty). Order is preserved.
// With both lists empty the input is returned as is.
func Filter(countries []Country, allowed, excluded []string) []Country {
	if len(allowed) == 0 && len(excluded) == 0 {
		return countries
	}

	allow := codeSet(allowed)
	deny := codeSet(excluded)

	out := make([]Country, 0, len(countries))
	for _, c := range countries {
		if len(allow) > 0 {
			if _, ok := allow[c.Code]; !ok {
				continue
			}
		}
		if _, ok := deny[c.Code]; ok {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortWithPreferred moves countries listed in preferred to the front, in the
// order they appear in preferred. Everything else keeps its relative order.
// An empty preferred list returns the input as is.
func SortWithPreferred(countries []Country, preferred []string) []Country {
	if len(preferred) == 0 {
		return countries
	}

	rank := make(map[string]int, len(preferred))
	for i, code := range preferred {
		code = strings.ToUpper(code)
		if _, seen := rank[code]; !seen {
			rank[code] = i
		}
	}

	out := slices.Clone(countries)
	slices.SortStableFunc(out, func(a, b Country) int {
		ra, aok := rank[a.Code]
		rb, bok := rank[b.Code]
		switch {
		case aok && bok:
			return ra - rb
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Codes returns the ISO codes of countries, in order.
func Codes(countries []Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Code
	}
	return out
}

// DetectRegion returns the explicit region subtag of a BCP 47 locale tag
// ("en-GB" -> "GB"), or "" when the tag has none or does not parse.
func DetectRegion(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return ""
	}
	region, conf := tag.Region()
	if conf != language.Exact || !region.IsCountry() {
		return ""
	}
	return region.String()
}

func codeSet(codes []string) map[string]struct{} {
	if len(codes) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[strings.ToUpper(c)] = struct{}{}
	}
	return set
}
