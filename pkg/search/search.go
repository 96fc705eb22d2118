package search

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/phoneinput/pkg/country"
)

// Scores assigned by Rank.
const (
	ScoreNone       = 0
	ScoreNameInfix  = 100
	ScoreDialCode   = 200
	ScoreExactCode  = 300
	ScoreNamePrefix = 500
	ScoreExactName  = 1000
)

// Match is a country with its rank score.
type Match struct {
	Country country.Country `json:"country"`
	Score   int             `json:"score"`
}

// Search returns the countries matching query, in input order.
func Search(countries []country.Country, query string) []country.Country {
	q, ok := prepare(query)
	if !ok {
		return countries
	}

	fold := cases.Fold()
	out := make([]country.Country, 0, len(countries))
	for _, c := range countries {
		if matches(fold, c, q) {
			out = append(out, c)
		}
	}
	return out
}

// Rank returns the countries matching query ordered by descending score.
func Rank(countries []country.Country, query string) []country.Country {
	if _, ok := prepare(query); !ok {
		return countries
	}

	scored := Score(countries, query)
	out := make([]country.Country, len(scored))
	for i, m := range scored {
		out[i] = m.Country
	}
	return out
}

// Score returns every matching country with its score, best first.
// A blank query yields every country with ScoreNone, in input order.
func Score(countries []country.Country, query string) []Match {
	q, ok := prepare(query)
	if !ok {
		out := make([]Match, len(countries))
		for i, c := range countries {
			out[i] = Match{Country: c}
		}
		return out
	}

	fold := cases.Fold()
	out := make([]Match, 0, len(countries))
	for _, c := range countries {
		if s := score(fold, c, q); s > ScoreNone {
			out = append(out, Match{Country: c, Score: s})
		}
	}

	slices.SortStableFunc(out, func(a, b Match) int {
		return b.Score - a.Score
	})
	return out
}

func prepare(query string) (string, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return "", false
	}
	return cases.Fold().String(q), true
}

func matches(fold cases.Caser, c country.Country, q string) bool {
	if strings.Contains(fold.String(c.Name), q) {
		return true
	}
	if strings.Contains(fold.String(c.Code), q) {
		return true
	}
	return strings.Contains(strings.TrimPrefix(c.DialCode, "+"), q) ||
		strings.Contains(c.DialCode, q)
}

func score(fold cases.Caser, c country.Country, q string) int {
	name := fold.String(c.Name)
	switch {
	case name == q:
		return ScoreExactName
	case strings.HasPrefix(name, q):
		return ScoreNamePrefix
	case fold.String(c.Code) == q:
		return ScoreExactCode
	case strings.Contains(c.DialCode, q):
		return ScoreDialCode
	case strings.Contains(name, q):
		return ScoreNameInfix
	default:
		return ScoreNone
	}
}
