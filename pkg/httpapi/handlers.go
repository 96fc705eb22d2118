package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/flag"
	"github.com/dmitrymomot/phoneinput/pkg/i18n"
	"github.com/dmitrymomot/phoneinput/pkg/logger"
	"github.com/dmitrymomot/phoneinput/pkg/phone"
	"github.com/dmitrymomot/phoneinput/pkg/search"
)

// CountriesResponse is the body of the country list and search endpoints.
type CountriesResponse struct {
	Locale    string            `json:"locale"`
	Query     string            `json:"query,omitempty"`
	Count     int               `json:"count"`
	Countries []country.Country `json:"countries"`
}

// FormatResponse is the body of /v1/phone/format.
type FormatResponse struct {
	Number    string      `json:"number"`
	Region    string      `json:"region,omitempty"`
	Style     phone.Style `json:"style"`
	Formatted string      `json:"formatted"`
}

// NormalizeResponse is the body of /v1/phone/normalize.
type NormalizeResponse struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
}

// StringsResponse is the body of /v1/strings.
type StringsResponse struct {
	Locale   string       `json:"locale"`
	Language string       `json:"language"`
	RTL      bool         `json:"rtl"`
	Strings  i18n.Strings `json:"strings"`
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	locale := logger.Locale(r.Context())

	list := s.dir.List(locale)
	list = country.Filter(list, listParam(q["allowed"]), listParam(q["excluded"]))
	list = country.SortWithPreferred(list, listParam(q["preferred"]))
	if boolParam(q.Get("flags")) {
		withFlags(list)
	}

	writeJSON(w, http.StatusOK, &CountriesResponse{
		Locale:    locale,
		Count:     len(list),
		Countries: list,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	locale := logger.Locale(r.Context())
	query := q.Get("q")

	list := s.dir.List(locale)
	list = country.Filter(list, listParam(q["allowed"]), listParam(q["excluded"]))
	if boolParam(q.Get("ranked")) {
		list = search.Rank(list, query)
	} else {
		list = search.Search(list, query)
	}
	if boolParam(q.Get("flags")) {
		withFlags(list)
	}

	writeJSON(w, http.StatusOK, &CountriesResponse{
		Locale:    locale,
		Query:     query,
		Count:     len(list),
		Countries: list,
	})
}

func (s *Server) handleCountry(w http.ResponseWriter, r *http.Request) {
	c, ok := s.dir.ByCode(chi.URLParam(r, "code"), logger.Locale(r.Context()))
	if !ok {
		s.metrics.LookupMisses.WithLabelValues("code").Inc()
		writeError(w, r, errNotFound(ErrCountryNotFound))
		return
	}
	if boolParam(r.URL.Query().Get("flags")) {
		c.Flag = flag.Emoji(c.Code)
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDialCode(w http.ResponseWriter, r *http.Request) {
	c, ok := s.dir.ByDialCode(chi.URLParam(r, "dialCode"), logger.Locale(r.Context()))
	if !ok {
		s.metrics.LookupMisses.WithLabelValues("dial_code").Inc()
		writeError(w, r, errNotFound(ErrCountryNotFound))
		return
	}
	if boolParam(r.URL.Query().Get("flags")) {
		c.Flag = flag.Emoji(c.Code)
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.phone.Parse(q.Get("number"), s.region(q.Get("region"))))
}

// handleFormat renders a number. An empty or unknown style means E.164.
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	number := q.Get("number")
	region := s.region(q.Get("region"))

	style, ok := phone.ParseStyle(q.Get("style"))
	if !ok {
		style = phone.StyleE164
	}

	writeJSON(w, http.StatusOK, &FormatResponse{
		Number:    number,
		Region:    region,
		Style:     style,
		Formatted: s.phone.Format(number, style, region),
	})
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	writeJSON(w, http.StatusOK, &NormalizeResponse{
		Text:       text,
		Normalized: phone.Normalize(text),
	})
}

func (s *Server) handleStrings(w http.ResponseWriter, r *http.Request) {
	locale := logger.Locale(r.Context())
	writeJSON(w, http.StatusOK, &StringsResponse{
		Locale:   locale,
		Language: i18n.Language(locale),
		RTL:      s.catalog.IsRTL(locale),
		Strings:  s.catalog.Strings(locale),
	})
}

func withFlags(list []country.Country) {
	for i := range list {
		if list[i].Flag == "" {
			list[i].Flag = flag.Emoji(list[i].Code)
		}
	}
}

// listParam accepts both repeated and comma separated values.
func listParam(values []string) []string {
	var out []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func boolParam(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

func (s *Server) region(v string) string {
	if v = strings.ToUpper(strings.TrimSpace(v)); v != "" {
		return v
	}
	return s.defaultRegion
}
