package picker

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/flag"
	"github.com/dmitrymomot/phoneinput/pkg/i18n"
	"github.com/dmitrymomot/phoneinput/pkg/logger"
	"github.com/dmitrymomot/phoneinput/pkg/search"
)

// Item is one row of the picker list.
type Item struct {
	Country  country.Country `json:"country"`
	Selected bool            `json:"selected"`
	Text     string          `json:"text"`
}

// View is the render model of the picker.
type View struct {
	Visible           bool   `json:"visible"`
	Title             string `json:"title"`
	ShowSearch        bool   `json:"show_search"`
	SearchPlaceholder string `json:"search_placeholder"`
	Query             string `json:"query"`
	Items             []Item `json:"items"`
	EmptyText         string `json:"empty_text,omitempty"`
	RTL               bool   `json:"rtl"`
}

// Picker is the state of a country picker.
type Picker struct {
	countries         []country.Country
	preferred         []string
	query             string
	selected          string
	visible           bool
	showSearch        bool
	ranked            bool
	searchPlaceholder string
	locale            string
	catalog           *i18n.Catalog
	renderer          ItemRenderer
	onSelect          func(country.Country)
	onClose           func()
	logger            *slog.Logger
}

// Option configures a Picker.
type Option func(*Picker)

// WithPreferred moves the given codes to the top of the list, in that order.
func WithPreferred(codes ...string) Option {
	return func(p *Picker) {
		p.preferred = codes
	}
}

// WithSearch toggles the search field. Enabled by default.
func WithSearch(enabled bool) Option {
	return func(p *Picker) {
		p.showSearch = enabled
	}
}

// WithRanking orders search results by relevance instead of list order.
func WithRanking() Option {
	return func(p *Picker) {
		p.ranked = true
	}
}

// WithSearchPlaceholder overrides the localized search placeholder.
func WithSearchPlaceholder(text string) Option {
	return func(p *Picker) {
		p.searchPlaceholder = text
	}
}

// WithLocale sets the locale for labels and layout direction. Defaults to "en".
func WithLocale(locale string) Option {
	return func(p *Picker) {
		if locale != "" {
			p.locale = locale
		}
	}
}

// WithCatalog sets the label catalog. Defaults to i18n.Default().
func WithCatalog(c *i18n.Catalog) Option {
	return func(p *Picker) {
		if c != nil {
			p.catalog = c
		}
	}
}

// WithSelected marks code as the current selection.
func WithSelected(code string) Option {
	return func(p *Picker) {
		p.selected = strings.ToUpper(code)
	}
}

// WithItemRenderer sets the row renderer. Defaults to TextRenderer with emoji flags.
func WithItemRenderer(r ItemRenderer) Option {
	return func(p *Picker) {
		if r != nil {
			p.renderer = r
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Picker) {
		if l != nil {
			p.logger = l
		}
	}
}

// OnSelect registers the selection callback.
func OnSelect(fn func(country.Country)) Option {
	return func(p *Picker) {
		p.onSelect = fn
	}
}

// OnClose registers a callback run whenever the picker closes.
func OnClose(fn func()) Option {
	return func(p *Picker) {
		p.onClose = fn
	}
}

// New creates a closed picker over countries.
func New(countries []country.Country, opts ...Option) *Picker {
	p := &Picker{
		showSearch: true,
		locale:     i18n.DefaultLang,
		renderer:   TextRenderer{Flag: flag.VariantEmoji},
		logger:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.catalog == nil {
		p.catalog = i18n.Default()
	}
	p.countries = country.SortWithPreferred(countries, p.preferred)
	return p
}

// Open shows the picker.
func (p *Picker) Open() {
	p.visible = true
}

// Close hides the picker and runs the close callback.
func (p *Picker) Close() {
	p.visible = false
	if p.onClose != nil {
		p.onClose()
	}
}

// Visible reports whether the picker is shown.
func (p *Picker) Visible() bool {
	return p.visible
}

// SetQuery updates the search query. Ignored when search is disabled.
func (p *Picker) SetQuery(q string) {
	if !p.showSearch {
		return
	}
	p.query = q
}

// Query returns the current search query.
func (p *Picker) Query() string {
	return p.query
}

// Selected returns the selected code, or "".
func (p *Picker) Selected() string {
	return p.selected
}

// SetSelected changes the highlighted code without firing callbacks.
func (p *Picker) SetSelected(code string) {
	p.selected = strings.ToUpper(code)
}

// SetCountries replaces the country list, keeping the preferred order.
func (p *Picker) SetCountries(countries []country.Country) {
	p.countries = country.SortWithPreferred(countries, p.preferred)
}

// Countries returns the full list in display order, ignoring the query.
func (p *Picker) Countries() []country.Country {
	return slices.Clone(p.countries)
}

// Items returns the rows matching the current query.
func (p *Picker) Items() []Item {
	var list []country.Country
	if p.ranked {
		list = search.Rank(p.countries, p.query)
	} else {
		list = search.Search(p.countries, p.query)
	}

	rtl := p.RTL()
	items := make([]Item, len(list))
	for i, c := range list {
		selected := c.Code == p.selected
		items[i] = Item{
			Country:  c,
			Selected: selected,
			Text: p.renderer.RenderCountryItem(ItemProps{
				Country:      c,
				Selected:     selected,
				ShowFlag:     true,
				ShowDialCode: true,
				RTL:          rtl,
			}),
		}
	}
	return items
}

// Select picks code from the full list: it runs the select callback, clears
// the query and closes. Unknown codes change nothing.
func (p *Picker) Select(code string) (country.Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range p.countries {
		if c.Code != code {
			continue
		}
		p.selected = c.Code
		p.logger.Debug("country selected", slog.String("code", c.Code))
		if p.onSelect != nil {
			p.onSelect(c)
		}
		p.query = ""
		p.Close()
		return c, true
	}
	p.logger.Debug("country not in picker", slog.String("code", code))
	return country.Country{}, false
}

// Strings returns the labels for the picker locale.
func (p *Picker) Strings() i18n.Strings {
	return p.catalog.Strings(p.locale)
}

// RTL reports whether the picker locale is right to left.
func (p *Picker) RTL() bool {
	return p.catalog.IsRTL(p.locale)
}

// SearchPlaceholder returns the explicit placeholder or the localized one.
func (p *Picker) SearchPlaceholder() string {
	if p.searchPlaceholder != "" {
		return p.searchPlaceholder
	}
	return p.Strings().SearchPlaceholder
}

// View returns the render model.
func (p *Picker) View() View {
	items := p.Items()
	strs := p.Strings()

	v := View{
		Visible:           p.visible,
		Title:             strs.SelectCountry,
		ShowSearch:        p.showSearch,
		SearchPlaceholder: p.SearchPlaceholder(),
		Query:             p.query,
		Items:             items,
		RTL:               p.RTL(),
	}
	if len(items) == 0 {
		v.EmptyText = strs.NoResultsFound
	}
	return v
}
