package picker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/flag"
	"github.com/dmitrymomot/phoneinput/pkg/picker"
)

func countries() []country.Country {
	return []country.Country{
		{Code: "CA", Name: "Canada", DialCode: "+1"},
		{Code: "DE", Name: "Germany", DialCode: "+49"},
		{Code: "AE", Name: "United Arab Emirates", DialCode: "+971"},
		{Code: "GB", Name: "United Kingdom", DialCode: "+44"},
		{Code: "US", Name: "United States", DialCode: "+1"},
	}
}

func codes(items []picker.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Country.Code
	}
	return out
}

func TestPicker_Items(t *testing.T) {
	t.Parallel()

	t.Run("preferred first", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries(), picker.WithPreferred("US", "GB"))
		assert.Equal(t, []string{"US", "GB", "CA", "DE", "AE"}, codes(p.Items()))
	})

	t.Run("query filters preferred-sorted list", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries(), picker.WithPreferred("US"))
		p.SetQuery("united")
		assert.Equal(t, []string{"US", "AE", "GB"}, codes(p.Items()))
	})

	t.Run("ranked query", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries(), picker.WithRanking())
		p.SetQuery("germany")
		assert.Equal(t, []string{"DE"}, codes(p.Items()))

		p.SetQuery("1")
		assert.Equal(t, []string{"CA", "AE", "US"}, codes(p.Items()))
	})

	t.Run("marks selected", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries(), picker.WithSelected("de"))
		for _, it := range p.Items() {
			assert.Equal(t, it.Country.Code == "DE", it.Selected)
		}
	})

	t.Run("query ignored without search", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries(), picker.WithSearch(false))
		p.SetQuery("germany")
		assert.Empty(t, p.Query())
		assert.Len(t, p.Items(), 5)
	})

	t.Run("default item text", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries()[:1])
		assert.Equal(t, "🇨🇦 Canada +1", p.Items()[0].Text)
	})

	t.Run("custom renderer", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries()[:1], picker.WithItemRenderer(picker.ItemRendererFunc(func(ip picker.ItemProps) string {
			return ip.Country.Code
		})))
		assert.Equal(t, "CA", p.Items()[0].Text)
	})
}

func TestPicker_Select(t *testing.T) {
	t.Parallel()

	t.Run("selects, clears query and closes", func(t *testing.T) {
		t.Parallel()

		var got country.Country
		closed := 0
		p := picker.New(countries(),
			picker.OnSelect(func(c country.Country) { got = c }),
			picker.OnClose(func() { closed++ }),
		)
		p.Open()
		p.SetQuery("king")
		require.True(t, p.Visible())

		c, ok := p.Select("gb")
		require.True(t, ok)
		assert.Equal(t, "GB", c.Code)
		assert.Equal(t, c, got)
		assert.Equal(t, "GB", p.Selected())
		assert.Empty(t, p.Query())
		assert.False(t, p.Visible())
		assert.Equal(t, 1, closed)
	})

	t.Run("unknown code changes nothing", func(t *testing.T) {
		t.Parallel()

		called := false
		p := picker.New(countries(), picker.WithSelected("US"), picker.OnSelect(func(country.Country) { called = true }))
		p.Open()
		p.SetQuery("x")

		_, ok := p.Select("XX")
		assert.False(t, ok)
		assert.False(t, called)
		assert.Equal(t, "US", p.Selected())
		assert.Equal(t, "x", p.Query())
		assert.True(t, p.Visible())
	})
}

func TestPicker_View(t *testing.T) {
	t.Parallel()

	t.Run("english labels", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries())
		p.Open()
		v := p.View()
		assert.True(t, v.Visible)
		assert.Equal(t, "Select country", v.Title)
		assert.Equal(t, "Search countries...", v.SearchPlaceholder)
		assert.Empty(t, v.EmptyText)
		assert.False(t, v.RTL)
	})

	t.Run("empty result shows no results label", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries())
		p.SetQuery("xyzabc123")
		v := p.View()
		assert.Empty(t, v.Items)
		assert.Equal(t, "No countries found", v.EmptyText)
	})

	t.Run("arabic is right to left", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries()[:1], picker.WithLocale("ar-AE"),
			picker.WithItemRenderer(picker.TextRenderer{Flag: flag.VariantNone}))
		v := p.View()
		assert.True(t, v.RTL)
		assert.Equal(t, "+1 Canada", v.Items[0].Text)
		assert.Equal(t, "البحث عن الدول...", v.SearchPlaceholder)
	})

	t.Run("explicit search placeholder wins", func(t *testing.T) {
		t.Parallel()

		p := picker.New(countries(), picker.WithSearchPlaceholder("Find"))
		assert.Equal(t, "Find", p.View().SearchPlaceholder)
	})
}
