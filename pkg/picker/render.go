package picker

import (
	"strings"

	"github.com/dmitrymomot/phoneinput/pkg/country"
	"github.com/dmitrymomot/phoneinput/pkg/flag"
)

// ItemProps is what an ItemRenderer receives for one row.
type ItemProps struct {
	Country      country.Country
	Selected     bool
	ShowFlag     bool
	ShowDialCode bool
	RTL          bool
}

// ItemRenderer renders one country row.
type ItemRenderer interface {
	RenderCountryItem(ItemProps) string
}

// ItemRendererFunc adapts a function to ItemRenderer.
type ItemRendererFunc func(ItemProps) string

func (f ItemRendererFunc) RenderCountryItem(p ItemProps) string { return f(p) }

// TextRenderer renders "flag name dial code", mirrored for right-to-left.
type TextRenderer struct {
	Flag flag.Variant
}

func (r TextRenderer) RenderCountryItem(p ItemProps) string {
	parts := make([]string, 0, 3)
	if p.ShowFlag {
		if f := flag.Render(p.Country.Code, r.Flag); f != "" {
			parts = append(parts, f)
		}
	}
	parts = append(parts, p.Country.Name)
	if p.ShowDialCode && p.Country.DialCode != "" {
		parts = append(parts, p.Country.DialCode)
	}
	if p.RTL {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
	}
	return strings.Join(parts, " ")
}
