package internal

import (
	"github.com/dmitrymomot/phoneinput/pkg/flag"
	"github.com/dmitrymomot/phoneinput/pkg/picker"
)

// FlagProps describes the flag slot.
type FlagProps struct {
	CountryCode string
	Size        int
}

// ChevronProps describes the picker chevron slot.
type ChevronProps struct {
	Color string
	Size  int
}

// Renderer draws the customizable slots of the input and its picker.
type Renderer interface {
	picker.ItemRenderer
	RenderFlag(FlagProps) string
	RenderChevron(ChevronProps) string
}

// DefaultChevron is the glyph drawn by DefaultRenderer.
const DefaultChevron = "▾"

// DefaultRenderer draws flags with a flag.Variant and a text chevron.
type DefaultRenderer struct {
	picker.TextRenderer
}

// NewDefaultRenderer returns a DefaultRenderer using variant for every flag.
func NewDefaultRenderer(variant flag.Variant) DefaultRenderer {
	return DefaultRenderer{TextRenderer: picker.TextRenderer{Flag: variant}}
}

func (r DefaultRenderer) RenderFlag(p FlagProps) string {
	return flag.Render(p.CountryCode, r.Flag)
}

func (DefaultRenderer) RenderChevron(ChevronProps) string {
	return DefaultChevron
}
