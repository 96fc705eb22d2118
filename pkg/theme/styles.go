package theme

// Style is a flat set of layout and text properties. Zero fields are unset.
type Style struct {
	FlexDirection     string  `yaml:"flex_direction,omitempty" json:"flex_direction,omitempty"`
	AlignItems        string  `yaml:"align_items,omitempty" json:"align_items,omitempty"`
	TextAlign         string  `yaml:"text_align,omitempty" json:"text_align,omitempty"`
	Flex              int     `yaml:"flex,omitempty" json:"flex,omitempty"`
	Height            int     `yaml:"height,omitempty" json:"height,omitempty"`
	MinHeight         int     `yaml:"min_height,omitempty" json:"min_height,omitempty"`
	BorderWidth       int     `yaml:"border_width,omitempty" json:"border_width,omitempty"`
	BorderBottomWidth int     `yaml:"border_bottom_width,omitempty" json:"border_bottom_width,omitempty"`
	BorderRadius      int     `yaml:"border_radius,omitempty" json:"border_radius,omitempty"`
	PaddingHorizontal int     `yaml:"padding_horizontal,omitempty" json:"padding_horizontal,omitempty"`
	PaddingVertical   int     `yaml:"padding_vertical,omitempty" json:"padding_vertical,omitempty"`
	MarginLeft        int     `yaml:"margin_left,omitempty" json:"margin_left,omitempty"`
	MarginRight       int     `yaml:"margin_right,omitempty" json:"margin_right,omitempty"`
	MarginTop         int     `yaml:"margin_top,omitempty" json:"margin_top,omitempty"`
	FontSize          int     `yaml:"font_size,omitempty" json:"font_size,omitempty"`
	FontWeight        string  `yaml:"font_weight,omitempty" json:"font_weight,omitempty"`
	Color             string  `yaml:"color,omitempty" json:"color,omitempty"`
	BackgroundColor   string  `yaml:"background_color,omitempty" json:"background_color,omitempty"`
	BorderColor       string  `yaml:"border_color,omitempty" json:"border_color,omitempty"`
	BorderBottomColor string  `yaml:"border_bottom_color,omitempty" json:"border_bottom_color,omitempty"`
	Opacity           float64 `yaml:"opacity,omitempty" json:"opacity,omitempty"`
}

// Merge returns s with every non-zero field of o applied on top.
func (s Style) Merge(o Style) Style {
	return Style{
		FlexDirection:     pick(s.FlexDirection, o.FlexDirection),
		AlignItems:        pick(s.AlignItems, o.AlignItems),
		TextAlign:         pick(s.TextAlign, o.TextAlign),
		Flex:              pick(s.Flex, o.Flex),
		Height:            pick(s.Height, o.Height),
		MinHeight:         pick(s.MinHeight, o.MinHeight),
		BorderWidth:       pick(s.BorderWidth, o.BorderWidth),
		BorderBottomWidth: pick(s.BorderBottomWidth, o.BorderBottomWidth),
		BorderRadius:      pick(s.BorderRadius, o.BorderRadius),
		PaddingHorizontal: pick(s.PaddingHorizontal, o.PaddingHorizontal),
		PaddingVertical:   pick(s.PaddingVertical, o.PaddingVertical),
		MarginLeft:        pick(s.MarginLeft, o.MarginLeft),
		MarginRight:       pick(s.MarginRight, o.MarginRight),
		MarginTop:         pick(s.MarginTop, o.MarginTop),
		FontSize:          pick(s.FontSize, o.FontSize),
		FontWeight:        pick(s.FontWeight, o.FontWeight),
		Color:             pick(s.Color, o.Color),
		BackgroundColor:   pick(s.BackgroundColor, o.BackgroundColor),
		BorderColor:       pick(s.BorderColor, o.BorderColor),
		BorderBottomColor: pick(s.BorderBottomColor, o.BorderBottomColor),
		Opacity:           pick(s.Opacity, o.Opacity),
	}
}

// Styles are the per-slot styles of the input and its country picker.
type Styles struct {
	Container           Style `yaml:"container" json:"container"`
	Input               Style `yaml:"input" json:"input"`
	FlagContainer       Style `yaml:"flag_container" json:"flag_container"`
	ChevronIcon         Style `yaml:"chevron_icon" json:"chevron_icon"`
	DialCodeText        Style `yaml:"dial_code_text" json:"dial_code_text"`
	CountryCodeText     Style `yaml:"country_code_text" json:"country_code_text"`
	ErrorText           Style `yaml:"error_text" json:"error_text"`
	Modal               Style `yaml:"modal" json:"modal"`
	ModalHeader         Style `yaml:"modal_header" json:"modal_header"`
	SearchInput         Style `yaml:"search_input" json:"search_input"`
	CountryItem         Style `yaml:"country_item" json:"country_item"`
	CountryItemText     Style `yaml:"country_item_text" json:"country_item_text"`
	CountryItemDialCode Style `yaml:"country_item_dial_code" json:"country_item_dial_code"`
	Separator           Style `yaml:"separator" json:"separator"`
}

// DefaultStyles derives the stock styles from t.
func DefaultStyles(t Tokens) Styles {
	dialCode := Style{
		FontSize:   t.FontSize.MD,
		Color:      t.Colors.Text,
		MarginLeft: t.Spacing.XS,
		FontWeight: t.FontWeight.Medium,
	}

	return Styles{
		Container: Style{
			FlexDirection:     "row",
			AlignItems:        "center",
			BorderWidth:       1,
			BorderColor:       t.Colors.Border,
			BorderRadius:      t.Radius.MD,
			PaddingHorizontal: t.Spacing.MD,
			PaddingVertical:   t.Spacing.SM,
			BackgroundColor:   t.Colors.Background,
			MinHeight:         48,
		},
		Input: Style{
			Flex:     1,
			FontSize: t.FontSize.MD,
			Color:    t.Colors.Text,
		},
		FlagContainer: Style{
			MarginRight:   t.Spacing.SM,
			FlexDirection: "row",
			AlignItems:    "center",
		},
		ChevronIcon:     Style{MarginLeft: t.Spacing.XS},
		DialCodeText:    dialCode,
		CountryCodeText: dialCode,
		ErrorText: Style{
			FontSize:  t.FontSize.SM,
			Color:     t.Colors.Error,
			MarginTop: t.Spacing.XS,
		},
		Modal: Style{
			Flex:            1,
			BackgroundColor: t.Colors.Background,
		},
		ModalHeader: Style{
			PaddingHorizontal: t.Spacing.LG,
			PaddingVertical:   t.Spacing.MD,
			BorderBottomWidth: 1,
			BorderBottomColor: t.Colors.Border,
		},
		SearchInput: Style{
			FontSize:          t.FontSize.MD,
			Color:             t.Colors.Text,
			BackgroundColor:   t.Colors.Surface,
			BorderRadius:      t.Radius.MD,
			PaddingHorizontal: t.Spacing.MD,
			PaddingVertical:   t.Spacing.SM,
			MinHeight:         40,
		},
		CountryItem: Style{
			FlexDirection:     "row",
			AlignItems:        "center",
			PaddingHorizontal: t.Spacing.LG,
			PaddingVertical:   t.Spacing.MD,
			MinHeight:         56,
		},
		CountryItemText: Style{
			Flex:       1,
			FontSize:   t.FontSize.MD,
			Color:      t.Colors.Text,
			MarginLeft: t.Spacing.MD,
		},
		CountryItemDialCode: Style{
			FontSize:   t.FontSize.MD,
			Color:      t.Colors.TextSecondary,
			MarginLeft: t.Spacing.SM,
		},
		Separator: Style{
			Height:          1,
			BackgroundColor: t.Colors.Border,
			MarginLeft:      t.Spacing.LG,
		},
	}
}

// Merge returns s with every non-zero field of o applied on top, slot by slot.
func (s Styles) Merge(o Styles) Styles {
	return Styles{
		Container:           s.Container.Merge(o.Container),
		Input:               s.Input.Merge(o.Input),
		FlagContainer:       s.FlagContainer.Merge(o.FlagContainer),
		ChevronIcon:         s.ChevronIcon.Merge(o.ChevronIcon),
		DialCodeText:        s.DialCodeText.Merge(o.DialCodeText),
		CountryCodeText:     s.CountryCodeText.Merge(o.CountryCodeText),
		ErrorText:           s.ErrorText.Merge(o.ErrorText),
		Modal:               s.Modal.Merge(o.Modal),
		ModalHeader:         s.ModalHeader.Merge(o.ModalHeader),
		SearchInput:         s.SearchInput.Merge(o.SearchInput),
		CountryItem:         s.CountryItem.Merge(o.CountryItem),
		CountryItemText:     s.CountryItemText.Merge(o.CountryItemText),
		CountryItemDialCode: s.CountryItemDialCode.Merge(o.CountryItemDialCode),
		Separator:           s.Separator.Merge(o.Separator),
	}
}
