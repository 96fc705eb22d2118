package theme

// Spacing scale in density-independent pixels.
type Spacing struct {
	XS  int `yaml:"xs" json:"xs"`
	SM  int `yaml:"sm" json:"sm"`
	MD  int `yaml:"md" json:"md"`
	LG  int `yaml:"lg" json:"lg"`
	XL  int `yaml:"xl" json:"xl"`
	XXL int `yaml:"xxl" json:"xxl"`
}

// Radius scale.
type Radius struct {
	SM   int `yaml:"sm" json:"sm"`
	MD   int `yaml:"md" json:"md"`
	LG   int `yaml:"lg" json:"lg"`
	XL   int `yaml:"xl" json:"xl"`
	Full int `yaml:"full" json:"full"`
}

// Colors are hex color strings.
type Colors struct {
	Primary       string `yaml:"primary" json:"primary"`
	Secondary     string `yaml:"secondary" json:"secondary"`
	Background    string `yaml:"background" json:"background"`
	Surface       string `yaml:"surface" json:"surface"`
	Border        string `yaml:"border" json:"border"`
	Text          string `yaml:"text" json:"text"`
	TextSecondary string `yaml:"text_secondary" json:"text_secondary"`
	Placeholder   string `yaml:"placeholder" json:"placeholder"`
	Error         string `yaml:"error" json:"error"`
	Success       string `yaml:"success" json:"success"`
	Disabled      string `yaml:"disabled" json:"disabled"`
}

// FontSize scale.
type FontSize struct {
	XS int `yaml:"xs" json:"xs"`
	SM int `yaml:"sm" json:"sm"`
	MD int `yaml:"md" json:"md"`
	LG int `yaml:"lg" json:"lg"`
	XL int `yaml:"xl" json:"xl"`
}

// FontWeight values as CSS-style numeric strings.
type FontWeight struct {
	Regular  string `yaml:"regular" json:"regular"`
	Medium   string `yaml:"medium" json:"medium"`
	Semibold string `yaml:"semibold" json:"semibold"`
	Bold     string `yaml:"bold" json:"bold"`
}

// Tokens is the full design token set.
type Tokens struct {
	Spacing    Spacing    `yaml:"spacing" json:"spacing"`
	Radius     Radius     `yaml:"radius" json:"radius"`
	Colors     Colors     `yaml:"colors" json:"colors"`
	FontSize   FontSize   `yaml:"font_size" json:"font_size"`
	FontWeight FontWeight `yaml:"font_weight" json:"font_weight"`
}

// DefaultTokens returns the stock token set.
func DefaultTokens() Tokens {
	return Tokens{
		Spacing: Spacing{XS: 4, SM: 8, MD: 12, LG: 16, XL: 20, XXL: 24},
		Radius:  Radius{SM: 4, MD: 8, LG: 12, XL: 16, Full: 9999},
		Colors: Colors{
			Primary:       "#007AFF",
			Secondary:     "#5856D6",
			Background:    "#FFFFFF",
			Surface:       "#F2F2F7",
			Border:        "#C6C6C8",
			Text:          "#000000",
			TextSecondary: "#8E8E93",
			Placeholder:   "#C7C7CC",
			Error:         "#FF3B30",
			Success:       "#34C759",
			Disabled:      "#D1D1D6",
		},
		FontSize:   FontSize{XS: 12, SM: 14, MD: 16, LG: 18, XL: 20},
		FontWeight: FontWeight{Regular: "400", Medium: "500", Semibold: "600", Bold: "700"},
	}
}

// Merge returns t with every non-zero field of o applied on top.
func (t Tokens) Merge(o Tokens) Tokens {
	t.Spacing = Spacing{
		XS:  pick(t.Spacing.XS, o.Spacing.XS),
		SM:  pick(t.Spacing.SM, o.Spacing.SM),
		MD:  pick(t.Spacing.MD, o.Spacing.MD),
		LG:  pick(t.Spacing.LG, o.Spacing.LG),
		XL:  pick(t.Spacing.XL, o.Spacing.XL),
		XXL: pick(t.Spacing.XXL, o.Spacing.XXL),
	}
	t.Radius = Radius{
		SM:   pick(t.Radius.SM, o.Radius.SM),
		MD:   pick(t.Radius.MD, o.Radius.MD),
		LG:   pick(t.Radius.LG, o.Radius.LG),
		XL:   pick(t.Radius.XL, o.Radius.XL),
		Full: pick(t.Radius.Full, o.Radius.Full),
	}
	t.Colors = Colors{
		Primary:       pick(t.Colors.Primary, o.Colors.Primary),
		Secondary:     pick(t.Colors.Secondary, o.Colors.Secondary),
		Background:    pick(t.Colors.Background, o.Colors.Background),
		Surface:       pick(t.Colors.Surface, o.Colors.Surface),
		Border:        pick(t.Colors.Border, o.Colors.Border),
		Text:          pick(t.Colors.Text, o.Colors.Text),
		TextSecondary: pick(t.Colors.TextSecondary, o.Colors.TextSecondary),
		Placeholder:   pick(t.Colors.Placeholder, o.Colors.Placeholder),
		Error:         pick(t.Colors.Error, o.Colors.Error),
		Success:       pick(t.Colors.Success, o.Colors.Success),
		Disabled:      pick(t.Colors.Disabled, o.Colors.Disabled),
	}
	t.FontSize = FontSize{
		XS: pick(t.FontSize.XS, o.FontSize.XS),
		SM: pick(t.FontSize.SM, o.FontSize.SM),
		MD: pick(t.FontSize.MD, o.FontSize.MD),
		LG: pick(t.FontSize.LG, o.FontSize.LG),
		XL: pick(t.FontSize.XL, o.FontSize.XL),
	}
	t.FontWeight = FontWeight{
		Regular:  pick(t.FontWeight.Regular, o.FontWeight.Regular),
		Medium:   pick(t.FontWeight.Medium, o.FontWeight.Medium),
		Semibold: pick(t.FontWeight.Semibold, o.FontWeight.Semibold),
		Bold:     pick(t.FontWeight.Bold, o.FontWeight.Bold),
	}
	return t
}

func pick[T comparable](base, override T) T {
	var zero T
	if override != zero {
		return override
	}
	return base
}
