package internal

import "github.com/dmitrymomot/phoneinput/pkg/theme"

// View is the render model of the input. Empty strings mean "do not draw".
type View struct {
	Value            string      `json:"value"`
	Formatted        string      `json:"formatted"`
	Placeholder      string      `json:"placeholder"`
	PlaceholderColor string      `json:"placeholder_color"`
	Flag             string      `json:"flag,omitempty"`
	Chevron          string      `json:"chevron,omitempty"`
	DialCode         string      `json:"dial_code,omitempty"`
	CountryCode      string      `json:"country_code,omitempty"`
	Error            string      `json:"error,omitempty"`
	State            string      `json:"state"`
	Focused          bool        `json:"focused"`
	Disabled         bool        `json:"disabled"`
	Editable         bool        `json:"editable"`
	RTL              bool        `json:"rtl"`
	PickerVisible    bool        `json:"picker_visible"`
	BorderColor      string      `json:"border_color"`
	Container        theme.Style `json:"container"`
	Input            theme.Style `json:"input"`
	FlagContainer    theme.Style `json:"flag_container"`
}

// View builds the render model from the current state.
func (i *Input) View() View {
	rtl := i.catalog.IsRTL(i.locale)
	displayErr := ""
	if i.show.error {
		displayErr = i.DisplayError()
	}

	container := i.theme.Container(theme.ContainerState{
		Focused:  i.Focused(),
		HasError: displayErr != "",
		Disabled: i.disabled,
	})
	flagContainer := i.theme.Styles.FlagContainer
	input := i.theme.Styles.Input
	if rtl {
		container = theme.Mirror(container)
		flagContainer = theme.Mirror(flagContainer)
		input.TextAlign = "right"
	}

	v := View{
		Value:            i.value,
		Formatted:        i.Formatted(),
		Placeholder:      i.Placeholder(),
		PlaceholderColor: i.theme.Tokens.Colors.Placeholder,
		Error:            displayErr,
		State:            i.state.String(),
		Focused:          i.Focused(),
		Disabled:         i.disabled,
		Editable:         i.editable && !i.disabled,
		RTL:              rtl,
		PickerVisible:    i.picker.Visible(),
		BorderColor:      container.BorderColor,
		Container:        container,
		Input:            input,
		FlagContainer:    flagContainer,
	}

	if i.show.chevron {
		v.Chevron = i.renderer.RenderChevron(ChevronProps{
			Color: i.theme.Tokens.Colors.TextSecondary,
			Size:  theme.ChevronSize,
		})
	}
	if i.hasCountry {
		if i.show.flag {
			v.Flag = i.renderer.RenderFlag(FlagProps{CountryCode: i.selected.Code, Size: theme.FlagSize})
		}
		if i.show.dialCode {
			v.DialCode = i.selected.DialCode
		}
		if i.show.countryCode {
			v.CountryCode = i.selected.Code
		}
	}

	return v
}

// Placeholder resolves the placeholder text: hidden gives "", explicit text
// wins, then the variant decides.
func (i *Input) Placeholder() string {
	if !i.show.placeholder {
		return ""
	}
	if i.placeholderText != "" {
		return i.placeholderText
	}

	switch i.placeholderVariant {
	case PlaceholderDialCode:
		return i.selected.DialCode
	case PlaceholderNone:
		return ""
	default:
		return i.catalog.Strings(i.locale).EnterPhoneNumber
	}
}
