package i18n

// Label keys as they appear in strings files.
const (
	KeySearchPlaceholder  = "search_placeholder"
	KeyNoResultsFound     = "no_results_found"
	KeySelectCountry      = "select_country"
	KeyEnterPhoneNumber   = "enter_phone_number"
	KeyInvalidPhoneNumber = "invalid_phone_number"
	KeyRequiredField      = "required_field"
)

// Strings is the fixed set of UI labels for one language.
type Strings struct {
	SearchPlaceholder  string `json:"search_placeholder" yaml:"search_placeholder"`
	NoResultsFound     string `json:"no_results_found" yaml:"no_results_found"`
	SelectCountry      string `json:"select_country" yaml:"select_country"`
	EnterPhoneNumber   string `json:"enter_phone_number" yaml:"enter_phone_number"`
	InvalidPhoneNumber string `json:"invalid_phone_number" yaml:"invalid_phone_number"`
	RequiredField      string `json:"required_field" yaml:"required_field"`
}

// Get returns the label stored under key.
func (s Strings) Get(key string) (string, error) {
	switch key {
	case KeySearchPlaceholder:
		return s.SearchPlaceholder, nil
	case KeyNoResultsFound:
		return s.NoResultsFound, nil
	case KeySelectCountry:
		return s.SelectCountry, nil
	case KeyEnterPhoneNumber:
		return s.EnterPhoneNumber, nil
	case KeyInvalidPhoneNumber:
		return s.InvalidPhoneNumber, nil
	case KeyRequiredField:
		return s.RequiredField, nil
	}
	return "", ErrUnknownLabel
}

// merge fills empty fields of s from fallback.
func (s Strings) merge(fallback Strings) Strings {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return Strings{
		SearchPlaceholder:  pick(s.SearchPlaceholder, fallback.SearchPlaceholder),
		NoResultsFound:     pick(s.NoResultsFound, fallback.NoResultsFound),
		SelectCountry:      pick(s.SelectCountry, fallback.SelectCountry),
		EnterPhoneNumber:   pick(s.EnterPhoneNumber, fallback.EnterPhoneNumber),
		InvalidPhoneNumber: pick(s.InvalidPhoneNumber, fallback.InvalidPhoneNumber),
		RequiredField:      pick(s.RequiredField, fallback.RequiredField),
	}
}

// overlay replaces fields of s with the non-empty fields of o.
func (s Strings) overlay(o Strings) Strings {
	return o.merge(s)
}
