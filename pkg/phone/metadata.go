package phone

import (
	"fmt"
	"maps"
	"slices"

	"github.com/nyaruka/phonenumbers"
)

// unknownRegion is libphonenumber's placeholder for "no region".
const unknownRegion = "ZZ"

// Parsed is the structured result of parsing a number.
// Zero value means "not a number": invalid and not possible.
type Parsed struct {
	CountryCode    string `json:"country_code,omitempty"`
	NationalNumber string `json:"national_number,omitempty"`
	Number         string `json:"number,omitempty"`
	Type           string `json:"type,omitempty"`
	IsValid        bool   `json:"is_valid"`
	IsPossible     bool   `json:"is_possible"`
}

// Metadata is the phone-number metadata capability the package delegates to.
// Implementations may return errors or panic; Core converts both into benign results.
type Metadata interface {
	// Parse parses text using region as the default region for national input.
	Parse(text, region string) (Parsed, error)

	// Format renders text in the given style. StyleAsYouType and StyleNone
	// are handled by Core and never reach this method.
	Format(text string, style Style, region string) (string, error)

	// AsYouType formats partial input incrementally, as typed.
	AsYouType(text, region string) string

	// CallingCode returns the international calling code for a region.
	CallingCode(region string) (int, error)

	// Regions lists every supported ISO 3166-1 alpha-2 region code, sorted.
	Regions() []string
}

// Phonenumbers implements Metadata on top of github.com/nyaruka/phonenumbers.
type Phonenumbers struct{}

var _ Metadata = Phonenumbers{}

func (Phonenumbers) Parse(text, region string) (Parsed, error) {
	num, err := phonenumbers.Parse(text, region)
	if err != nil {
		return Parsed{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	country := phonenumbers.GetRegionCodeForNumber(num)
	if country == unknownRegion {
		country = ""
	}

	return Parsed{
		CountryCode:    country,
		NationalNumber: phonenumbers.GetNationalSignificantNumber(num),
		Number:         phonenumbers.Format(num, phonenumbers.E164),
		Type:           numberTypeName(phonenumbers.GetNumberType(num)),
		IsValid:        phonenumbers.IsValidNumber(num),
		IsPossible:     phonenumbers.IsPossibleNumber(num),
	}, nil
}

func (Phonenumbers) Format(text string, style Style, region string) (string, error) {
	var format phonenumbers.PhoneNumberFormat
	switch style {
	case StyleE164:
		format = phonenumbers.E164
	case StyleInternational:
		format = phonenumbers.INTERNATIONAL
	case StyleNational:
		format = phonenumbers.NATIONAL
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	num, err := phonenumbers.Parse(text, region)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}

	return phonenumbers.Format(num, format), nil
}

func (Phonenumbers) CallingCode(region string) (int, error) {
	code := phonenumbers.GetCountryCodeForRegion(region)
	if code == 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return code, nil
}

func (Phonenumbers) Regions() []string {
	return slices.Sorted(maps.Keys(phonenumbers.GetSupportedRegions()))
}

func numberTypeName(t phonenumbers.PhoneNumberType) string {
	switch t {
	case phonenumbers.FIXED_LINE:
		return "FIXED_LINE"
	case phonenumbers.MOBILE:
		return "MOBILE"
	case phonenumbers.FIXED_LINE_OR_MOBILE:
		return "FIXED_LINE_OR_MOBILE"
	case phonenumbers.TOLL_FREE:
		return "TOLL_FREE"
	case phonenumbers.PREMIUM_RATE:
		return "PREMIUM_RATE"
	case phonenumbers.SHARED_COST:
		return "SHARED_COST"
	case phonenumbers.VOIP:
		return "VOIP"
	case phonenumbers.PERSONAL_NUMBER:
		return "PERSONAL_NUMBER"
	case phonenumbers.PAGER:
		return "PAGER"
	case phonenumbers.UAN:
		return "UAN"
	case phonenumbers.VOICEMAIL:
		return "VOICEMAIL"
	default:
		return ""
	}
}
