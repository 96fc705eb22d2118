package phone_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phoneinput/pkg/phone"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keeps leading plus", "+1 (415) 555-2671", "+14155552671"},
		{"drops plus that is not first", "abc+1-415xyz", "1415"},
		{"drops inner plus and letters", "abc+1-415-555-2671xyz", "14155552671"},
		{"empty", "", ""},
		{"only plus", "+", "+"},
		{"only separators", " ()-", ""},
		{"non ascii digits removed", "+٣٤5", "+5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, phone.Normalize(tt.in))
		})
	}
}

func TestNormalizeProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("output holds only digits after an optional leading plus", prop.ForAll(
		func(s string) bool {
			out := strings.TrimPrefix(phone.Normalize(s), "+")
			for _, r := range out {
				if r < '0' || r > '9' {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("leading plus preserved iff input starts with plus", prop.ForAll(
		func(s string) bool {
			return strings.HasPrefix(phone.Normalize(s), "+") == strings.HasPrefix(s, "+")
		},
		gen.AnyString(),
	))

	properties.Property("normalize is idempotent", prop.ForAll(
		func(s string) bool {
			once := phone.Normalize(s)
			return phone.Normalize(once) == once
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid US number", func(t *testing.T) {
		t.Parallel()
		p := phone.Parse("+14155552671", "US")
		assert.True(t, p.IsValid)
		assert.True(t, p.IsPossible)
		assert.Equal(t, "US", p.CountryCode)
		assert.Equal(t, "4155552671", p.NationalNumber)
		assert.Equal(t, "+14155552671", p.Number)
	})

	t.Run("valid GB number", func(t *testing.T) {
		t.Parallel()
		p := phone.Parse("+442071838750", "GB")
		assert.True(t, p.IsValid)
		assert.Equal(t, "GB", p.CountryCode)
	})

	t.Run("short number is invalid", func(t *testing.T) {
		t.Parallel()
		p := phone.Parse("123", "US")
		assert.False(t, p.IsValid)
		assert.False(t, p.IsPossible)
	})

	t.Run("garbage degrades to zero value", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, phone.Parsed{}, phone.Parse("not a number", "US"))
	})

	t.Run("national input without region degrades", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, phone.Parsed{}, phone.Parse("4155552671", ""))
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	t.Run("e164", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "+14155552671", phone.Format("+14155552671", phone.StyleE164, "US"))
	})

	t.Run("international", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, phone.Format("+14155552671", phone.StyleInternational, "US"), "+1")
	})

	t.Run("national", func(t *testing.T) {
		t.Parallel()
		out := phone.Format("+14155552671", phone.StyleNational, "US")
		assert.NotEmpty(t, out)
		assert.NotContains(t, out, "+")
	})

	t.Run("as you type", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "(415) 555-2671", phone.Format("4155552671", phone.StyleAsYouType, "US"))
		assert.Equal(t, "+44 20", phone.FormatAsYouType("+4420", ""))
	})

	t.Run("none returns input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "4155552671", phone.Format("4155552671", phone.StyleNone, "US"))
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, phone.Format("", phone.StyleE164, "US"))
	})

	t.Run("failure returns input unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "abc", phone.Format("abc", phone.StyleE164, "US"))
		assert.Equal(t, "4155552671", phone.Format("4155552671", phone.StyleNational, "XX"))
	})
}

func TestValidity(t *testing.T) {
	t.Parallel()

	assert.True(t, phone.IsValid("+14155552671", "US"))
	assert.True(t, phone.IsValid("+442071838750", ""))
	assert.False(t, phone.IsValid("123", "US"))
	assert.True(t, phone.IsPossible("+14155552671", "US"))
	assert.False(t, phone.IsPossible("123", "US"))
}

func TestGuessCountry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "US", phone.GuessCountry("+14155552671"))
	assert.Equal(t, "GB", phone.GuessCountry("+442071838750"))
	assert.Empty(t, phone.GuessCountry("123"))
}

func TestDialCodeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+971", phone.DialCodeFor("AE"))
	assert.Equal(t, "+44", phone.DialCodeFor("GB"))
	assert.Equal(t, "+1", phone.DialCodeFor("US"))
	assert.Empty(t, phone.DialCodeFor("XX"))
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	s, ok := phone.ParseStyle("national")
	require.True(t, ok)
	require.Equal(t, phone.StyleNational, s)

	_, ok = phone.ParseStyle("rfc3966")
	require.False(t, ok)
}

// brokenMetadata fails in every way a capability can fail.
type brokenMetadata struct{}

func (brokenMetadata) Parse(string, string) (phone.Parsed, error) {
	panic("boom")
}

func (brokenMetadata) Format(string, phone.Style, string) (string, error) {
	return "", errors.New("format rejected")
}

func (brokenMetadata) AsYouType(string, string) string {
	panic("boom")
}

func (brokenMetadata) CallingCode(string) (int, error) {
	return 0, phone.ErrUnknownRegion
}

func (brokenMetadata) Regions() []string { return nil }

func TestCoreDegradesFailures(t *testing.T) {
	t.Parallel()

	core := phone.New(phone.WithMetadata(brokenMetadata{}))

	assert.Equal(t, phone.Parsed{}, core.Parse("+14155552671", "US"))
	assert.False(t, core.IsValid("+14155552671", "US"))
	assert.False(t, core.IsPossible("+14155552671", "US"))
	assert.Empty(t, core.GuessCountry("+14155552671"))
	assert.Equal(t, "+14155552671", core.Format("+14155552671", phone.StyleE164, "US"))
	assert.Equal(t, "+1415", core.Format("+1415", phone.StyleAsYouType, "US"))
	assert.Empty(t, core.DialCodeFor("US"))
}

func TestNewKeepsDefaultsOnNilOptions(t *testing.T) {
	t.Parallel()

	core := phone.New(phone.WithMetadata(nil), phone.WithLogger(nil))
	require.IsType(t, phone.Phonenumbers{}, core.Metadata())
	require.Equal(t, "+1", core.DialCodeFor("US"))
}

func TestFormatAsYouType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		region string
		want   string
	}{
		{name: "empty", text: "", region: "US", want: ""},
		{name: "plus only", text: "+", region: "", want: "+"},
		{name: "three digits stay ungrouped", text: "415", region: "US", want: "415"},
		{name: "short local group", text: "4155", region: "US", want: "415-5"},
		{name: "local number", text: "41555", region: "US", want: "415-55"},
		{name: "switches to area code layout", text: "41555526", region: "US", want: "(415) 555-26"},
		{name: "complete national", text: "4155552671", region: "US", want: "(415) 555-2671"},
		{name: "national prefix kept", text: "06123", region: "FR", want: "06 12 3"},
		{name: "complete french", text: "0612345678", region: "FR", want: "06 12 34 56 78"},
		{name: "calling code only", text: "+1", region: "", want: "+1"},
		{name: "international partial", text: "+1415555", region: "", want: "+1 415-555"},
		{name: "international complete", text: "+14155552671", region: "", want: "+1 415-555-2671"},
		{name: "london partial", text: "+442071", region: "", want: "+44 20 71"},
		{name: "london complete", text: "+442071838750", region: "", want: "+44 20 7183 8750"},
		{name: "separators ignored", text: "+44 (20) 71", region: "", want: "+44 20 71"},
		{name: "no region returns digits", text: "4155", region: "", want: "4155"},
		{name: "unknown region returns digits", text: "4155", region: "XX", want: "4155"},
		{name: "lowercase region", text: "4155", region: "us", want: "415-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := phone.FormatAsYouType(tt.text, tt.region)
			assert.Equal(t, tt.want, got)
		})
	}
}
