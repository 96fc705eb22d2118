package country_test

import (
	"errors"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/phoneinput/pkg/country"
)

// fakeCodes serves a fixed calling-code table. "XX" errors and "YY" panics.
type fakeCodes struct {
	calls int
	mu    sync.Mutex
}

var fakeTable = map[string]int{"US": 1, "CA": 1, "GB": 44, "AE": 971, "FR": 33}

func (f *fakeCodes) Regions() []string {
	return []string{"AE", "CA", "FR", "GB", "US", "XX", "YY"}
}

func (f *fakeCodes) CallingCode(region string) (int, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	switch region {
	case "XX":
		return 0, errors.New("no such region")
	case "YY":
		panic("metadata exploded")
	}
	return fakeTable[region], nil
}

func newDirectory(t *testing.T, opts ...country.Option) *country.Directory {
	t.Helper()
	d, err := country.New(opts...)
	require.NoError(t, err)
	return d
}

func TestDirectory_List(t *testing.T) {
	t.Parallel()

	t.Run("excludes failing codes", func(t *testing.T) {
		t.Parallel()

		d := newDirectory(t, country.WithCallingCodes(&fakeCodes{}))
		got := d.List("en")
		assert.Equal(t, []string{"CA", "FR", "AE", "GB", "US"}, country.Codes(got))
		for _, c := range got {
			assert.Equal(t, '+', rune(c.DialCode[0]))
		}
	})

	t.Run("names follow locale", func(t *testing.T) {
		t.Parallel()

		d := newDirectory(t, country.WithCallingCodes(&fakeCodes{}))
		us, ok := d.ByCode("US", "es-MX")
		require.True(t, ok)
		assert.Equal(t, "Estados Unidos", us.Name)

		us, ok = d.ByCode("US", "de")
		require.True(t, ok)
		assert.Equal(t, "United States", us.Name, "falls back to canonical English")
	})

	t.Run("falls back to code when no name exists", func(t *testing.T) {
		t.Parallel()

		codes := &stubCodes{regions: map[string]int{"QZ": 999}}
		d := newDirectory(t, country.WithCallingCodes(codes))
		got := d.List("en")
		require.Len(t, got, 1)
		assert.Equal(t, "QZ", got[0].Name)
	})

	t.Run("builds once per locale", func(t *testing.T) {
		t.Parallel()

		codes := &fakeCodes{}
		d := newDirectory(t, country.WithCallingCodes(codes))
		first := d.List("en")
		calls := codes.calls
		second := d.List("en")

		assert.Equal(t, first, second)
		assert.Equal(t, calls, codes.calls)
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()

		d := newDirectory(t, country.WithCallingCodes(&fakeCodes{}))
		got := d.List("en")
		got[0].Name = "mutated"
		assert.NotEqual(t, "mutated", d.List("en")[0].Name)
	})

	t.Run("empty locale uses default", func(t *testing.T) {
		t.Parallel()

		d := newDirectory(t, country.WithCallingCodes(&fakeCodes{}), country.WithDefaultLocale("fr"))
		assert.Equal(t, d.List("fr"), d.List(""))
		assert.Equal(t, "fr", d.DefaultLocale())
	})

	t.Run("with flags", func(t *testing.T) {
		t.Parallel()

		d := newDirectory(t, country.WithCallingCodes(&fakeCodes{}), country.WithFlags())
		us, ok := d.ByCode("US", "en")
		require.True(t, ok)
		assert.Equal(t, "🇺🇸", us.Flag)
	})

	t.Run("concurrent callers see the same snapshot", func(t *testing.T) {
		t.Parallel()

		d := newDirectory(t)
		want := d.List("en")

		var wg sync.WaitGroup
		for range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, want, d.List("en"))
				_ = d.List("ar")
			}()
		}
		wg.Wait()
	})
}

type stubCodes struct {
	regions map[string]int
}

func (s *stubCodes) Regions() []string {
	out := make([]string, 0, len(s.regions))
	for r := range s.regions {
		out = append(out, r)
	}
	return out
}

func (s *stubCodes) CallingCode(region string) (int, error) {
	return s.regions[region], nil
}

func TestDirectory_Lookup(t *testing.T) {
	t.Parallel()

	d := newDirectory(t)

	t.Run("by code", func(t *testing.T) {
		t.Parallel()

		us, ok := d.ByCode("us", "en")
		require.True(t, ok)
		assert.Equal(t, country.Country{Code: "US", Name: "United States", DialCode: "+1"}, us)

		_, ok = d.ByCode("XX", "en")
		assert.False(t, ok)
	})

	t.Run("by dial code with and without plus", func(t *testing.T) {
		t.Parallel()

		withPlus, ok := d.ByDialCode("+44", "en")
		require.True(t, ok)
		withoutPlus, ok := d.ByDialCode("44", "en")
		require.True(t, ok)
		assert.Equal(t, withPlus, withoutPlus)
		assert.Equal(t, "+44", withPlus.DialCode)
	})

	t.Run("by dial code returns first in directory order", func(t *testing.T) {
		t.Parallel()

		got, ok := d.ByDialCode("1", "en")
		require.True(t, ok)
		for _, c := range d.List("en") {
			if c.DialCode == "+1" {
				assert.Equal(t, c, got)
				break
			}
		}
	})

	t.Run("by dial code miss", func(t *testing.T) {
		t.Parallel()

		_, ok := d.ByDialCode("+99999", "en")
		assert.False(t, ok)
		_, ok = d.ByDialCode("", "en")
		assert.False(t, ok)
	})

	t.Run("dial code for", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "+971", d.DialCodeFor("AE"))
		assert.Equal(t, "+44", d.DialCodeFor("GB"))
		assert.Equal(t, "+1", d.DialCodeFor("US"))
		assert.Empty(t, d.DialCodeFor("XX"))
	})

	t.Run("arabic and english differ only in names", func(t *testing.T) {
		t.Parallel()

		en := d.List("en")
		ar := d.List("ar")
		require.Len(t, ar, len(en))

		usEn, _ := d.ByCode("US", "en")
		usAr, _ := d.ByCode("US", "ar")
		assert.NotEqual(t, usEn.Name, usAr.Name)
		assert.Equal(t, usEn.DialCode, usAr.DialCode)
	})
}

func TestDirectory_Properties(t *testing.T) {
	d := newDirectory(t)
	locales := []string{"en", "ar", "es", "fr", "de", "en-GB", "fr-CA"}

	properties := gopter.NewProperties(nil)

	properties.Property("codes are unique and names collation-sorted", prop.ForAll(
		func(i int) bool {
			locale := locales[i]
			list := d.List(locale)
			col := collate.New(language.Make(locale))
			seen := make(map[string]bool, len(list))
			for k, c := range list {
				if seen[c.Code] {
					return false
				}
				seen[c.Code] = true
				if k > 0 && col.CompareString(list[k-1].Name, c.Name) > 0 {
					return false
				}
			}
			return len(list) > 0
		},
		gen.IntRange(0, len(locales)-1),
	))

	properties.Property("same locale yields same ordering", prop.ForAll(
		func(i int) bool {
			fresh := newDirectory(t)
			return assert.ObjectsAreEqual(d.List(locales[i]), fresh.List(locales[i]))
		},
		gen.IntRange(0, len(locales)-1),
	))

	properties.TestingRun(t)
}

func TestDirectory_Names(t *testing.T) {
	t.Parallel()

	t.Run("names fs extends tables", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"de.yaml":        {Data: []byte("US: Vereinigte Staaten\n\"GB\": Vereinigtes Königreich\n")},
			"canonical.yaml": {Data: []byte("US: United States of America\n")},
			"README.md":      {Data: []byte("ignored")},
		}
		d := newDirectory(t, country.WithCallingCodes(&fakeCodes{}), country.WithNamesFS(fsys))

		assert.Equal(t, "Vereinigte Staaten", d.Name("US", "de-AT"))
		assert.Equal(t, "United States of America", d.Name("US", "it"))
		assert.Equal(t, "United States", d.Name("US", "en"))
		assert.Contains(t, d.Languages(), "de")
	})

	t.Run("broken names file", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{"de.yaml": {Data: []byte("- not\n- a map\n")}}
		_, err := country.New(country.WithNamesFS(fsys))
		require.ErrorIs(t, err, country.ErrInvalidNames)
	})

	t.Run("with names", func(t *testing.T) {
		t.Parallel()

		d := newDirectory(t, country.WithNames("it", map[string]string{"us": "Stati Uniti"}))
		assert.Equal(t, "Stati Uniti", d.Name("US", "it"))

		_, err := country.New(country.WithNames("", nil))
		require.ErrorIs(t, err, country.ErrInvalidNames)
	})

	t.Run("builtin languages", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"ar", "en", "es", "fr"}, newDirectory(t).Languages())
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	require.Same(t, country.Default(), country.Default())
	assert.NotEmpty(t, country.Default().List(""))

	t.Run("every region has a name", func(t *testing.T) {
		t.Parallel()

		for _, locale := range []string{"en", "it"} {
			for _, c := range country.Default().List(locale) {
				assert.NotEqual(t, c.Code, c.Name, "%s has no %s name", c.Code, locale)
			}
		}
	})

	t.Run("crown dependencies and territories", func(t *testing.T) {
		t.Parallel()

		d := country.Default()
		assert.Equal(t, "Guernsey", d.Name("GG", "it"))
		assert.Equal(t, "Jersey", d.Name("JE", "it"))
		assert.Equal(t, "Isle of Man", d.Name("IM", "it"))
		assert.Equal(t, "Ascension Island", d.Name("AC", "it"))
		assert.Equal(t, "Tristan da Cunha", d.Name("TA", "it"))
		assert.Equal(t, "Kosovo", d.Name("XK", "it"))
	})
}
