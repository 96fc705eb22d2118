package phone

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/nyaruka/phonenumbers"
)

// minLeadingDigits is the national digit count from which the per-format
// leading-digits patterns start to narrow, one pattern per extra digit.
const minLeadingDigits = 3

// nonGeoRegion is the metadata id shared by non-geographical calling codes.
const nonGeoRegion = "001"

// groupPattern matches one capturing group of a format pattern:
// "(\d)", "(\d{3})" or "(\d{2,9})".
var groupPattern = regexp.MustCompile(`\(\\d(?:\{(\d+)(?:,(\d+))?\})?\)`)

var regionMetadata = sync.OnceValue(func() map[string]*phonenumbers.PhoneMetadata {
	coll, err := phonenumbers.MetadataCollection()
	if err != nil || coll == nil {
		return nil
	}
	out := make(map[string]*phonenumbers.PhoneMetadata, len(coll.GetMetadata()))
	for _, m := range coll.GetMetadata() {
		if id := m.GetId(); id != nonGeoRegion {
			out[id] = m
		}
	}
	return out
})

var leadingDigits sync.Map // pattern -> *regexp.Regexp (nil when invalid)

// AsYouType formats partial input incrementally.
// Complete numbers get the library's national or international format.
// Partial numbers are grouped by the first region format whose leading
// digits match and whose pattern can still hold them. Anything else comes
// back as its digits.
func (Phonenumbers) AsYouType(text, region string) string {
	digits := Normalize(text)
	if digits == "" {
		return ""
	}
	if digits[0] == '+' {
		return asYouTypeInternational(digits[1:])
	}
	return asYouTypeNational(digits, strings.ToUpper(strings.TrimSpace(region)))
}

func asYouTypeInternational(digits string) string {
	if num, err := phonenumbers.Parse("+"+digits, ""); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
	}

	cc, national, ok := splitCallingCode(digits)
	if !ok {
		return "+" + digits
	}
	prefix := "+" + strconv.Itoa(cc)
	if national == "" {
		return prefix
	}

	meta := regionMetadata()[phonenumbers.GetRegionCodeForCountryCode(cc)]
	if meta == nil {
		return prefix + " " + national
	}
	formats := meta.GetIntlNumberFormat()
	if len(formats) == 0 {
		formats = meta.GetNumberFormat()
	}
	if grouped, ok := groupDigits(national, formats, ""); ok {
		return prefix + " " + grouped
	}
	return prefix + " " + national
}

func asYouTypeNational(digits, region string) string {
	meta := regionMetadata()[region]
	if meta == nil {
		return digits
	}
	if num, err := phonenumbers.Parse(digits, region); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.NATIONAL)
	}

	nsn, np := digits, ""
	if p := meta.GetNationalPrefix(); p != "" && len(digits) > len(p) && strings.HasPrefix(digits, p) {
		nsn, np = digits[len(p):], p
	}
	if grouped, ok := groupDigits(nsn, meta.GetNumberFormat(), np); ok {
		return grouped
	}
	return digits
}

// splitCallingCode takes the shortest known calling code off digits.
func splitCallingCode(digits string) (int, string, bool) {
	if digits == "" || digits[0] == '0' {
		return 0, "", false
	}
	for n := 1; n <= 3 && n <= len(digits); n++ {
		cc, err := strconv.Atoi(digits[:n])
		if err != nil {
			return 0, "", false
		}
		if phonenumbers.GetRegionCodeForCountryCode(cc) != unknownRegion {
			return cc, digits[n:], true
		}
	}
	return 0, "", false
}

// groupDigits renders nsn with the first format that fits it. np is the
// national prefix the user typed, if any.
func groupDigits(nsn string, formats []*phonenumbers.NumberFormat, np string) (string, bool) {
	for _, f := range formats {
		if f.GetFormat() == "NA" || !matchesLeadingDigits(f.GetLeadingDigitsPattern(), nsn) {
			continue
		}
		sizes, capacity := groupSizes(f.GetPattern())
		if len(sizes) == 0 || len(nsn) > capacity {
			continue
		}

		groups := splitGroups(nsn, sizes)
		if len(groups) < 2 {
			return np + nsn, true
		}
		return renderGroups(f, groups, np), true
	}
	return "", false
}

func matchesLeadingDigits(patterns []string, nsn string) bool {
	if len(patterns) == 0 {
		return true
	}
	idx := min(max(len(nsn)-minLeadingDigits, 0), len(patterns)-1)
	re := leadingDigitsRegexp(patterns[idx])
	return re != nil && re.MatchString(nsn)
}

func leadingDigitsRegexp(pattern string) *regexp.Regexp {
	if v, ok := leadingDigits.Load(pattern); ok {
		return v.(*regexp.Regexp)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		re = nil
	}
	leadingDigits.Store(pattern, re)
	return re
}

// groupSizes reads the digit groups of a format pattern. Inner groups take
// their minimum length, the last one its maximum. Patterns with anything but
// digit groups are not supported and yield nil.
func groupSizes(pattern string) ([]int, int) {
	if groupPattern.ReplaceAllString(pattern, "") != "" {
		return nil, 0
	}

	matches := groupPattern.FindAllStringSubmatch(pattern, -1)
	sizes := make([]int, len(matches))
	capacity := 0
	for i, m := range matches {
		lo, hi := 1, 1
		if m[1] != "" {
			lo, _ = strconv.Atoi(m[1])
			hi = lo
		}
		if m[2] != "" {
			hi, _ = strconv.Atoi(m[2])
		}
		sizes[i] = lo
		if i == len(matches)-1 {
			sizes[i] = hi
		}
		capacity += sizes[i]
	}
	return sizes, capacity
}

// splitGroups cuts nsn into consecutive groups of sizes, dropping empty ones.
func splitGroups(nsn string, sizes []int) []string {
	groups := make([]string, 0, len(sizes))
	for _, size := range sizes {
		if nsn == "" {
			break
		}
		n := min(size, len(nsn))
		groups = append(groups, nsn[:n])
		nsn = nsn[n:]
	}
	return groups
}

// renderGroups fills the format layout up to the last typed group. A typed
// national prefix goes through the format's prefix rule when it has one.
func renderGroups(f *phonenumbers.NumberFormat, groups []string, np string) string {
	layout := f.GetFormat()
	if i := strings.Index(layout, "$"+strconv.Itoa(len(groups)+1)); i >= 0 {
		layout = strings.TrimRight(layout[:i], " -./")
	}

	lead := ""
	if np != "" {
		if rule := f.GetNationalPrefixFormattingRule(); strings.Contains(rule, "$1") {
			groups[0] = strings.Replace(rule, "$1", groups[0], 1)
		} else {
			lead = np + " "
		}
	}

	pairs := make([]string, 0, 2*len(groups))
	for i, g := range groups {
		pairs = append(pairs, "$"+strconv.Itoa(i+1), g)
	}
	return lead + strings.NewReplacer(pairs...).Replace(layout)
}
