package phonefield

import "strings"

// Validity bounds for the coarse digit-count heuristic. A national
// number outside [minNationalDigits, maxNationalDigits] is flagged
// invalid; nothing stronger is attempted.
const (
	minNationalDigits = 4
	maxNationalDigits = 15
)

// Value is the structured result of parsing the field's raw text.
// It is recomputed on demand from the current input state, never cached.
type Value struct {
	Number         string   // full number: "+" + dial code + national digits
	NationalNumber string   // digits after the dial code
	DialCode       string   // dial code, digits only
	DialCodePlus   string   // dial code with leading "+"
	Iso2           string   // selected country code, "" if none
	Country        *Country // selected catalog record, nil if none
	IsValid        bool     // national digit count within [4,15]
	Raw            string   // original raw input text
}

// Parse splits raw field text into dial code and national number for
// the given country. Text that does not carry the expected prefix
// (possible transiently, or for foreign input) is treated as all
// national digits. Parse is total: any input yields a defined Value.
func Parse(raw string, country *Country) Value {
	v := Value{Raw: raw}
	if country != nil {
		v.Country = country
		v.Iso2 = country.Iso2
		v.DialCode = country.DialCode
		v.DialCodePlus = "+" + country.DialCode
	}

	digits := digitsOf(raw)
	national := digits
	if country != nil && strings.HasPrefix(digits, country.DialCode) {
		national = digits[len(country.DialCode):]
	}
	v.NationalNumber = national
	v.Number = v.DialCodePlus + national
	v.IsValid = len(national) >= minNationalDigits && len(national) <= maxNationalDigits
	return v
}

// Normalize rewrites raw text so it is guaranteed to start with the
// country's "+<dialCode>" prefix, preserving whatever national digits
// follow. Already well-formed text canonicalizes to itself, so
// Normalize is idempotent.
func Normalize(raw string, country *Country) string {
	if country == nil {
		return "+" + digitsOf(raw)
	}

	digits := digitsOf(raw)
	prefix := "+" + country.DialCode
	if strings.HasPrefix(digits, country.DialCode) {
		return "+" + digits
	}
	return prefix + digits
}

// FormatOptions adjusts template rendering.
type FormatOptions struct {
	DisableParentheses bool // drop '(' and ')' literals from the output
}

// Format renders national digits through the country's template,
// consuming one digit per '.' placeholder and copying other template
// characters verbatim. Digits beyond the template's capacity are
// appended raw, never dropped. Without a template the digits pass
// through untouched.
func Format(digits string, country *Country, opts FormatOptions) string {
	digits = digitsOf(digits)
	if country == nil || country.Format == "" {
		return digits
	}

	var b strings.Builder
	b.Grow(len(country.Format) + len(digits))
	di := 0
	for _, r := range country.Format {
		if di >= len(digits) {
			break
		}
		if r == '.' {
			b.WriteByte(digits[di])
			di++
			continue
		}
		if opts.DisableParentheses && (r == '(' || r == ')') {
			continue
		}
		b.WriteRune(r)
	}
	// overflow beyond the template is kept
	if di < len(digits) {
		b.WriteString(digits[di:])
	}
	return b.String()
}

// clampNational trims national digits from the end to fit the
// country's maximum length. Zero max means unbounded.
func clampNational(digits string, country *Country) string {
	if country == nil || country.maxDigits == 0 {
		return digits
	}
	if len(digits) > country.maxDigits {
		return digits[:country.maxDigits]
	}
	return digits
}
