// Package phonefield provides a country-aware phone number input widget
// for terminal UIs, built from a static country catalog, a prefix-guarding
// edit engine and a searchable country dropdown.
package phonefield

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

//go:embed countries.txt
var countryData string

// Country is a single immutable catalog record.
type Country struct {
	Iso2     string // two-letter code, uppercase
	Name     string // display name
	DialCode string // international calling prefix, digits only
	Format   string // national number template, '.' per digit ("" = none)
	Primary  bool   // preferred record for a shared dial code

	maxDigits int // count of '.' in Format, 0 = unbounded
}

// MaxDigits returns the maximum national number length for the country,
// or 0 if the country has no format template (unbounded).
func (c *Country) MaxDigits() int {
	return c.maxDigits
}

// Flag returns the regional indicator emoji for the country.
func (c *Country) Flag() string {
	if len(c.Iso2) != 2 {
		return ""
	}
	r := []rune{
		0x1F1E6 + rune(c.Iso2[0]-'A'),
		0x1F1E6 + rune(c.Iso2[1]-'A'),
	}
	return string(r)
}

var (
	catalog    []Country
	byIso2     map[string]*Country
	byDialCode map[string][]*Country
	loadOnce   sync.Once
)

func loadCatalog() {
	loadOnce.Do(func() {
		byIso2 = make(map[string]*Country)
		byDialCode = make(map[string][]*Country)

		scanner := bufio.NewScanner(strings.NewReader(countryData))
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			fields := strings.Split(line, "\t")
			if len(fields) < 3 {
				continue
			}
			c := Country{
				Iso2:     strings.ToUpper(strings.TrimSpace(fields[0])),
				Name:     strings.TrimSpace(fields[1]),
				DialCode: strings.TrimSpace(fields[2]),
			}
			if len(fields) > 3 {
				c.Format = strings.TrimSpace(fields[3])
				c.maxDigits = strings.Count(c.Format, ".")
			}
			if len(fields) > 4 && strings.Contains(fields[4], "*") {
				c.Primary = true
			}
			catalog = append(catalog, c)
		}

		for i := range catalog {
			c := &catalog[i]
			byIso2[c.Iso2] = c
			byDialCode[c.DialCode] = append(byDialCode[c.DialCode], c)
		}
	})
}

// All returns the full catalog in load order. The returned slice is
// shared; callers must not mutate it.
func All() []Country {
	loadCatalog()
	return catalog
}

// ByIso2 looks up a country by its two-letter code, case-insensitively.
func ByIso2(code string) (*Country, bool) {
	loadCatalog()
	c, ok := byIso2[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// ByDialCode returns the best match for a dial code. A leading '+' is
// ignored. When several countries share the code, the one flagged as
// primary wins; otherwise the first in catalog order.
func ByDialCode(code string) (*Country, bool) {
	loadCatalog()
	code = strings.TrimPrefix(strings.TrimSpace(code), "+")
	group := byDialCode[code]
	if len(group) == 0 {
		return nil, false
	}
	for _, c := range group {
		if c.Primary {
			return c, true
		}
	}
	return group[0], true
}

// GuessFromNumber resolves a country from a raw phone number by trying
// progressively shorter digit prefixes as dial codes. Dial codes are
// 1-4 digits, and the longest match wins.
func GuessFromNumber(raw string) (*Country, bool) {
	loadCatalog()
	digits := digitsOf(raw)
	for n := 4; n >= 1; n-- {
		if n > len(digits) {
			continue
		}
		if c, ok := ByDialCode(digits[:n]); ok {
			return c, true
		}
	}
	return nil, false
}

// Search returns catalog entries whose name, ISO2 code or dial code
// contains the query, case-insensitively. An empty query returns the
// whole catalog.
func Search(query string) []Country {
	loadCatalog()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Country, len(catalog))
		copy(out, catalog)
		return out
	}
	var out []Country
	for _, c := range catalog {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Iso2), query) ||
			strings.Contains(c.DialCode, strings.TrimPrefix(query, "+")) {
			out = append(out, c)
		}
	}
	return out
}

// digitsOf strips everything but ASCII digits.
func digitsOf(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
