package phonefield

import "strings"

// ListOptions derives a working country list from the catalog.
// Only is applied first, then Exclude, then the Distinct reduction.
// All codes are ISO2 and case-insensitive. The zero value yields the
// full catalog.
type ListOptions struct {
	Only      []string // allow-set; nil = everything
	Exclude   []string // deny-set
	Preferred []string // pinned ordering, resolved against the working list
	Distinct  bool     // keep one representative per dial code
}

// Working computes the filtered country list. The result is a fresh
// slice in catalog order; an Only set that matches nothing yields an
// empty list.
func (o ListOptions) Working() []Country {
	src := All()

	only := codeSet(o.Only)
	exclude := codeSet(o.Exclude)

	out := make([]Country, 0, len(src))
	for _, c := range src {
		if only != nil && !only[c.Iso2] {
			continue
		}
		if exclude[c.Iso2] {
			continue
		}
		out = append(out, c)
	}

	if o.Distinct {
		out = distinctByDialCode(out)
	}
	return out
}

// PreferredList maps the Preferred ordering through a working list.
// Codes absent from the working list are dropped.
func (o ListOptions) PreferredList(working []Country) []Country {
	if len(o.Preferred) == 0 {
		return nil
	}
	byCode := make(map[string]Country, len(working))
	for _, c := range working {
		byCode[c.Iso2] = c
	}
	var out []Country
	for _, code := range o.Preferred {
		if c, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Contains reports whether the working list carries the given country.
func Contains(list []Country, iso2 string) bool {
	iso2 = strings.ToUpper(iso2)
	for i := range list {
		if list[i].Iso2 == iso2 {
			return true
		}
	}
	return false
}

// distinctByDialCode keeps one country per dial code: the record
// flagged primary when the group has one, otherwise the first in list
// order.
func distinctByDialCode(list []Country) []Country {
	keep := make(map[string]int, len(list)) // dial code -> index into out
	out := make([]Country, 0, len(list))
	for _, c := range list {
		idx, seen := keep[c.DialCode]
		if !seen {
			keep[c.DialCode] = len(out)
			out = append(out, c)
			continue
		}
		// a later primary displaces a non-primary representative
		if c.Primary && !out[idx].Primary {
			out[idx] = c
		}
	}
	return out
}

func codeSet(codes []string) map[string]bool {
	if codes == nil {
		return nil
	}
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[strings.ToUpper(strings.TrimSpace(c))] = true
	}
	return m
}
