package phonefield

import (
	"fmt"
	"strings"
)

// ValueValidator validates a parsed phone value.
type ValueValidator func(Value) error

// VRequired rejects values with no national digits.
func VRequired(v Value) error {
	if v.NationalNumber == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// VPhone rejects values whose national number falls outside the
// accepted length range.
func VPhone(v Value) error {
	if v.NationalNumber == "" {
		return nil
	}
	if !v.IsValid {
		return fmt.Errorf("invalid phone number")
	}
	return nil
}

// VCountry rejects values resolved to a country outside the given
// ISO2 codes.
func VCountry(iso2 ...string) ValueValidator {
	allowed := make(map[string]struct{}, len(iso2))
	for _, code := range iso2 {
		allowed[strings.ToUpper(code)] = struct{}{}
	}
	return func(v Value) error {
		if v.NationalNumber == "" {
			return nil
		}
		if _, ok := allowed[v.Iso2]; !ok {
			return fmt.Errorf("country not allowed")
		}
		return nil
	}
}

// VAll runs validators in order and returns the first error.
func VAll(vs ...ValueValidator) ValueValidator {
	return func(v Value) error {
		for _, fn := range vs {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
}
