package domain

import "unicode"

// TaxTable maps three-digit ZIP prefixes to sales tax rates. Unmapped or
// malformed ZIP codes fall back to the default rate; that is normal operation,
// not an error.
type TaxTable struct {
	DefaultRate float64
	Rates       map[string]float64
}

// RateFor returns the tax rate for a customer ZIP code.
func (t TaxTable) RateFor(zipCode string) float64 {
	prefix, ok := zipPrefix(zipCode)
	if !ok {
		return t.DefaultRate
	}
	if rate, ok := t.Rates[prefix]; ok {
		return rate
	}
	return t.DefaultRate
}

// zipPrefix extracts the leading ZIPPrefixLength digits. Returns false when
// the ZIP is too short or contains non-digits in the prefix.
func zipPrefix(zipCode string) (string, bool) {
	if len(zipCode) < ZIPPrefixLength {
		return "", false
	}
	prefix := zipCode[:ZIPPrefixLength]
	for _, r := range prefix {
		if !unicode.IsDigit(r) {
			return "", false
		}
	}
	return prefix, true
}
