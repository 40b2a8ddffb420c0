package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxTable_RateFor(t *testing.T) {
	table := TaxTable{
		DefaultRate: 0.06,
		Rates: map[string]float64{
			"207": 0.06,
			"220": 0.053,
			"100": 0.08875,
		},
	}

	tests := []struct {
		name     string
		zip      string
		expected float64
	}{
		{"mapped prefix", "20735", 0.06},
		{"another mapped prefix", "22042", 0.053},
		{"nyc prefix", "10001", 0.08875},
		{"unmapped prefix", "99501", 0.06},
		{"exact prefix length", "220", 0.053},
		{"zip plus four", "22042-1234", 0.053},
		{"empty zip", "", 0.06},
		{"too short", "20", 0.06},
		{"non-digit prefix", "2a735", 0.06},
		{"letters", "ABCDE", 0.06},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.RateFor(tt.zip))
		})
	}
}

func TestTaxTable_EmptyRatesFallsBack(t *testing.T) {
	table := TaxTable{DefaultRate: 0.06}

	assert.Equal(t, 0.06, table.RateFor("20735"))
}
