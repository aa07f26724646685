package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "plain integer", input: "1234", expected: 1234},
		{name: "plain decimal", input: "1234.56", expected: 1234.56},
		{name: "locale decimal", input: "1.234,56", expected: 1234.56},
		{name: "locale thousands without decimals", input: "3.500.000", expected: 3_500_000},
		{name: "single thousands group", input: "1.500", expected: 1500},
		{name: "currency prefix is ignored", input: "Rp 2.500.000", expected: 2_500_000},
		{name: "dash means empty", input: "-", expected: 0},
		{name: "empty string", input: "", expected: 0},
		{name: "free text", input: "tidak ada", expected: 0},
		{name: "negative", input: "-1.000", expected: -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount(tt.input))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "millions", input: 3_500_000, expected: "3.500.000"},
		{name: "no grouping below a thousand", input: 850, expected: "850"},
		{name: "decimals use a comma", input: 1234.5, expected: "1.234,5"},
		{name: "two decimals", input: 1234.56, expected: "1.234,56"},
		{name: "zero", input: 0, expected: "0"},
		{name: "negative", input: -1500, expected: "-1.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.input))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, f := range []float64{0, 850, 1500, 3_500_000, 15_000_000} {
		assert.Equal(t, f, ParseAmount(FormatAmount(f)))
	}
}
