// internal/engine/numbers_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntToken(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"1000", 1000, true},
		{"1.500", 1500, true},
		{"1.500.000", 1500000, true},
		{" 42 ", 42, true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseIntToken(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoneyToken(t *testing.T) {
	tests := []struct {
		name  string
		num   string
		scale string
		want  float64
	}{
		{"plain", "500000", "", 500_000},
		{"thousands separators", "750.000", "", 750_000},
		{"mila", "500", "mila", 500_000},
		{"k", "300", "k", 300_000},
		{"decimal comma millions", "1,5", "milioni", 1_500_000},
		{"mln", "2", "mln", 2_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseMoneyToken(tt.num, tt.scale)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimelineMonths(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"12 mesi", 12, true},
		{"1 mese", 1, true},
		{"2 anni", 24, true},
		{"1 anno", 12, true},
		{"qualche settimana", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseTimelineMonths(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatEuro(t *testing.T) {
	assert.Equal(t, "€500.000", formatEuro(500_000))
	assert.Equal(t, "€1.500.000", formatEuro(1_500_000))
	assert.Equal(t, "€950", formatEuro(950))
	assert.Equal(t, "€0", formatEuro(0))
}
