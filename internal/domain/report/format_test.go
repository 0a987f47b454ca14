package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1500000, "Rp1,5 jt"},
		{2000000000, "Rp2 M"},
		{750000, "Rp750 rb"},
		{500, "Rp500"},
		{0, "Rp0"},
		{12345678, "Rp12 jt"},
		{999950, "Rp1 jt"},
		{3200000000000, "Rp3,2 T"},
		{-1500000, "-Rp1,5 jt"},
		{-0.4, "Rp0"},
		{0.4, "Rp0"},
		{-0.6, "-Rp1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPrice(tt.in), "valor %v", tt.in)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "Rp1.500.000", FormatCurrency(1500000))
	assert.Equal(t, "Rp500", FormatCurrency(499.6))
}
