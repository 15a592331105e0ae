package output

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"whole", 61540, "$61540.00"},
		{"rounds half up", 34.965909, "$34.97"},
		{"zero", 0, "$0.00"},
		{"negative", -12.5, "-$12.50"},
		{"small", 0.113636, "$0.11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$34.97 / hr", FormatRate(34.9659))
	assert.Equal(t, "1760.00 hrs", FormatHours(1760))
	assert.Equal(t, "17.50%", FormatPercentage(17.5))
	assert.Equal(t, "8.00", FormatNumber(8))
	assert.Equal(t, "17.5", FormatInput(17.5))
	assert.Equal(t, "0", FormatInput(0))
}

func TestFormatHelpers_NonFinite(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.Equal(t, NotAvailable, FormatCurrency(v))
		assert.Equal(t, NotAvailable, FormatRate(v))
		assert.Equal(t, NotAvailable, FormatNumber(v))
		assert.Equal(t, NotAvailable, FormatPercentage(v))
		assert.Equal(t, NotAvailable, FormatInput(v))
		assert.Equal(t, NotAvailable, FormatMultiplier(v))
		assert.Equal(t, "░░░░", Bar(v, 4))
	}
	assert.Equal(t, "████", Bar(1e300, 4))
}

func TestFormatMultiplier(t *testing.T) {
	assert.Equal(t, "1.20", FormatMultiplier(20))
	assert.Equal(t, "1.00", FormatMultiplier(0))
	assert.Equal(t, "1.15", FormatMultiplier(15))
}

func TestBar(t *testing.T) {
	tests := []struct {
		share    float64
		width    int
		expected string
	}{
		{0, 4, "░░░░"},
		{100, 4, "████"},
		{50, 4, "██░░"},
		{150, 2, "██"},
		{-10, 2, "░░"},
		{50, 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Bar(tt.share, tt.width), "share %v width %d", tt.share, tt.width)
	}
}
