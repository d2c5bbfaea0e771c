package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount string
		want     float64
	}{
		{"empty discount", 120, "", 120},
		{"non numeric", 120, "abc", 120},
		{"zero", 120, "0", 120},
		{"negative", 120, "-10", 120},
		{"ten percent", 120, "10", 108},
		{"half", 200, "50", 100},
		{"full", 80, "100", 0},
		{"decimal discount", 100, "12.5", 87.5},
		{"whitespace around value", 100, " 25 ", 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DiscountedPrice(tt.price, tt.discount), 1e-9)
		})
	}
}

func TestDiscountedPriceStrictlyLower(t *testing.T) {
	for _, d := range []string{"1", "25", "99.9", "100"} {
		got := DiscountedPrice(150, d)
		assert.Less(t, got, 150.0, "discount %s", d)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.00", FormatPrice(0))
	assert.Equal(t, "19.90", FormatPrice(19.9))
	assert.Equal(t, "1234.57", FormatPrice(1234.567))
}
