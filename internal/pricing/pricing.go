package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// DiscountedPrice applies a percentage discount carried as a raw string from
// the catalog API. An empty, non-numeric or non-positive discount leaves the
// price unchanged.
func DiscountedPrice(price float64, discount string) float64 {
	d, err := strconv.ParseFloat(strings.TrimSpace(discount), 64)
	if err != nil || d <= 0 {
		return price
	}
	return price - (d/100)*price
}

func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
