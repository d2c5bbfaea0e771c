package cart

import (
	"strings"

	"fioriforyou.com/app/internal/catalog"
	"fioriforyou.com/app/internal/pricing"
)

// Shipping policy: free above the threshold, flat fee below.
const (
	FreeShippingThreshold = 500.0
	FlatShippingFee       = 7.0
)

// Newsletter discount: 5% off the subtotal, applied at most once per
// session.
const newsletterDiscountRate = 0.05

// Line is one chosen item with everything checkout needs later.
type Line struct {
	ProductID       int     `json:"product_id"`
	Name            string  `json:"name"`
	Color           string  `json:"color"`
	Price           float64 `json:"price"`
	Discount        string  `json:"discount"`
	Size            string  `json:"size"`
	Quantity        int     `json:"quantity"`
	Personalization string  `json:"personalization"`
	WithBox         *bool   `json:"with_box,omitempty"`
	Pack            string  `json:"pack,omitempty"`
	Image           string  `json:"image,omitempty"`
}

// UnitPrice is the line's discounted unit price.
func (l Line) UnitPrice() float64 {
	return pricing.DiscountedPrice(l.Price, l.Discount)
}

// Totals is the computed price breakdown.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Cart accumulates lines plus the one-shot newsletter discount flag. It is
// only ever touched from a single request, state lives in the session store
// between requests.
type Cart struct {
	Lines                 []Line `json:"lines"`
	HasNewsletterDiscount bool   `json:"has_newsletter_discount"`
}

// Add appends a line after a stock guard: the requested quantity must not
// exceed the known stock for the chosen size. The cart is left untouched on
// failure.
func (c *Cart) Add(p catalog.Product, line Line) error {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	avail := availableStock(p, line.Size)
	if line.Quantity > avail {
		return &InsufficientStockError{
			ProductID: p.ID,
			Size:      line.Size,
			Requested: line.Quantity,
			Available: avail,
		}
	}
	c.Lines = append(c.Lines, line)
	return nil
}

// Remove drops the line at index; out-of-range indexes are ignored.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
}

func (c *Cart) Clear() {
	c.Lines = nil
	c.HasNewsletterDiscount = false
}

func (c *Cart) Count() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// CalculateTotal computes subtotal over discounted unit prices, the
// newsletter reduction, and the floored total.
func (c *Cart) CalculateTotal() Totals {
	subtotal := 0.0
	for _, l := range c.Lines {
		subtotal += l.UnitPrice() * float64(l.Quantity)
	}

	discount := 0.0
	if c.HasNewsletterDiscount {
		discount = subtotal * newsletterDiscountRate
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	return Totals{Subtotal: subtotal, Discount: discount, Total: total}
}

// ShippingCost is a step function of the subtotal.
func ShippingCost(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

func availableStock(p catalog.Product, size string) int {
	s := strings.TrimSpace(size)
	if s == "" || strings.EqualFold(s, "unique") || s == "-" {
		return p.Quantity
	}
	return p.StockFor(s)
}
