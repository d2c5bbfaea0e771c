package view

import (
	"fioriforyou.com/app/internal/modules/cart"
	"fioriforyou.com/app/internal/pricing"
)

type CartLine struct {
	cart.Line

	Index            int    `json:"index"`
	DisplayUnitPrice string `json:"display_unit_price"`
	DisplayLineTotal string `json:"display_line_total"`
}

// Cart is the cart plus its computed breakdown, every amount pre-formatted.
type Cart struct {
	Lines                 []CartLine `json:"lines"`
	Count                 int        `json:"count"`
	HasNewsletterDiscount bool       `json:"has_newsletter_discount"`

	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

func FromCart(c cart.Cart) Cart {
	totals := c.CalculateTotal()
	shipping := cart.ShippingCost(totals.Subtotal)

	v := Cart{
		Lines:                 make([]CartLine, 0, len(c.Lines)),
		Count:                 c.Count(),
		HasNewsletterDiscount: c.HasNewsletterDiscount,
		Subtotal:              pricing.FormatPrice(totals.Subtotal),
		Discount:              pricing.FormatPrice(totals.Discount),
		Shipping:              pricing.FormatPrice(shipping),
		Total:                 pricing.FormatPrice(totals.Total + shipping),
	}
	for i, l := range c.Lines {
		unit := l.UnitPrice()
		v.Lines = append(v.Lines, CartLine{
			Line:             l,
			Index:            i,
			DisplayUnitPrice: pricing.FormatPrice(unit),
			DisplayLineTotal: pricing.FormatPrice(unit * float64(l.Quantity)),
		})
	}
	return v
}
