package view

import (
	"fioriforyou.com/app/internal/catalog"
	"fioriforyou.com/app/internal/modules/category"
	"fioriforyou.com/app/internal/pricing"
)

// Product is the catalog record dressed for the storefront: display prices
// are pre-formatted and size availability is resolved through the category
// rules.
type Product struct {
	catalog.Product

	DisplayPrice    string   `json:"display_price"`
	DiscountedPrice string   `json:"discounted_price"`
	AvailableSizes  []string `json:"available_sizes,omitempty"`
	UniqueSize      bool     `json:"unique_size"`

	Personalizable     bool `json:"personalizable"`
	MaxPersonalization int  `json:"max_personalization,omitempty"`
	BoxEligible        bool `json:"box_eligible"`
}

func FromProduct(p catalog.Product) Product {
	rule := category.RuleFor(p.ItemGroup)

	v := Product{
		Product:         p,
		DisplayPrice:    pricing.FormatPrice(p.Price),
		DiscountedPrice: pricing.FormatPrice(pricing.DiscountedPrice(p.Price, p.Discount)),
		UniqueSize:      !rule.HasSizes,
		Personalizable:  rule.Personalizable,
		BoxEligible:     rule.BoxEligible,
	}
	if rule.Personalizable {
		v.MaxPersonalization = rule.MaxPersonalization
	}
	if rule.HasSizes {
		for _, key := range category.DetailSizeKeysFor(p.ItemGroup) {
			if p.Sizes[key] > 0 {
				v.AvailableSizes = append(v.AvailableSizes, category.DisplaySize(key))
			}
		}
	}
	return v
}

func FromProducts(ps []catalog.Product) []Product {
	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p))
	}
	return out
}
