package category

import "strings"

// SizeSet selects which size labels a product category carries.
type SizeSet int

const (
	SizeSetNone SizeSet = iota
	SizeSetApparel
	SizeSetSuit
)

// Rule is the per-itemgroup capability table. The storefront used to scatter
// these lists across the size selector, the gift-pack dialog and the
// personalization dialog; they live here now, values unchanged.
type Rule struct {
	HasSizes           bool
	SizeSet            SizeSet
	Personalizable     bool
	MaxPersonalization int
	BoxEligible        bool
}

const defaultMaxPersonalization = 100

var rules = map[string]Rule{
	"chemises":      {HasSizes: true, SizeSet: SizeSetApparel, Personalizable: true, MaxPersonalization: 4, BoxEligible: true},
	"costumes":      {HasSizes: true, SizeSet: SizeSetSuit, Personalizable: true, MaxPersonalization: defaultMaxPersonalization},
	"blazers":       {HasSizes: true, SizeSet: SizeSetApparel, Personalizable: true, MaxPersonalization: defaultMaxPersonalization},
	"ceintures":     {HasSizes: true, SizeSet: SizeSetApparel, Personalizable: true, MaxPersonalization: defaultMaxPersonalization},
	"cravates":      {HasSizes: false, SizeSet: SizeSetNone, Personalizable: true, MaxPersonalization: defaultMaxPersonalization},
	"portefeuilles": {HasSizes: false, SizeSet: SizeSetNone, Personalizable: true, MaxPersonalization: defaultMaxPersonalization},
	"porte-cles":    {HasSizes: false, SizeSet: SizeSetNone, Personalizable: true, MaxPersonalization: defaultMaxPersonalization},
}

// RuleFor returns the capability rule for an itemgroup. Unknown groups get
// the apparel size set and the default personalization budget.
func RuleFor(itemgroup string) Rule {
	if r, ok := rules[strings.ToLower(strings.TrimSpace(itemgroup))]; ok {
		return r
	}
	return Rule{HasSizes: true, SizeSet: SizeSetApparel, Personalizable: true, MaxPersonalization: defaultMaxPersonalization}
}

// ApparelSizeKeys and SuitSizeKeys are the canonical stock-map keys, in
// display order.
var (
	ApparelSizeKeys = []string{"s", "m", "l", "xl", "xxl", "3xl"}
	SuitSizeKeys    = []string{"48", "50", "52", "54", "56", "58"}
)

// apparelDetailSizeKeys carries the legacy xxl2 key on top of the apparel
// set. Product listings still surface it; the configurator dialog does not.
var apparelDetailSizeKeys = []string{"s", "m", "l", "xl", "xxl", "xxl2", "3xl"}

// SizeKeysFor returns the stock keys a category draws its size list from.
func SizeKeysFor(itemgroup string) []string {
	r := RuleFor(itemgroup)
	switch r.SizeSet {
	case SizeSetSuit:
		return SuitSizeKeys
	case SizeSetApparel:
		return ApparelSizeKeys
	default:
		return nil
	}
}

// DetailSizeKeysFor returns the stock keys the product page lists, xxl2
// included for apparel categories.
func DetailSizeKeysFor(itemgroup string) []string {
	r := RuleFor(itemgroup)
	switch r.SizeSet {
	case SizeSetSuit:
		return SuitSizeKeys
	case SizeSetApparel:
		return apparelDetailSizeKeys
	default:
		return nil
	}
}

// DisplaySize maps an internal size key to its shopper-facing label. The
// odd one out is the legacy "xxl2" key which renders as "2XXL".
func DisplaySize(key string) string {
	if strings.EqualFold(key, "xxl2") {
		return "2XXL"
	}
	return strings.ToUpper(key)
}

// StockKey is the reverse mapping, for reading stock back from a displayed
// label.
func StockKey(display string) string {
	if strings.EqualFold(display, "2xxl") {
		return "xxl2"
	}
	return strings.ToLower(display)
}
