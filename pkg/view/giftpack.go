package view

import (
	"fioriforyou.com/app/internal/catalog"
	"fioriforyou.com/app/internal/modules/category"
	"fioriforyou.com/app/internal/modules/giftpack"
)

type GiftPackSlot struct {
	Index int            `json:"index"`
	Item  *giftpack.Item `json:"item,omitempty"`
}

type GiftPack struct {
	PackType giftpack.PackType `json:"pack_type"`
	Slots    []GiftPackSlot    `json:"slots"`
	Filled   int               `json:"filled"`
}

func FromConfigurator(c *giftpack.Configurator) GiftPack {
	slots := c.Slots()
	v := GiftPack{
		PackType: c.PackType(),
		Slots:    make([]GiftPackSlot, 0, len(slots)),
	}
	for i, s := range slots {
		v.Slots = append(v.Slots, GiftPackSlot{Index: i, Item: s.Item})
		if !s.Empty() {
			v.Filled++
		}
	}
	return v
}

// AssignDialog is what the slot dialog needs to render: the product, its
// candidate sizes and the personalization rule, plus the prefill when
// editing an occupied slot.
type AssignDialog struct {
	SlotIndex int     `json:"slot_index"`
	Product   Product `json:"product"`
	Editing   bool    `json:"editing"`

	Sizes      []string `json:"sizes,omitempty"`
	UniqueSize bool     `json:"unique_size"`

	Personalizable     bool `json:"personalizable"`
	MaxPersonalization int  `json:"max_personalization,omitempty"`

	Size            string `json:"size,omitempty"`
	Personalization string `json:"personalization,omitempty"`
}

func NewAssignDialog(slotIndex int, p catalog.Product) AssignDialog {
	rule := category.RuleFor(p.ItemGroup)
	d := AssignDialog{
		SlotIndex:      slotIndex,
		Product:        FromProduct(p),
		Sizes:          giftpack.AvailableSizes(p),
		UniqueSize:     !rule.HasSizes,
		Personalizable: rule.Personalizable,
	}
	if rule.Personalizable {
		d.MaxPersonalization = rule.MaxPersonalization
	}
	return d
}
