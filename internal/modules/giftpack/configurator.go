package giftpack

import (
	"fmt"

	"fioriforyou.com/app/internal/catalog"
	"fioriforyou.com/app/internal/modules/category"
)

// Item is what a confirmed slot holds: the product plus the choices made in
// the assignment dialog.
type Item struct {
	Product         catalog.Product `json:"product"`
	Size            string          `json:"size"`
	Personalization string          `json:"personalization"`
}

// Slot is one assignable position inside the pack.
type Slot struct {
	Item *Item `json:"item,omitempty"`
}

func (s Slot) Empty() bool { return s.Item == nil }

// dialog is the transient edit state between BeginAssign and ConfirmAssign.
type dialog struct {
	slotIndex int
	product   catalog.Product
	editing   bool
}

// Configurator drives the gift-pack composition flow: a fixed slice of
// container slots sized by the pack type, and at most one open dialog.
// It is touched from a single request at a time, no locking here.
type Configurator struct {
	packType PackType
	slots    []Slot
	dlg      *dialog
}

func NewConfigurator(packTypeName string) *Configurator {
	pt := TypeByName(packTypeName)
	return &Configurator{
		packType: pt,
		slots:    make([]Slot, pt.Containers),
	}
}

func (c *Configurator) PackType() PackType { return c.packType }
func (c *Configurator) Slots() []Slot      { return c.slots }

// DialogOpen reports the open dialog target, if any.
func (c *Configurator) DialogOpen() (slotIndex int, editing bool, ok bool) {
	if c.dlg == nil {
		return 0, false, false
	}
	return c.dlg.slotIndex, c.dlg.editing, true
}

// AvailableSizes derives the candidate size list for a product from the
// category capability table, keeping only sizes with stock. No-size
// categories return nil: their implicit size is "unique".
func AvailableSizes(p catalog.Product) []string {
	keys := category.SizeKeysFor(p.ItemGroup)
	if keys == nil {
		return nil
	}
	var out []string
	for _, k := range keys {
		if p.Sizes[k] > 0 {
			out = append(out, category.DisplaySize(k))
		}
	}
	return out
}

// BeginAssign opens the dialog targeting a slot. Nothing is written to the
// slot until ConfirmAssign.
func (c *Configurator) BeginAssign(slotIndex int, p catalog.Product) error {
	if err := c.checkIndex(slotIndex); err != nil {
		return err
	}
	c.dlg = &dialog{slotIndex: slotIndex, product: p}
	return nil
}

// EditAssign reopens the dialog on an occupied slot, prefilled from the
// current item, so ConfirmAssign replaces instead of appending.
func (c *Configurator) EditAssign(slotIndex int) (Item, error) {
	if err := c.checkIndex(slotIndex); err != nil {
		return Item{}, err
	}
	slot := c.slots[slotIndex]
	if slot.Empty() {
		return Item{}, ErrEmptySlot
	}
	c.dlg = &dialog{slotIndex: slotIndex, product: slot.Item.Product, editing: true}
	return *slot.Item, nil
}

// ConfirmAssign validates the dialog choices and writes the item into the
// targeted slot, then closes the dialog.
func (c *Configurator) ConfirmAssign(size, personalization string) error {
	if c.dlg == nil {
		return ErrNoDialog
	}
	p := c.dlg.product
	rule := category.RuleFor(p.ItemGroup)

	if !rule.HasSizes {
		size = "unique"
	} else {
		avail := AvailableSizes(p)
		if len(avail) == 0 {
			return ErrNoSizesAvailable
		}
		if size == "" {
			return ErrSizeRequired
		}
		if !contains(avail, size) {
			return fmt.Errorf("taille %q indisponible: %w", size, ErrSizeRequired)
		}
	}

	if rule.Personalizable && len([]rune(personalization)) > rule.MaxPersonalization {
		return &PersonalizationTooLongError{Max: rule.MaxPersonalization, Itemgroup: p.ItemGroup}
	}

	c.slots[c.dlg.slotIndex] = Slot{Item: &Item{
		Product:         p,
		Size:            size,
		Personalization: personalization,
	}}
	c.dlg = nil
	return nil
}

// CancelAssign closes the dialog without touching the slot.
func (c *Configurator) CancelAssign() { c.dlg = nil }

// RemoveAssign clears a slot, regardless of dialog state.
func (c *Configurator) RemoveAssign(slotIndex int) error {
	if err := c.checkIndex(slotIndex); err != nil {
		return err
	}
	c.slots[slotIndex] = Slot{}
	return nil
}

// Items returns the confirmed items in slot order, skipping empty slots.
func (c *Configurator) Items() []Item {
	var out []Item
	for _, s := range c.slots {
		if !s.Empty() {
			out = append(out, *s.Item)
		}
	}
	return out
}

// Snapshot and Restore round-trip the slot state for session persistence.
func (c *Configurator) Snapshot() Snapshot {
	return Snapshot{PackType: c.packType.Name, Slots: c.slots}
}

func Restore(snap Snapshot) *Configurator {
	c := NewConfigurator(snap.PackType)
	for i := range snap.Slots {
		if i < len(c.slots) {
			c.slots[i] = snap.Slots[i]
		}
	}
	return c
}

type Snapshot struct {
	PackType string `json:"pack_type"`
	Slots    []Slot `json:"slots"`
}

func (c *Configurator) checkIndex(i int) error {
	if i < 0 || i >= len(c.slots) {
		return &SlotIndexError{Index: i, Count: len(c.slots)}
	}
	return nil
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
