package giftpack

import (
	"errors"
	"fmt"
)

var (
	ErrNoDialog         = errors.New("no assignment dialog is open")
	ErrSizeRequired     = errors.New("une taille doit être sélectionnée")
	ErrNoSizesAvailable = errors.New("aucune taille disponible pour ce produit")
	ErrEmptySlot        = errors.New("slot is empty")
)

type SlotIndexError struct {
	Index int
	Count int
}

func (e *SlotIndexError) Error() string {
	return fmt.Sprintf("slot index %d out of range (pack has %d containers)", e.Index, e.Count)
}

type PersonalizationTooLongError struct {
	Max       int
	Itemgroup string
}

func (e *PersonalizationTooLongError) Error() string {
	return fmt.Sprintf("personalization limited to %d characters for %s", e.Max, e.Itemgroup)
}
