package session

import (
	"time"

	"gorm.io/datatypes"
)

// Session is the explicit per-shopper application context: everything the
// storefront used to scatter across browser storage lives in this row.
// Populated as the shopper moves through the funnel, cleared on a
// successful order.
type Session struct {
	ID                    string `gorm:"primaryKey;size:64"`
	PackType              string `gorm:"size:64"`
	HasNewsletterDiscount bool

	CartLines     datatypes.JSON // []cart.Line
	GiftPackSlots datatypes.JSON // giftpack.Snapshot
	CanvasScene   datatypes.JSON // studio.Snapshot
	UserDetails   datatypes.JSON // UserDetails
	PendingOrder  datatypes.JSON // PendingOrder

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Session) TableName() string { return "shopper_sessions" }

// UserDetails is the contact/shipping record captured at checkout.
type UserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Country   string `json:"country"`
	ZipCode   string `json:"zip_code"`
}

// PendingOrder is the snapshot written when the shopper leaves for payment
// and read back by the submission pipeline.
type PendingOrder struct {
	OrderID string `json:"order_id"`
	PayURL  string `json:"pay_url"`
}
