package orders

import (
	"errors"
	"fmt"
)

var ErrCartEmpty = errors.New("cart is empty")

// Missing checkout context: the shopper must restart from an earlier step.
var (
	ErrMissingPendingOrder = errors.New("no pending order found")
	ErrMissingUserDetails  = errors.New("user details not found")
)

// RejectedError carries the server's refusal verbatim. The cart is kept so
// the shopper can retry.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return "order rejected by server"
	}
	return fmt.Sprintf("order rejected: %s", e.Message)
}

// NotificationError is the secondary failure: the order is placed but the
// confirmation email did not go out.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("confirmation email failed: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
