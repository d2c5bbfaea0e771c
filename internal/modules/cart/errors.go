package cart

import "fmt"

// InsufficientStockError blocks an add whose quantity exceeds the known
// stock for the chosen size.
type InsufficientStockError struct {
	ProductID int
	Size      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: product=%d size=%s requested=%d available=%d",
		e.ProductID, e.Size, e.Requested, e.Available)
}
