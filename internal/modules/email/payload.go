package email

// The confirmation endpoint wants human-readable values, not raw codes:
// Yes/No flags, "Credit Card"/"Cash", "Paid"/"Pending", numbers as strings.

type Person struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Country   string `json:"country"`
	ZipCode   string `json:"zip_code"`
}

type Item struct {
	Name            string `json:"name"`
	Size            string `json:"size"`
	Color           string `json:"color"`
	Quantity        int    `json:"quantity"`
	TotalPrice      string `json:"total_price"`
	Personalization string `json:"personalization"` // text or "No"
	Pack            string `json:"pack"`            // "Yes" | "No"
	Box             string `json:"box"`             // "Yes" | "No"
}

type PriceDetails struct {
	Subtotal                 string `json:"subtotal"`
	ShippingCost             string `json:"shipping_cost"`
	NewsletterDiscountAmount string `json:"newsletter_discount_amount"`
	FinalTotal               string `json:"final_total"`
}

type Payment struct {
	Method string `json:"method"` // "Credit Card" | "Cash"
	Status string `json:"status"` // "Paid" | "Pending"
}

type ConfirmationEmail struct {
	UserDetails  Person       `json:"user_details"`
	OrderID      string       `json:"order_id"`
	Items        []Item       `json:"items"`
	PriceDetails PriceDetails `json:"price_details"`
	Payment      Payment      `json:"payment"`
}
