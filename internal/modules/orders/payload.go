package orders

import (
	"strconv"
	"time"

	"fioriforyou.com/app/internal/modules/cart"
	"fioriforyou.com/app/internal/modules/email"
	"fioriforyou.com/app/internal/modules/session"
	"fioriforyou.com/app/internal/pricing"
)

// The external order schema, as the remote endpoint expects it.

type ItemPayload struct {
	ItemID          string  `json:"item_id"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"` // discounted unit price
	TotalPrice      float64 `json:"total_price"`
	Name            string  `json:"name"`
	Size            string  `json:"size"`            // "-" when sizeless
	Color           string  `json:"color"`           // "-" when unknown
	Personalization string  `json:"personalization"` // "-" when empty
	Pack            string  `json:"pack"`            // pack name or "aucun"
	Box             string  `json:"box"`             // "Avec box" | "Sans box"
	Image           string  `json:"image,omitempty"`
}

type PriceDetailsPayload struct {
	Subtotal                 float64 `json:"subtotal"`
	ShippingCost             float64 `json:"shipping_cost"`
	HasNewsletterDiscount    bool    `json:"has_newsletter_discount"`
	NewsletterDiscountAmount float64 `json:"newsletter_discount_amount"`
	FinalTotal               float64 `json:"final_total"`
}

type PaymentPayload struct {
	Method            string `json:"method"` // "card" | "cash"
	Status            string `json:"status"`
	KonnectPaymentURL string `json:"konnect_payment_url"`
	CompletedAt       string `json:"completed_at"`
}

type OrderStatusPayload struct {
	Status      string  `json:"status"`
	ShippedAt   *string `json:"shipped_at"`
	DeliveredAt *string `json:"delivered_at"`
}

type Payload struct {
	OrderID      string              `json:"order_id"`
	UserDetails  session.UserDetails `json:"user_details"`
	Items        []ItemPayload       `json:"items"`
	PriceDetails PriceDetailsPayload `json:"price_details"`
	Payment      PaymentPayload      `json:"payment"`
	OrderStatus  OrderStatusPayload  `json:"order_status"`
}

// BuildPayload assembles the immutable order snapshot from the session's
// cart and checkout records.
func BuildPayload(sess session.Session, c cart.Cart, details session.UserDetails, pending session.PendingOrder, now time.Time) Payload {
	packName := sess.PackType
	if packName == "" {
		packName = "aucun"
	}

	items := make([]ItemPayload, 0, len(c.Lines))
	orderTotal := 0.0
	for _, l := range c.Lines {
		finalPrice := pricing.DiscountedPrice(l.Price, l.Discount)
		items = append(items, ItemPayload{
			ItemID:          strconv.Itoa(l.ProductID),
			Quantity:        l.Quantity,
			Price:           finalPrice,
			TotalPrice:      finalPrice * float64(l.Quantity),
			Name:            l.Name,
			Size:            dashDefault(l.Size),
			Color:           dashDefault(l.Color),
			Personalization: dashDefault(l.Personalization),
			Pack:            linePack(l, packName),
			Box:             boxLabel(l.WithBox),
			Image:           l.Image,
		})
		orderTotal += finalPrice * float64(l.Quantity)
	}

	totals := c.CalculateTotal()
	shipping := cart.ShippingCost(totals.Subtotal)

	payURL := pending.PayURL
	if payURL == "" {
		payURL = "-"
	}

	return Payload{
		OrderID:     pending.OrderID,
		UserDetails: details,
		Items:       items,
		PriceDetails: PriceDetailsPayload{
			Subtotal:                 orderTotal,
			ShippingCost:             shipping,
			HasNewsletterDiscount:    c.HasNewsletterDiscount,
			NewsletterDiscountAmount: totals.Discount,
			FinalTotal:               orderTotal + shipping - totals.Discount,
		},
		Payment: PaymentPayload{
			Method:            "card",
			Status:            "completed",
			KonnectPaymentURL: payURL,
			CompletedAt:       now.UTC().Format(time.RFC3339),
		},
		OrderStatus: OrderStatusPayload{Status: "pending"},
	}
}

// ConfirmationEmail reshapes the order into the relay's human-readable form.
func (p Payload) ConfirmationEmail() email.ConfirmationEmail {
	items := make([]email.Item, 0, len(p.Items))
	for _, it := range p.Items {
		perso := it.Personalization
		if perso == "" || perso == "-" {
			perso = "No"
		}
		pack := "No"
		if it.Pack != "aucun" {
			pack = "Yes"
		}
		box := "No"
		if it.Box == "Avec box" {
			box = "Yes"
		}
		items = append(items, email.Item{
			Name:            it.Name,
			Size:            it.Size,
			Color:           it.Color,
			Quantity:        it.Quantity,
			TotalPrice:      pricing.FormatPrice(it.TotalPrice),
			Personalization: perso,
			Pack:            pack,
			Box:             box,
		})
	}

	method := "Cash"
	if p.Payment.Method == "card" {
		method = "Credit Card"
	}
	status := "Pending"
	if p.Payment.Status == "completed" {
		status = "Paid"
	}

	return email.ConfirmationEmail{
		UserDetails: email.Person{
			FirstName: p.UserDetails.FirstName,
			LastName:  p.UserDetails.LastName,
			Email:     p.UserDetails.Email,
			Phone:     p.UserDetails.Phone,
			Address:   p.UserDetails.Address,
			Country:   p.UserDetails.Country,
			ZipCode:   p.UserDetails.ZipCode,
		},
		OrderID: p.OrderID,
		Items:   items,
		PriceDetails: email.PriceDetails{
			Subtotal:                 pricing.FormatPrice(p.PriceDetails.Subtotal),
			ShippingCost:             pricing.FormatPrice(p.PriceDetails.ShippingCost),
			NewsletterDiscountAmount: pricing.FormatPrice(p.PriceDetails.NewsletterDiscountAmount),
			FinalTotal:               pricing.FormatPrice(p.PriceDetails.FinalTotal),
		},
		Payment: email.Payment{Method: method, Status: status},
	}
}

func dashDefault(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func linePack(l cart.Line, sessionPack string) string {
	if l.Pack != "" {
		return l.Pack
	}
	return sessionPack
}

func boxLabel(withBox *bool) string {
	if withBox != nil && *withBox {
		return "Avec box"
	}
	return "Sans box"
}
