package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts finished orders and best-effort stock decrements to the
// remote shop API.
type Client struct {
	orderEndpoint string
	stockEndpoint string
	http          *http.Client
}

func NewClient(orderEndpoint, stockEndpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		orderEndpoint: orderEndpoint,
		stockEndpoint: stockEndpoint,
		http:          httpClient,
	}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitOrder posts the payload. A transport failure, a non-2xx status or a
// success:false body all come back as *RejectedError with whatever message
// the server gave.
func (c *Client) SubmitOrder(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.orderEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("order submission: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return &RejectedError{Message: fmt.Sprintf("%d - %s", res.StatusCode, string(detail))}
	}

	var sr submitResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return fmt.Errorf("order submission: decode response: %w", err)
	}
	if !sr.Success {
		return &RejectedError{Message: sr.Message}
	}
	return nil
}

type stockUpdate struct {
	IDProduct string `json:"id_product"`
	SizeKey   string `json:"size_key"`
	Quantity  int    `json:"quantity"`
}

// DecrementStock knocks qty units off one size of one product.
func (c *Client) DecrementStock(ctx context.Context, productID, sizeKey string, qty int) error {
	body, err := json.Marshal(stockUpdate{IDProduct: productID, SizeKey: sizeKey, Quantity: qty})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.stockEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("stock update: http %d", res.StatusCode)
	}
	return nil
}
