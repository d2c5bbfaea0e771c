package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Sender interface {
	SendOrderConfirmation(ctx context.Context, msg ConfirmationEmail) error
}

// HTTPSender posts the confirmation payload to the shop's mail relay.
type HTTPSender struct {
	endpoint string
	http     *http.Client
}

func NewHTTPSender(endpoint string, httpClient *http.Client) *HTTPSender {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPSender{endpoint: endpoint, http: httpClient}
}

func (s *HTTPSender) SendOrderConfirmation(ctx context.Context, msg ConfirmationEmail) error {
	if s.endpoint == "" {
		return fmt.Errorf("email relay endpoint not configured")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")

	res, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("email relay error: %d - %s", res.StatusCode, string(detail))
	}
	return nil
}
