package email

import "context"

// MockSender records messages for tests and local runs without a relay.
type MockSender struct {
	Sent []ConfirmationEmail
	Err  error
}

func (m *MockSender) SendOrderConfirmation(_ context.Context, msg ConfirmationEmail) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, msg)
	return nil
}
