package orders

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"fioriforyou.com/app/internal/modules/category"
	"fioriforyou.com/app/internal/modules/email"
	"fioriforyou.com/app/internal/modules/session"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// API is the remote order surface the pipeline drives.
type API interface {
	SubmitOrder(ctx context.Context, p Payload) error
	DecrementStock(ctx context.Context, productID, sizeKey string, qty int) error
}

// SessionCleaner clears order-scoped session state after success.
type SessionCleaner interface {
	ClearCheckout(ctx context.Context, id string) error
}

// TestModePayURL short-circuits the order POST: the payload is surfaced for
// inspection instead and the pipeline still succeeds.
const TestModePayURL = "test-mode"

type Service struct {
	api      API
	sender   email.Sender
	sessions SessionCleaner
}

func NewService(api API, sender email.Sender, sessions SessionCleaner) *Service {
	return &Service{api: api, sender: sender, sessions: sessions}
}

// Result reports where the pipeline ended up. Warning carries the secondary
// notification failure; the order is placed regardless.
type Result struct {
	State    State
	OrderID  string
	TestMode bool
	Payload  *Payload
	Warning  *NotificationError
}

// Submit runs the whole pipeline for one session: context checks, remote
// stock decrement, order POST, confirmation email, session cleanup.
func (s *Service) Submit(ctx context.Context, sess session.Session) (Result, error) {
	res := Result{State: StateSubmitting}

	pending, ok := sess.Pending()
	if !ok {
		res.State = StateFailed
		return res, ErrMissingPendingOrder
	}
	details, ok := sess.Details()
	if !ok {
		res.State = StateFailed
		return res, ErrMissingUserDetails
	}

	c, err := sess.Cart()
	if err != nil {
		res.State = StateFailed
		return res, err
	}
	if len(c.Lines) == 0 {
		res.State = StateFailed
		return res, ErrCartEmpty
	}

	// Best-effort stock decrement, one update per line. Failures are logged
	// and already-applied decrements are NOT compensated; this mirrors the
	// shop's historical behavior and is deliberately left as is.
	for _, l := range c.Lines {
		if err := s.api.DecrementStock(ctx, strconv.Itoa(l.ProductID), stockKeyFor(l.Size), l.Quantity); err != nil {
			log.Printf("Submit: stock decrement failed for product=%d size=%s: %v", l.ProductID, l.Size, err)
		}
	}

	payload := BuildPayload(sess, c, details, pending, time.Now())
	res.OrderID = payload.OrderID

	if pending.PayURL == TestModePayURL {
		res.TestMode = true
		res.Payload = &payload
	} else {
		if err := s.api.SubmitOrder(ctx, payload); err != nil {
			res.State = StateFailed
			return res, err
		}
	}

	// Secondary step: notification failure never rolls the order back.
	if err := s.sender.SendOrderConfirmation(ctx, payload.ConfirmationEmail()); err != nil {
		log.Printf("Submit: confirmation email failed for order=%s: %v", payload.OrderID, err)
		res.Warning = &NotificationError{Err: err}
	}

	if err := s.sessions.ClearCheckout(ctx, sess.ID); err != nil {
		log.Printf("Submit: session cleanup failed for order=%s: %v", payload.OrderID, err)
	}

	res.State = StateSucceeded
	return res, nil
}

func stockKeyFor(size string) string {
	s := strings.TrimSpace(size)
	if s == "" || s == "-" || strings.EqualFold(s, "unique") {
		return "unique"
	}
	return category.StockKey(s)
}
