package orders

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fioriforyou.com/app/internal/modules/cart"
	"fioriforyou.com/app/internal/modules/email"
	"fioriforyou.com/app/internal/modules/session"
)

type fakeAPI struct {
	submitErr    error
	submitted    []Payload
	decremented  []stockUpdate
	decrementErr error
}

func (f *fakeAPI) SubmitOrder(_ context.Context, p Payload) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.submitted = append(f.submitted, p)
	return nil
}

func (f *fakeAPI) DecrementStock(_ context.Context, productID, sizeKey string, qty int) error {
	f.decremented = append(f.decremented, stockUpdate{IDProduct: productID, SizeKey: sizeKey, Quantity: qty})
	return f.decrementErr
}

type fakeCleaner struct{ cleared []string }

func (f *fakeCleaner) ClearCheckout(_ context.Context, id string) error {
	f.cleared = append(f.cleared, id)
	return nil
}

func testSession(t *testing.T, payURL string) session.Session {
	t.Helper()
	c := cart.Cart{Lines: []cart.Line{
		{ProductID: 42, Name: "Chemise Oxford", Price: 100, Discount: "10", Size: "M", Quantity: 2, Personalization: "ABCD", WithBox: boolPtr(true)},
		{ProductID: 9, Name: "Cravate soie", Price: 59, Size: "unique", Quantity: 1},
	}}
	cb, err := json.Marshal(c)
	require.NoError(t, err)

	db, err := json.Marshal(session.UserDetails{
		FirstName: "Flen", LastName: "Falten", Email: "flen@example.tn",
		Phone: "21612345", Address: "Rue du Lac", Country: "TN", ZipCode: "1053",
	})
	require.NoError(t, err)

	pb, err := json.Marshal(session.PendingOrder{OrderID: "ORDER-1", PayURL: payURL})
	require.NoError(t, err)

	return session.Session{
		ID:           "sess-1",
		PackType:     "Pack Prestige",
		CartLines:    cb,
		UserDetails:  db,
		PendingOrder: pb,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestSubmitHappyPath(t *testing.T) {
	api := &fakeAPI{}
	sender := &email.MockSender{}
	cleaner := &fakeCleaner{}
	svc := NewService(api, sender, cleaner)

	res, err := svc.Submit(context.Background(), testSession(t, "https://pay.example/x"))
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, res.State)
	assert.Equal(t, "ORDER-1", res.OrderID)
	assert.Nil(t, res.Warning)

	// one decrement per line, sizes mapped to stock keys
	require.Len(t, api.decremented, 2)
	assert.Equal(t, stockUpdate{IDProduct: "42", SizeKey: "m", Quantity: 2}, api.decremented[0])
	assert.Equal(t, stockUpdate{IDProduct: "9", SizeKey: "unique", Quantity: 1}, api.decremented[1])

	require.Len(t, api.submitted, 1)
	p := api.submitted[0]
	assert.Equal(t, "ORDER-1", p.OrderID)
	require.Len(t, p.Items, 2)
	assert.Equal(t, 90.0, p.Items[0].Price) // 10% discount applied
	assert.Equal(t, "Avec box", p.Items[0].Box)
	assert.Equal(t, "Sans box", p.Items[1].Box)
	assert.Equal(t, "Pack Prestige", p.Items[0].Pack)
	assert.Equal(t, "-", p.Items[1].Personalization)
	assert.InDelta(t, 239, p.PriceDetails.Subtotal, 1e-9)
	assert.Equal(t, 7.0, p.PriceDetails.ShippingCost)
	assert.InDelta(t, 246, p.PriceDetails.FinalTotal, 1e-9)

	// email reshaped to the relay's form
	require.Len(t, sender.Sent, 1)
	msg := sender.Sent[0]
	assert.Equal(t, "Credit Card", msg.Payment.Method)
	assert.Equal(t, "Paid", msg.Payment.Status)
	assert.Equal(t, "Yes", msg.Items[0].Box)
	assert.Equal(t, "ABCD", msg.Items[0].Personalization)
	assert.Equal(t, "No", msg.Items[1].Personalization)
	assert.Equal(t, "Yes", msg.Items[0].Pack)
	assert.Equal(t, "180.00", msg.Items[0].TotalPrice)

	// session cleared on success
	assert.Equal(t, []string{"sess-1"}, cleaner.cleared)
}

func TestSubmitMissingPendingOrder(t *testing.T) {
	sess := testSession(t, "x")
	sess.PendingOrder = nil

	svc := NewService(&fakeAPI{}, &email.MockSender{}, &fakeCleaner{})
	res, err := svc.Submit(context.Background(), sess)
	assert.ErrorIs(t, err, ErrMissingPendingOrder)
	assert.Equal(t, StateFailed, res.State)
}

func TestSubmitMissingUserDetails(t *testing.T) {
	sess := testSession(t, "x")
	sess.UserDetails = nil

	svc := NewService(&fakeAPI{}, &email.MockSender{}, &fakeCleaner{})
	res, err := svc.Submit(context.Background(), sess)
	assert.ErrorIs(t, err, ErrMissingUserDetails)
	assert.Equal(t, StateFailed, res.State)
}

func TestSubmitServerRejection(t *testing.T) {
	api := &fakeAPI{submitErr: &RejectedError{Message: "out of stock"}}
	cleaner := &fakeCleaner{}
	svc := NewService(api, &email.MockSender{}, cleaner)

	res, err := svc.Submit(context.Background(), testSession(t, "x"))
	var re *RejectedError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "out of stock", re.Message)
	assert.Equal(t, StateFailed, res.State)

	// cart must NOT be cleared so the shopper can retry
	assert.Empty(t, cleaner.cleared)
}

func TestSubmitEmailFailureIsSecondary(t *testing.T) {
	api := &fakeAPI{}
	sender := &email.MockSender{Err: errors.New("smtp relay down")}
	cleaner := &fakeCleaner{}
	svc := NewService(api, sender, cleaner)

	res, err := svc.Submit(context.Background(), testSession(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, res.State)
	require.NotNil(t, res.Warning)
	assert.ErrorContains(t, res.Warning, "smtp relay down")

	// order placed, session cleared anyway
	assert.Len(t, api.submitted, 1)
	assert.Equal(t, []string{"sess-1"}, cleaner.cleared)
}

func TestSubmitTestModeSkipsOrderPost(t *testing.T) {
	api := &fakeAPI{}
	svc := NewService(api, &email.MockSender{}, &fakeCleaner{})

	res, err := svc.Submit(context.Background(), testSession(t, TestModePayURL))
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, res.State)
	assert.True(t, res.TestMode)
	require.NotNil(t, res.Payload)
	assert.Empty(t, api.submitted)
	assert.Equal(t, TestModePayURL, res.Payload.Payment.KonnectPaymentURL)
}

func TestSubmitStockDecrementFailureIsBestEffort(t *testing.T) {
	api := &fakeAPI{decrementErr: errors.New("remote 500")}
	svc := NewService(api, &email.MockSender{}, &fakeCleaner{})

	res, err := svc.Submit(context.Background(), testSession(t, "x"))
	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, res.State)
	assert.Len(t, api.submitted, 1)
}
