package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fioriforyou.com/app/internal/modules/cart"
	"fioriforyou.com/app/internal/modules/studio"
)

func TestSessionCartRoundTrip(t *testing.T) {
	c := cart.Cart{
		Lines:                 []cart.Line{{ProductID: 42, Size: "M", Quantity: 2, Price: 129}},
		HasNewsletterDiscount: true,
	}
	b, err := json.Marshal(c)
	require.NoError(t, err)

	sess := Session{CartLines: b}
	got, err := sess.Cart()
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 42, got.Lines[0].ProductID)
	assert.True(t, got.HasNewsletterDiscount)
}

func TestSessionEmptyAccessors(t *testing.T) {
	var sess Session

	c, err := sess.Cart()
	require.NoError(t, err)
	assert.Empty(t, c.Lines)

	cfg, err := sess.Configurator()
	require.NoError(t, err)
	assert.Len(t, cfg.Slots(), 3) // default pack type

	_, ok := sess.Details()
	assert.False(t, ok)

	_, ok = sess.Pending()
	assert.False(t, ok)
}

func TestSessionDetailsAndPending(t *testing.T) {
	d := UserDetails{FirstName: "Flen", LastName: "Falten", Email: "flen@example.tn"}
	db, err := json.Marshal(d)
	require.NoError(t, err)

	po := PendingOrder{OrderID: "ORDER-123", PayURL: "test-mode"}
	pb, err := json.Marshal(po)
	require.NoError(t, err)

	sess := Session{UserDetails: db, PendingOrder: pb}

	gotD, ok := sess.Details()
	require.True(t, ok)
	assert.Equal(t, "Flen", gotD.FirstName)

	gotP, ok := sess.Pending()
	require.True(t, ok)
	assert.Equal(t, "ORDER-123", gotP.OrderID)
}

func TestPendingRequiresOrderID(t *testing.T) {
	pb, _ := json.Marshal(PendingOrder{PayURL: "x"})
	sess := Session{PendingOrder: pb}
	_, ok := sess.Pending()
	assert.False(t, ok)
}

func TestSessionCanvasRoundTrip(t *testing.T) {
	scene := studio.NewScene(500, 500, "chemises")
	scene.SetText("AB", "Montserrat")
	b, err := json.Marshal(scene.Snapshot())
	require.NoError(t, err)

	sess := Session{CanvasScene: b}
	got, found, err := sess.Canvas()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "chemises", got.Itemgroup())
	assert.Equal(t, "AB", got.TextBody())
	require.NotNil(t, got.Text())

	var empty Session
	_, found, err = empty.Canvas()
	require.NoError(t, err)
	assert.False(t, found)
}
