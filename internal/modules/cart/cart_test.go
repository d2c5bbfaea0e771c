package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fioriforyou.com/app/internal/catalog"
)

func product() catalog.Product {
	return catalog.Product{
		ID: 42, Name: "Chemise Oxford", ItemGroup: "chemises",
		Price: 100, Quantity: 10,
		Sizes: map[string]int{"m": 3, "l": 0},
	}
}

func TestAddGuardsStock(t *testing.T) {
	var c Cart
	p := product()

	err := c.Add(p, Line{ProductID: 42, Price: 100, Size: "M", Quantity: 4})
	var ise *InsufficientStockError
	require.ErrorAs(t, err, &ise)
	assert.Equal(t, 4, ise.Requested)
	assert.Equal(t, 3, ise.Available)
	assert.Empty(t, c.Lines, "cart must stay unchanged on failure")

	require.NoError(t, c.Add(p, Line{ProductID: 42, Price: 100, Size: "M", Quantity: 3}))
	require.Len(t, c.Lines, 1)
}

func TestAddZeroStockSize(t *testing.T) {
	var c Cart
	err := c.Add(product(), Line{ProductID: 42, Size: "L", Quantity: 1})
	var ise *InsufficientStockError
	require.ErrorAs(t, err, &ise)
}

func TestAddUniqueSizeUsesGlobalStock(t *testing.T) {
	var c Cart
	p := catalog.Product{ID: 9, ItemGroup: "cravates", Price: 59, Quantity: 2}
	require.NoError(t, c.Add(p, Line{ProductID: 9, Price: 59, Size: "unique", Quantity: 2}))
	assert.Error(t, c.Add(p, Line{ProductID: 9, Price: 59, Size: "unique", Quantity: 3}))
}

func TestCalculateTotal(t *testing.T) {
	c := Cart{Lines: []Line{
		{Price: 100, Discount: "10", Quantity: 2}, // 90 * 2
		{Price: 59, Discount: "", Quantity: 1},    // 59
	}}
	tot := c.CalculateTotal()
	assert.InDelta(t, 239, tot.Subtotal, 1e-9)
	assert.Zero(t, tot.Discount)
	assert.InDelta(t, 239, tot.Total, 1e-9)

	c.HasNewsletterDiscount = true
	tot = c.CalculateTotal()
	assert.InDelta(t, 239*0.05, tot.Discount, 1e-9)
	assert.InDelta(t, 239*0.95, tot.Total, 1e-9)
}

func TestCalculateTotalFloorsAtZero(t *testing.T) {
	var c Cart
	c.HasNewsletterDiscount = true
	tot := c.CalculateTotal()
	assert.Zero(t, tot.Total)
}

func TestShippingCost(t *testing.T) {
	assert.Equal(t, 7.0, ShippingCost(0))
	assert.Equal(t, 7.0, ShippingCost(500))
	assert.Equal(t, 0.0, ShippingCost(500.01))
}

func TestRemoveAndCount(t *testing.T) {
	c := Cart{Lines: []Line{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 1}}}
	assert.Equal(t, 3, c.Count())

	c.Remove(5) // ignored
	require.Len(t, c.Lines, 2)

	c.Remove(0)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].ProductID)

	c.Clear()
	assert.Empty(t, c.Lines)
}
