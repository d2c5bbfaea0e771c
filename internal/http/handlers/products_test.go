package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fioriforyou.com/app/internal/catalog"
	"fioriforyou.com/app/internal/http/middleware"
)

type fakeCatalog struct {
	products map[int]catalog.Product
	err      error
}

func (f *fakeCatalog) FetchAll(context.Context) ([]catalog.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []catalog.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeCatalog) FetchOne(_ context.Context, id int) (catalog.Product, error) {
	if f.err != nil {
		return catalog.Product{}, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return catalog.Product{}, &catalog.FetchError{Op: "fetch_one", Err: catalog.ErrNotFound}
	}
	return p, nil
}

func (f *fakeCatalog) FetchPage(context.Context, int, int, int) (catalog.Page, error) {
	if f.err != nil {
		return catalog.Page{}, f.err
	}
	return catalog.Page{TotalPages: 3, CurrentPage: 2}, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return r
}

func TestProductsGet(t *testing.T) {
	cat := &fakeCatalog{products: map[int]catalog.Product{
		42: {
			ID:        42,
			Name:      "Chemise Oxford",
			Price:     120,
			Discount:  "10",
			ItemGroup: "chemises",
			Sizes:     map[string]int{"m": 3, "l": 0, "xxl2": 2},
			Quantity:  5,
		},
	}}

	r := newTestEngine(t)
	h := NewProductsHandler(cat)
	r.GET("/api/products/:id", h.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/42", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Product struct {
			ID              int      `json:"id"`
			DisplayPrice    string   `json:"display_price"`
			DiscountedPrice string   `json:"discounted_price"`
			AvailableSizes  []string `json:"available_sizes"`
			Personalizable  bool     `json:"personalizable"`
			BoxEligible     bool     `json:"box_eligible"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 42, body.Product.ID)
	assert.Equal(t, "120.00", body.Product.DisplayPrice)
	assert.Equal(t, "108.00", body.Product.DiscountedPrice)
	assert.Equal(t, []string{"M", "2XXL"}, body.Product.AvailableSizes)
	assert.True(t, body.Product.Personalizable)
	assert.True(t, body.Product.BoxEligible)
}

func TestProductsGetNotFound(t *testing.T) {
	r := newTestEngine(t)
	h := NewProductsHandler(&fakeCatalog{products: map[int]catalog.Product{}})
	r.GET("/api/products/:id", h.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/7", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Produit introuvable.")
}

func TestProductsGetBadID(t *testing.T) {
	r := newTestEngine(t)
	h := NewProductsHandler(&fakeCatalog{})
	r.GET("/api/products/:id", h.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductsListUpstreamDown(t *testing.T) {
	r := newTestEngine(t)
	h := NewProductsHandler(&fakeCatalog{err: &catalog.FetchError{Op: "fetch_all", Status: "error"}})
	r.GET("/api/products", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "indisponible")
}

func TestProductsPaginatedDefaults(t *testing.T) {
	r := newTestEngine(t)
	h := NewProductsHandler(&fakeCatalog{})
	r.GET("/api/products/paginated", h.Paginated)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/paginated?page=2&limit=12", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		TotalPages  int `json:"total_pages"`
		CurrentPage int `json:"current_page"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.TotalPages)
	assert.Equal(t, 2, body.CurrentPage)
}
