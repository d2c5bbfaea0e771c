package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
  "status": "success",
  "products": [
    {
      "id_product": "42",
      "nom_product": "Chemise Oxford",
      "type_product": "coton",
      "color_product": "blanc",
      "price_product": "129.00",
      "qnty_product": "12",
      "discount_product": "10",
      "itemgroup_product": "chemises",
      "img_product": "uploads/42.png",
      "img2_product": "",
      "s_size": "2", "m_size": "0", "l_size": "5", "xl_size": "x",
      "xxl_size": "1", "3xl_size": "0",
      "48_size": "0", "50_size": "0", "52_size": "0",
      "54_size": "0", "56_size": "0", "58_size": "0"
    },
    {
      "id_product": "43",
      "nom_product": "Cravate soie",
      "price_product": "59.00",
      "qnty_product": "0",
      "itemgroup_product": "cravates",
      "img_product": "uploads/43.png"
    }
  ],
  "totalPages": 3,
  "currentPage": 2
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cl, err := NewClient(srv.URL+"/fiori/get_all_articles.php", srv.Client())
	require.NoError(t, err)
	return cl, srv
}

func TestFetchAllNormalizesAndFilters(t *testing.T) {
	var gotQuery string
	cl, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	})

	products, err := cl.FetchAll(context.Background())
	require.NoError(t, err)

	// zero-stock product is dropped
	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, 42, p.ID)
	assert.Equal(t, "Chemise Oxford", p.Name)
	assert.Equal(t, 129.00, p.Price)
	assert.Equal(t, "10", p.Discount)
	assert.Equal(t, srv.URL+"/uploads/42.png?format=webp&quality=70", p.Image)
	assert.Empty(t, p.Image2)
	assert.Contains(t, gotQuery, "timestamp=")

	// bad numeric defaults to zero, never an error
	assert.Equal(t, 0, p.Sizes["xl"])
	assert.Equal(t, 2, p.Sizes["s"])
	assert.Equal(t, 5, p.StockFor("L"))
}

func TestFetchOne(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("id_product"))
		_, _ = w.Write([]byte(sampleBody))
	})

	p, err := cl.FetchOne(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Chemise Oxford", p.Name)
}

func TestFetchOneNotFound(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","products":[]}`))
	})

	_, err := cl.FetchOne(context.Background(), 999)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "fetch_one", fe.Op)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchPage(t *testing.T) {
	cl, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "10", q.Get("nb_items_passed"))
		_, _ = w.Write([]byte(sampleBody))
	})

	page, err := cl.FetchPage(context.Background(), 2, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Products, 1)
	// paginated listing uses the lighter image quality
	assert.Equal(t, srv.URL+"/uploads/42.png?format=webp&quality=60", page.Products[0].Image)
}

func TestFetchAllBadStatus(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","products":[]}`))
	})

	_, err := cl.FetchAll(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "error", fe.Status)
}

func TestFetchAllMalformedBody(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := cl.FetchAll(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Empty(t, fe.Status)
}

func TestFetchAllHTTPError(t *testing.T) {
	cl, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := cl.FetchAll(context.Background())
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
}
