package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	handleProducts(w, httptest.NewRequest(http.MethodGet, "/api/products.php", nil))

	var env struct {
		Status   string           `json:"status"`
		Products []map[string]any `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
	assert.Len(t, env.Products, len(seed))
}

func TestProductsPaginationKeys(t *testing.T) {
	w := httptest.NewRecorder()
	handleProducts(w, httptest.NewRequest(http.MethodGet, "/api/products.php?page=2&limit=10", nil))

	var env struct {
		TotalPages  int `json:"totalPages"`
		CurrentPage int `json:"currentPage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 1, env.TotalPages)
	assert.Equal(t, 2, env.CurrentPage)
}

func TestProductsByID(t *testing.T) {
	w := httptest.NewRecorder()
	handleProducts(w, httptest.NewRequest(http.MethodGet, "/api/products.php?id_product=2", nil))

	var env struct {
		Products []map[string]any `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Products, 1)
	assert.Equal(t, "2", env.Products[0]["id_product"])
}
