package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fioriforyou.com/app/internal/catalog"
	"fioriforyou.com/app/internal/http/middleware"
	"fioriforyou.com/app/pkg/view"
)

// Catalog is the slice of the catalog client the handlers need.
type Catalog interface {
	FetchAll(ctx context.Context) ([]catalog.Product, error)
	FetchOne(ctx context.Context, id int) (catalog.Product, error)
	FetchPage(ctx context.Context, page, limit, nbItemsPassed int) (catalog.Page, error)
}

type ProductsHandler struct {
	Catalog Catalog
}

func NewProductsHandler(cat Catalog) *ProductsHandler {
	return &ProductsHandler{Catalog: cat}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.Catalog.FetchAll(c.Request.Context())
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": view.FromProducts(products)})
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *gin.Context) {
	id, ok := paramInt(c, "id")
	if !ok {
		return
	}
	p, err := h.Catalog.FetchOne(c.Request.Context(), id)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": view.FromProduct(p)})
}

// Paginated handles GET /api/products/paginated?page=&limit=&nb_items_passed=.
func (h *ProductsHandler) Paginated(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	passed := queryInt(c, "nb_items_passed", 0)

	pg, err := h.Catalog.FetchPage(c.Request.Context(), page, limit, passed)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products":     view.FromProducts(pg.Products),
		"total_pages":  pg.TotalPages,
		"current_page": pg.CurrentPage,
	})
}

func queryInt(c *gin.Context, name string, def int) int {
	if v := c.Query(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
