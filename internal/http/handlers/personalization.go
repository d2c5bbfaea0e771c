package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fioriforyou.com/app/internal/http/middleware"
	"fioriforyou.com/app/internal/modules/personalization"
	"fioriforyou.com/app/internal/shared/apperr"
)

type PersonalizationHandler struct {
	Catalog Catalog
	Store   *personalization.Store
}

func NewPersonalizationHandler(cat Catalog, store *personalization.Store) *PersonalizationHandler {
	return &PersonalizationHandler{Catalog: cat, Store: store}
}

type personalizationRequest struct {
	Text string `json:"text" binding:"required"`
}

// Save handles POST /api/personalization/:productID. The product is fetched
// so the length rule comes from its real category, not from the client.
func (h *PersonalizationHandler) Save(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	productID, ok := paramInt(c, "productID")
	if !ok {
		return
	}
	var req personalizationRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.Catalog.FetchOne(c.Request.Context(), productID)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	if err := h.Store.Save(c.Request.Context(), sess.ID, productID, p.ItemGroup, req.Text); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "text": req.Text})
}

// Get handles GET /api/personalization/:productID.
func (h *PersonalizationHandler) Get(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	productID, ok := paramInt(c, "productID")
	if !ok {
		return
	}
	text, found, err := h.Store.Get(c.Request.Context(), sess.ID, productID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": productID, "text": text, "found": found})
}

// GetAll handles GET /api/personalization.
func (h *PersonalizationHandler) GetAll(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	all, err := h.Store.GetAll(c.Request.Context(), sess.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"personalizations": all})
}
