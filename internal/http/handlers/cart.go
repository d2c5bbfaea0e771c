package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fioriforyou.com/app/internal/http/middleware"
	"fioriforyou.com/app/internal/modules/cart"
	"fioriforyou.com/app/internal/modules/session"
	"fioriforyou.com/app/internal/shared/apperr"
	"fioriforyou.com/app/pkg/view"
)

type CartHandler struct {
	Catalog  Catalog
	Sessions *session.Store
}

func NewCartHandler(cat Catalog, sessions *session.Store) *CartHandler {
	return &CartHandler{Catalog: cat, Sessions: sessions}
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	ct, err := sess.Cart()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.FromCart(ct))
}

type addToCartRequest struct {
	ProductID       int    `json:"product_id" binding:"required"`
	Size            string `json:"size"`
	Quantity        int    `json:"quantity"`
	Personalization string `json:"personalization"`
	WithBox         *bool  `json:"with_box"`
	Pack            string `json:"pack"`
}

// Add handles POST /api/cart. The line snapshots the product at add time so
// checkout does not depend on the catalog staying unchanged.
func (h *CartHandler) Add(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req addToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.Catalog.FetchOne(c.Request.Context(), req.ProductID)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	ct, err := sess.Cart()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	line := cart.Line{
		ProductID:       p.ID,
		Name:            p.Name,
		Color:           p.Color,
		Price:           p.Price,
		Discount:        p.Discount,
		Size:            req.Size,
		Quantity:        req.Quantity,
		Personalization: req.Personalization,
		WithBox:         req.WithBox,
		Pack:            req.Pack,
		Image:           p.Image,
	}
	if err := ct.Add(p, line); err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	if err := h.Sessions.SaveCart(c.Request.Context(), sess.ID, ct); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.FromCart(ct))
}

// Remove handles DELETE /api/cart/:index.
func (h *CartHandler) Remove(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	index, ok := paramInt(c, "index")
	if !ok {
		return
	}
	ct, err := sess.Cart()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if index < 0 || index >= len(ct.Lines) {
		middleware.Fail(c, apperr.InvalidErr("Ligne de panier inconnue.", nil))
		return
	}
	ct.Remove(index)
	if err := h.Sessions.SaveCart(c.Request.Context(), sess.ID, ct); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.FromCart(ct))
}

// Newsletter handles POST /api/cart/newsletter, flipping on the one-shot
// subscription discount.
func (h *CartHandler) Newsletter(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	ct, err := sess.Cart()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !ct.HasNewsletterDiscount {
		ct.HasNewsletterDiscount = true
		if err := h.Sessions.SaveCart(c.Request.Context(), sess.ID, ct); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		if err := h.Sessions.SaveNewsletterDiscount(c.Request.Context(), sess.ID, true); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	}
	c.JSON(http.StatusOK, view.FromCart(ct))
}
