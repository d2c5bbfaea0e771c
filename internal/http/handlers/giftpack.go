package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fioriforyou.com/app/internal/http/middleware"
	"fioriforyou.com/app/internal/modules/giftpack"
	"fioriforyou.com/app/internal/modules/session"
	"fioriforyou.com/app/internal/shared/apperr"
	"fioriforyou.com/app/pkg/view"
)

type GiftPackHandler struct {
	Catalog  Catalog
	Sessions *session.Store
}

func NewGiftPackHandler(cat Catalog, sessions *session.Store) *GiftPackHandler {
	return &GiftPackHandler{Catalog: cat, Sessions: sessions}
}

// State handles GET /api/giftpack.
func (h *GiftPackHandler) State(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	cfg, err := sess.Configurator()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.FromConfigurator(cfg))
}

type selectTypeRequest struct {
	PackType string `json:"pack_type" binding:"required"`
}

// SelectType handles POST /api/giftpack/type. Picking a type starts a fresh
// configuration, previously filled slots are discarded.
func (h *GiftPackHandler) SelectType(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req selectTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	if !giftpack.KnownType(req.PackType) {
		middleware.Fail(c, apperr.InvalidErr("Type de pack inconnu.", nil))
		return
	}

	ctx := c.Request.Context()
	if err := h.Sessions.SavePackType(ctx, sess.ID, req.PackType); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	cfg := giftpack.NewConfigurator(req.PackType)
	if err := h.Sessions.SaveSlots(ctx, sess.ID, cfg.Snapshot()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.FromConfigurator(cfg))
}

type assignRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// Assign handles POST /api/giftpack/slots/:index/assign. It opens the
// dialog: the response carries the size candidates and personalization rule
// the client needs, nothing is written to the slot yet.
func (h *GiftPackHandler) Assign(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	index, ok := paramInt(c, "index")
	if !ok {
		return
	}
	var req assignRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := sess.Configurator()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	p, err := h.Catalog.FetchOne(c.Request.Context(), req.ProductID)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	if err := cfg.BeginAssign(index, p); err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	c.JSON(http.StatusOK, view.NewAssignDialog(index, p))
}

// Edit handles POST /api/giftpack/slots/:index/edit. Same dialog as Assign
// but prefilled from the occupied slot.
func (h *GiftPackHandler) Edit(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	index, ok := paramInt(c, "index")
	if !ok {
		return
	}
	cfg, err := sess.Configurator()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	item, err := cfg.EditAssign(index)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}

	d := view.NewAssignDialog(index, item.Product)
	d.Editing = true
	d.Size = item.Size
	d.Personalization = item.Personalization
	c.JSON(http.StatusOK, d)
}

type confirmRequest struct {
	ProductID       int    `json:"product_id" binding:"required"`
	Size            string `json:"size"`
	Personalization string `json:"personalization"`
}

// Confirm handles POST /api/giftpack/slots/:index/confirm. It carries the
// whole choice so the dialog itself never has to survive a request.
func (h *GiftPackHandler) Confirm(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	index, ok := paramInt(c, "index")
	if !ok {
		return
	}
	var req confirmRequest
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := sess.Configurator()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	p, err := h.Catalog.FetchOne(c.Request.Context(), req.ProductID)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	if err := cfg.BeginAssign(index, p); err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	if err := cfg.ConfirmAssign(req.Size, req.Personalization); err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	if err := h.Sessions.SaveSlots(c.Request.Context(), sess.ID, cfg.Snapshot()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.FromConfigurator(cfg))
}

// Remove handles DELETE /api/giftpack/slots/:index.
func (h *GiftPackHandler) Remove(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	index, ok := paramInt(c, "index")
	if !ok {
		return
	}
	cfg, err := sess.Configurator()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if err := cfg.RemoveAssign(index); err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}
	if err := h.Sessions.SaveSlots(c.Request.Context(), sess.ID, cfg.Snapshot()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, view.FromConfigurator(cfg))
}
