package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fioriforyou.com/app/internal/http/middleware"
	"fioriforyou.com/app/internal/modules/session"
	"fioriforyou.com/app/internal/modules/studio"
	"fioriforyou.com/app/internal/shared/apperr"
	"fioriforyou.com/app/pkg/view"
)

// Default editor surface, same dimensions the printable zones are
// expressed in.
const (
	defaultCanvasWidth  = 500.0
	defaultCanvasHeight = 500.0
)

type CanvasHandler struct {
	Catalog  Catalog
	Sessions *session.Store
}

func NewCanvasHandler(cat Catalog, sessions *session.Store) *CanvasHandler {
	return &CanvasHandler{Catalog: cat, Sessions: sessions}
}

// State handles GET /api/canvas.
func (h *CanvasHandler) State(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	scene, found, err := sess.Canvas()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "canvas": view.FromScene(scene)})
}

type openCanvasRequest struct {
	ProductID int     `json:"product_id" binding:"required"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// Open handles POST /api/canvas. The product's category decides the
// printable zone; any previous scene is replaced.
func (h *CanvasHandler) Open(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req openCanvasRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Width <= 0 {
		req.Width = defaultCanvasWidth
	}
	if req.Height <= 0 {
		req.Height = defaultCanvasHeight
	}

	p, err := h.Catalog.FetchOne(c.Request.Context(), req.ProductID)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}

	scene := studio.NewScene(req.Width, req.Height, p.ItemGroup)
	if err := h.Sessions.SaveCanvas(c.Request.Context(), sess.ID, scene.Snapshot()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "canvas": view.FromScene(scene)})
}

type canvasTextRequest struct {
	Text string `json:"text"`
	Font string `json:"font"`
}

// SetText handles POST /api/canvas/text. An empty text restores the
// placeholder.
func (h *CanvasHandler) SetText(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req canvasTextRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, sess, func(scene *studio.Scene) {
		scene.SetText(req.Text, req.Font)
	})
}

type canvasMoveRequest struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// Move handles POST /api/canvas/move; the response carries the clamped
// position.
func (h *CanvasHandler) Move(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req canvasMoveRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, sess, func(scene *studio.Scene) {
		scene.MoveText(req.Left, req.Top)
	})
}

type canvasScaleRequest struct {
	ScaleX float64 `json:"scale_x"`
	ScaleY float64 `json:"scale_y"`
}

// Scale handles POST /api/canvas/scale; a proposal that escapes the zone
// comes back as the previous valid transform.
func (h *CanvasHandler) Scale(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req canvasScaleRequest
	if !bindJSON(c, &req) {
		return
	}
	h.mutate(c, sess, func(scene *studio.Scene) {
		scene.ScaleText(req.ScaleX, req.ScaleY)
	})
}

// mutate loads the scene, applies op, persists and responds with the new
// state.
func (h *CanvasHandler) mutate(c *gin.Context, sess session.Session, op func(*studio.Scene)) {
	scene, found, err := sess.Canvas()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !found {
		middleware.Fail(c, apperr.InvalidErr("Aucun canevas ouvert.", nil))
		return
	}

	op(scene)

	if err := h.Sessions.SaveCanvas(c.Request.Context(), sess.ID, scene.Snapshot()); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "canvas": view.FromScene(scene)})
}
