package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fioriforyou.com/app/internal/http/middleware"
	"fioriforyou.com/app/internal/modules/orders"
	"fioriforyou.com/app/internal/modules/session"
	"fioriforyou.com/app/internal/shared/apperr"
)

type CheckoutHandler struct {
	Sessions *session.Store
	Orders   *orders.Service
}

func NewCheckoutHandler(sessions *session.Store, svc *orders.Service) *CheckoutHandler {
	return &CheckoutHandler{Sessions: sessions, Orders: svc}
}

type detailsRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2"`
	LastName  string `json:"last_name" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,min=8"`
	Address   string `json:"address" binding:"required,min=5"`
	Country   string `json:"country" binding:"required"`
	ZipCode   string `json:"zip_code" binding:"required"`
}

// Details handles POST /api/checkout/details.
func (h *CheckoutHandler) Details(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req detailsRequest
	if !bindJSON(c, &req) {
		return
	}

	d := session.UserDetails{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Country:   req.Country,
		ZipCode:   req.ZipCode,
	}
	if err := h.Sessions.SaveUserDetails(c.Request.Context(), sess.ID, d); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"details": d})
}

type submitRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	PayURL  string `json:"pay_url" binding:"required"`
}

// Submit handles POST /api/checkout/submit. The payment reference arrives
// with the request, is persisted as the pending order, then the submission
// pipeline runs against the refreshed session.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req submitRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	po := session.PendingOrder{OrderID: req.OrderID, PayURL: req.PayURL}
	if err := h.Sessions.SavePendingOrder(ctx, sess.ID, po); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	sess, err := h.Sessions.GetOrCreate(ctx, sess.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	res, err := h.Orders.Submit(ctx, sess)
	if err != nil {
		middleware.Fail(c, domainErr(err))
		return
	}

	resp := gin.H{
		"state":    "succeeded",
		"order_id": res.OrderID,
	}
	if res.TestMode {
		resp["test_mode"] = true
		resp["payload"] = res.Payload
	}
	if res.Warning != nil {
		resp["warning"] = "La confirmation par e-mail n'a pas pu être envoyée."
	}
	c.JSON(http.StatusOK, resp)
}

// Pending handles GET /api/orders/pending.
func (h *CheckoutHandler) Pending(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	po, found := sess.Pending()
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "order": po})
}
