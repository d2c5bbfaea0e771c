package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fioriforyou.com/app/internal/catalog"
	"fioriforyou.com/app/internal/http/handlers"
	"fioriforyou.com/app/internal/http/middleware"
	"fioriforyou.com/app/internal/http/sessioncookie"
	"fioriforyou.com/app/internal/modules/email"
	"fioriforyou.com/app/internal/modules/orders"
	"fioriforyou.com/app/internal/modules/personalization"
	"fioriforyou.com/app/internal/modules/session"
)

// Config carries the remote endpoints and cookie settings the router wires
// into the handlers.
type Config struct {
	CatalogEndpoint string
	OrderEndpoint   string
	StockEndpoint   string
	EmailEndpoint   string

	CookieSecret []byte
	CookieName   string
	CookieSecure bool
}

func NewRouter(logger *slog.Logger, db *gorm.DB, cfg Config) (*gin.Engine, error) {
	cat, err := catalog.NewClient(cfg.CatalogEndpoint, nil)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(db)
	persos := personalization.NewStore(db)
	codec := sessioncookie.New(cfg.CookieSecret, cfg.CookieName, cfg.CookieSecure)

	orderSvc := orders.NewService(
		orders.NewClient(cfg.OrderEndpoint, cfg.StockEndpoint, nil),
		email.NewHTTPSender(cfg.EmailEndpoint, nil),
		sessions,
	)

	products := handlers.NewProductsHandler(cat)
	giftpack := handlers.NewGiftPackHandler(cat, sessions)
	perso := handlers.NewPersonalizationHandler(cat, persos)
	canvas := handlers.NewCanvasHandler(cat, sessions)
	cart := handlers.NewCartHandler(cat, sessions)
	checkout := handlers.NewCheckoutHandler(sessions, orderSvc)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.ResolveSession(codec, sessions))
	{
		api.GET("/products", products.List)
		api.GET("/products/paginated", products.Paginated)
		api.GET("/products/:id", products.Get)

		api.GET("/giftpack", giftpack.State)
		api.POST("/giftpack/type", giftpack.SelectType)
		api.POST("/giftpack/slots/:index/assign", giftpack.Assign)
		api.POST("/giftpack/slots/:index/edit", giftpack.Edit)
		api.POST("/giftpack/slots/:index/confirm", giftpack.Confirm)
		api.DELETE("/giftpack/slots/:index", giftpack.Remove)

		api.GET("/personalization", perso.GetAll)
		api.GET("/personalization/:productID", perso.Get)
		api.POST("/personalization/:productID", perso.Save)

		api.GET("/canvas", canvas.State)
		api.POST("/canvas", canvas.Open)
		api.POST("/canvas/text", canvas.SetText)
		api.POST("/canvas/move", canvas.Move)
		api.POST("/canvas/scale", canvas.Scale)

		api.GET("/cart", cart.Get)
		api.POST("/cart", cart.Add)
		api.DELETE("/cart/:index", cart.Remove)
		api.POST("/cart/newsletter", cart.Newsletter)

		api.POST("/checkout/details", checkout.Details)
		api.POST("/checkout/submit", checkout.Submit)
		api.GET("/orders/pending", checkout.Pending)
	}

	return r, nil
}
