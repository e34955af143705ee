// Package httpapi exposes the storefront over HTTP. Handlers translate gin
// requests into core operations and core errors into status codes; no
// business rules live here.
package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"anukriti-backend/internal/auth"
	"anukriti-backend/internal/config"
	"anukriti-backend/internal/core"
	"anukriti-backend/internal/metrics"
	"anukriti-backend/internal/store"
)

type Server struct {
	cfg      *config.Config
	stores   *store.Stores
	tokens   *auth.TokenManager
	cart     *core.CartService
	checkout *core.CheckoutService
	orders   *core.OrderService
	log      *logrus.Logger
}

func NewServer(cfg *config.Config, stores *store.Stores, log *logrus.Logger) *Server {
	return &Server{
		cfg:      cfg,
		stores:   stores,
		tokens:   auth.NewTokenManager(cfg.JWTSecret),
		cart:     core.NewCartService(stores.Catalog, stores.Carts, log),
		checkout: core.NewCheckoutService(stores.Catalog, stores.Carts, stores.Orders, log),
		orders:   core.NewOrderService(stores.Orders, log),
		log:      log,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(metrics.NewServerMetrics().GinMiddleware())
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/signup", s.signup)
		api.POST("/auth/login", s.login)

		api.GET("/products", s.listProducts)
		api.GET("/products/:productId", s.getProduct)

		api.POST("/contact", s.submitContact)
		api.POST("/init", s.initData)
	}

	authed := api.Group("", auth.Middleware(s.tokens))
	{
		authed.GET("/auth/me", s.me)

		authed.GET("/cart", s.getCart)
		authed.POST("/cart", s.addToCart)
		authed.PUT("/cart/:productId", s.updateCartItem)
		authed.DELETE("/cart/:productId", s.removeCartItem)

		authed.POST("/orders", s.placeOrder)
		authed.GET("/orders", s.listOrders)
		authed.GET("/orders/:orderId", s.getOrder)
	}

	admin := authed.Group("/admin", auth.RequireAdmin())
	{
		admin.POST("/products", s.createProduct)
		admin.PUT("/products/:productId", s.updateProduct)
		admin.DELETE("/products/:productId", s.deleteProduct)

		admin.GET("/orders", s.listAllOrders)
		admin.PUT("/orders/:orderId/status", s.updateOrderStatus)
	}

	return r
}
