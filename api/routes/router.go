package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emabi2002/pngsme/api/controllers"
	"github.com/emabi2002/pngsme/api/middleware"
	authsvc "github.com/emabi2002/pngsme/internal/auth"
	businessessvc "github.com/emabi2002/pngsme/internal/businesses"
	cartstore "github.com/emabi2002/pngsme/internal/cart"
	checkoutsvc "github.com/emabi2002/pngsme/internal/checkout"
	orderssvc "github.com/emabi2002/pngsme/internal/orders"
	productssvc "github.com/emabi2002/pngsme/internal/products"
	reviewssvc "github.com/emabi2002/pngsme/internal/reviews"
	"github.com/emabi2002/pngsme/pkg/auth/session"
	"github.com/emabi2002/pngsme/pkg/config"
	"github.com/emabi2002/pngsme/pkg/db"
	"github.com/emabi2002/pngsme/pkg/enums"
	"github.com/emabi2002/pngsme/pkg/logger"
	"github.com/emabi2002/pngsme/pkg/redis"
)

// Deps bundles everything the router needs.
type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        redis.Pinger
	Sessions     session.AccessSessionChecker
	Registry     *prometheus.Registry
	AuthService  authsvc.Service
	Businesses   businessessvc.Service
	Products     productssvc.Service
	Cart         *cartstore.Store
	Checkout     checkoutsvc.Service
	Orders       orderssvc.Service
	Reviews      reviewssvc.Service
}

// NewRouter wires the full HTTP surface.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	authed := middleware.Auth(cfg.JWT, deps.Sessions, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.Register(deps.AuthService, logg))
		r.Post("/login", controllers.Login(deps.AuthService, logg))
		r.Post("/refresh", controllers.Refresh(deps.AuthService, logg))
		r.With(authed).Post("/logout", controllers.Logout(deps.AuthService, logg))
	})

	r.Route("/api/v1/businesses", func(r chi.Router) {
		r.Get("/", controllers.ListBusinesses(deps.Businesses, logg))
		r.Get("/{slug}", controllers.GetBusiness(deps.Businesses, logg))
		r.With(authed).Post("/", controllers.RegisterBusiness(deps.Businesses, logg))
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(deps.Products, logg))
		r.Get("/{productId}", controllers.GetProduct(deps.Products, logg))
		r.Get("/{productId}/reviews", controllers.ListReviews(deps.Reviews, logg))

		r.Group(func(r chi.Router) {
			r.Use(authed)
			r.Post("/{productId}/reviews", controllers.CreateReview(deps.Reviews, logg))
			r.With(middleware.RequireBusiness(logg)).Post("/", controllers.CreateProduct(deps.Products, logg))
			r.With(middleware.RequireBusiness(logg)).Patch("/{productId}", controllers.UpdateProduct(deps.Products, logg))
		})
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(authed)
		r.Get("/", controllers.GetCart(deps.Cart, logg))
		r.Post("/items", controllers.AddCartItem(deps.Cart, deps.Products, logg))
		r.Patch("/items/{productId}", controllers.UpdateCartItem(deps.Cart, logg))
		r.Delete("/items/{productId}", controllers.RemoveCartItem(deps.Cart, logg))
		r.Delete("/", controllers.ClearCart(deps.Cart, logg))
	})

	r.With(authed).Post("/api/v1/checkout", controllers.Checkout(deps.Checkout, logg))

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(authed)
		r.Get("/", controllers.ListBuyerOrders(deps.Orders, logg))
		r.Get("/{orderId}", controllers.GetOrder(deps.Orders, logg))
		r.Post("/{orderId}/confirm-delivery", controllers.ConfirmDelivery(deps.Orders, logg))
	})

	r.Route("/api/v1/seller/orders", func(r chi.Router) {
		r.Use(
			authed,
			middleware.RequireRole(enums.UserRoleSeller.String(), logg),
			middleware.RequireBusiness(logg),
		)
		r.Get("/", controllers.ListSellerOrders(deps.Orders, logg))
		r.Post("/{orderId}/status", controllers.SellerOrderStatus(deps.Orders, logg))
	})

	return r
}
