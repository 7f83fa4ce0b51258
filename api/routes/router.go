package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopsbuzz/shopsbuzz-backend/api/controllers"
	cartcontrollers "github.com/shopsbuzz/shopsbuzz-backend/api/controllers/cart"
	"github.com/shopsbuzz/shopsbuzz-backend/api/middleware"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/auth"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/cart"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/catalog"
	"github.com/shopsbuzz/shopsbuzz-backend/internal/wishlist"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/config"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/logger"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/metrics"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/redis"
)

// RouterParams bundles the dependencies the HTTP surface needs.
type RouterParams struct {
	Config    *config.Config
	Logger    *logger.Logger
	Redis     *redis.Client
	Metrics   *metrics.HTTPMetrics
	Registry  *prometheus.Registry
	Catalog   *catalog.Catalog
	Carts     cart.Service
	Auth      auth.Service
	Wishlists wishlist.Service
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.CORS(),
		middleware.Metrics(p.Metrics),
	)

	// Avoid handing typed-nil interfaces to handlers when redis is absent.
	var storePinger controllers.Pinger
	var limiter middleware.RateLimiterStore
	if p.Redis != nil {
		storePinger = p.Redis
		limiter = p.Redis
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		p.Config.AuthRateLimit.LoginWindow,
		p.Config.AuthRateLimit.LoginIPLimit,
		p.Config.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		p.Config.AuthRateLimit.RegisterWindow,
		p.Config.AuthRateLimit.RegisterIPLimit,
		p.Config.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, storePinger))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/pages", controllers.CatalogPages(p.Catalog, p.Logger))
			r.Get("/products", controllers.CatalogList(p.Catalog, p.Logger))
			r.Get("/products/{page}/{productId}", controllers.CatalogDetail(p.Catalog, p.Logger))
		})
		r.Get("/search", controllers.CatalogSearch(p.Catalog, p.Logger))
		r.Get("/pincode/{code}", controllers.PincodeCheck(p.Logger))
		r.Post("/newsletter", controllers.NewsletterSubscribe(p.Logger))

		// Everything below is scoped to the caller's storefront session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(p.Logger))

			r.Route("/auth", func(r chi.Router) {
				r.With(middleware.AuthRateLimit(loginPolicy, limiter, p.Logger)).Post("/login", controllers.AuthLogin(p.Auth, p.Logger))
				r.With(middleware.AuthRateLimit(registerPolicy, limiter, p.Logger)).Post("/register", controllers.AuthRegister(p.Auth, p.Logger))
				r.Post("/logout", controllers.AuthLogout(p.Auth, p.Logger))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.CartFetch(p.Carts, p.Logger))
				r.Delete("/", cartcontrollers.CartClear(p.Carts, p.Logger))
				r.Post("/items", cartcontrollers.CartAddItem(p.Carts, p.Logger))
				r.Patch("/items/{productId}", cartcontrollers.CartChangeQuantity(p.Carts, p.Logger))
				r.Delete("/items/{productId}", cartcontrollers.CartRemoveItem(p.Carts, p.Logger))
			})

			r.Post("/checkout", cartcontrollers.Checkout(p.Carts, p.Logger))

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.WishlistList(p.Wishlists, p.Logger))
				r.Post("/{productId}/toggle", controllers.WishlistToggle(p.Wishlists, p.Logger))
			})
		})
	})

	return r
}
