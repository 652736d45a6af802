package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/koodakziba/koodakziba-backend/api/controllers"
	"github.com/koodakziba/koodakziba-backend/api/middleware"
	"github.com/koodakziba/koodakziba-backend/internal/accounts"
	"github.com/koodakziba/koodakziba-backend/internal/cart"
	"github.com/koodakziba/koodakziba-backend/internal/catalog"
	"github.com/koodakziba/koodakziba-backend/pkg/config"
	"github.com/koodakziba/koodakziba-backend/pkg/logger"
	"github.com/koodakziba/koodakziba-backend/pkg/metrics"
	"github.com/koodakziba/koodakziba-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	cache redis.Pinger,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalog.Service,
	cartService cart.Service,
	accountService accounts.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, cache))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(catalogService, logg))
			r.Get("/{productId}", controllers.GetProduct(catalogService, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.AuthRegister(accountService, logg))
			r.Post("/login", controllers.AuthLogin(accountService, cfg.JWT, logg))
			r.Post("/logout", controllers.AuthLogout(logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartSession(logg))
			r.Get("/", controllers.CartView(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Route("/items", func(r chi.Router) {
				r.Post("/", controllers.CartAddItem(cartService, logg))
				r.Patch("/{productId}", controllers.CartUpdateItem(cartService, logg))
				r.Delete("/{productId}", controllers.CartRemoveItem(cartService, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireAdmin(logg))

		r.Get("/dashboard", controllers.AdminDashboard(catalogService, accountService, logg))

		r.Route("/products", func(r chi.Router) {
			r.Post("/", controllers.AdminCreateProduct(catalogService, logg))
			r.Put("/{productId}", controllers.AdminUpdateProduct(catalogService, logg))
			r.Delete("/{productId}", controllers.AdminDeleteProduct(catalogService, logg))
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.AdminListUsers(accountService, logg))
			r.Put("/{userId}", controllers.AdminUpdateUser(accountService, logg))
			r.Delete("/{userId}", controllers.AdminDeleteUser(accountService, logg))
		})
	})

	return r
}
