package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pchen-dev/storefront-backend/api/controllers"
	"github.com/pchen-dev/storefront-backend/api/middleware"
	authsvc "github.com/pchen-dev/storefront-backend/internal/auth"
	cartsvc "github.com/pchen-dev/storefront-backend/internal/cart"
	"github.com/pchen-dev/storefront-backend/internal/catalog"
	userssvc "github.com/pchen-dev/storefront-backend/internal/users"
	"github.com/pchen-dev/storefront-backend/pkg/auth/session"
	"github.com/pchen-dev/storefront-backend/pkg/config"
	"github.com/pchen-dev/storefront-backend/pkg/logger"
	"github.com/pchen-dev/storefront-backend/pkg/metrics"
)

type sessionManager interface {
	session.Resolver
	controllers.SessionWriter
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP, redisP controllers.Pinger,
	sessions sessionManager,
	userLoader middleware.UserLoader,
	httpMetrics *metrics.HTTPMetrics,
	registry *prometheus.Registry,
	authService authsvc.Service,
	usersService userssvc.Service,
	catalogService catalog.Service,
	cartService cartsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)
	if httpMetrics != nil {
		r.Use(middleware.Metrics(httpMetrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", controllers.ListProducts(catalogService, logg))
		r.Post("/products", controllers.CreateProduct(catalogService, logg))
		r.Get("/products/{id}", controllers.GetProduct(catalogService, logg))

		r.Get("/users", controllers.ListUsers(usersService, logg))
		r.Post("/users", controllers.CreateUser(authService, logg))

		r.Post("/register", controllers.Register(authService, sessions, logg))
		r.Post("/login", controllers.Login(authService, sessions, logg))
		r.Post("/logout", controllers.Logout(sessions, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(sessions, userLoader, logg))

			r.Get("/me", controllers.Me(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.ListCart(cartService, logg))
				r.Post("/", controllers.AddCartItem(cartService, logg))
				r.Put("/{id}", controllers.UpdateCartItem(cartService, logg))
				r.Delete("/{id}", controllers.RemoveCartItem(cartService, logg))
			})
		})
	})

	return r
}
