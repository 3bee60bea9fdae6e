package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/pchen-dev/storefront-backend/pkg/config"
)

// CORS applies the storefront's single-origin credentialed policy. Cookies
// carry the session, so credentials must be allowed and the origin pinned.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
