package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/http/analytics"
	"github.com/spendwise/spendwise/internal/http/importcsv"
	"github.com/spendwise/spendwise/internal/http/transaction"
)

func New(
	jwtSecret string,
	allowedOrigins []string,
	transactionsV1 *transaction.Handler,
	analyticsV1 *analytics.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/analytics", analyticsV1.Routes)

		r.Route("/import", importV1.Routes)
	})

	return router
}
