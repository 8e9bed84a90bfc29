package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avdberg/shared-ledger-backend/internal/api/handlers"
	custommiddleware "github.com/avdberg/shared-ledger-backend/internal/api/middleware"
	"github.com/avdberg/shared-ledger-backend/internal/auth"
	"github.com/avdberg/shared-ledger-backend/internal/config"
	"github.com/avdberg/shared-ledger-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	ledgerService *service.LedgerService,
	transactionService *service.TransactionService,
	gate *auth.Gate,
	sessions *auth.Sessions,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		authHandler := handlers.NewAuthHandler(gate, sessions)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.RequireSession(sessions, gate))
				r.Get("/me", authHandler.Me)
			})
		})

		// Everything touching the ledger requires a session
		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.RequireSession(sessions, gate))

			r.Route("/ledger", func(r chi.Router) {
				ledgerHandler := handlers.NewLedgerHandler(ledgerService)
				r.Get("/summary", ledgerHandler.Summary)
				r.Get("/trace", ledgerHandler.Trace)
				r.Get("/by-payer", ledgerHandler.TotalsByPayer)
			})

			r.Route("/transaction", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(transactionService)
				r.Get("/", transactionHandler.ListTransactions)
				r.Post("/", transactionHandler.CreateTransaction)
				r.Put("/", transactionHandler.ReplaceLedger)
			})
		})
	})

	return r
}
