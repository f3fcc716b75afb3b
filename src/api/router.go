package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AkshatM1707/finance-assistant/src/analytics"
	db "github.com/AkshatM1707/finance-assistant/src/db/sql"
	"github.com/AkshatM1707/finance-assistant/src/extraction"
	"github.com/AkshatM1707/finance-assistant/src/handlers"
	"github.com/AkshatM1707/finance-assistant/src/middleware"
)

func NewRouter(pool *pgxpool.Pool, provider extraction.Provider) *chi.Mux {
	store := db.NewTransactionStore(pool)
	svc := analytics.NewService(store)

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(pool))
		r.Post("/auth/login", handlers.Login(pool))
		r.Post("/auth/logout", handlers.Logout())

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/auth/me", handlers.Me(pool))
			r.Put("/user", handlers.UpdateProfile(pool))

			// Transactions
			r.Get("/transactions", handlers.GetTransactions(svc))
			r.Post("/transactions", handlers.CreateTransaction(store))
			r.Post("/transactions/upload-pdf", handlers.UploadStatement(store, provider))

			// Analytics
			r.Get("/analytics", handlers.GetAnalytics(svc))

			// Receipts
			r.Get("/receipts", handlers.GetReceipts(pool))
			r.Post("/receipts/process", handlers.ProcessReceipt(pool, store, provider))

			// Budgets
			r.Post("/budgets", handlers.CreateBudget(pool))
			r.Get("/budgets", handlers.GetAllBudgetsForUser(pool))
			r.Get("/budgets/{budget_id}", handlers.GetBudgetByID(pool))
			r.Get("/budgets/category/{category}", handlers.GetBudgetByCategory(pool))
			r.Put("/budgets/{budget_id}", handlers.UpdateBudget(pool))
			r.Delete("/budgets/{budget_id}", handlers.DeleteBudget(pool))

			// Admin
			r.Delete("/admin/cleanup", handlers.CleanupTestData(pool))
		})
	})

	return r
}
