package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	db "github.com/AkshatM1707/finance-assistant/src/db/sql"
	"github.com/AkshatM1707/finance-assistant/src/models"
)

type budgetRequest struct {
	Name      string               `json:"name"`
	Amount    float64              `json:"amount"`
	Category  string               `json:"category"`
	Period    string               `json:"period"`
	StartDate time.Time            `json:"startDate"`
	EndDate   time.Time            `json:"endDate"`
	IsActive  *bool                `json:"isActive"`
	Alerts    *models.BudgetAlerts `json:"alerts"`
}

func (req *budgetRequest) toBudget(userID int64) (*models.Budget, string) {
	if req.Name == "" || req.Category == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, "missing required fields"
	}
	if req.Amount < 0 {
		return nil, "amount must not be negative"
	}
	if !models.ValidExpenseCategory(req.Category) {
		return nil, "invalid category"
	}
	if req.Period == "" {
		req.Period = models.PeriodMonthly
	}
	if !models.ValidPeriod(req.Period) {
		return nil, "invalid period"
	}

	budget := &models.Budget{
		UserID:    userID,
		Name:      req.Name,
		Amount:    req.Amount,
		Category:  req.Category,
		Period:    req.Period,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
		Alerts:    models.DefaultBudgetAlerts(),
	}
	if req.IsActive != nil {
		budget.IsActive = *req.IsActive
	}
	if req.Alerts != nil {
		budget.Alerts = *req.Alerts
	}
	return budget, ""
}

func CreateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		budget, reason := req.toBudget(userID)
		if reason != "" {
			http.Error(w, reason, http.StatusBadRequest)
			return
		}

		created, err := db.CreateBudget(r.Context(), pool, budget)
		if err != nil {
			log.Printf("ERROR: Failed to create budget for user %d: %v", userID, err)
			http.Error(w, "failed to create budget", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created budget id %d for user %d, category %s", created.ID, userID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetBudgetByID(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.ParseInt(budgetIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid budget id param: %s", budgetIDStr)
			http.Error(w, "invalid budget id", http.StatusBadRequest)
			return
		}

		budget, err := db.GetBudgetByID(r.Context(), pool, userID, budgetID)
		if err != nil {
			log.Printf("ERROR: Budget id %d not found for user %d: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}

func GetBudgetByCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		category := chi.URLParam(r, "category")

		budget, err := db.GetBudgetByCategory(r.Context(), pool, userID, category)
		if err != nil {
			log.Printf("ERROR: Budget not found for user %d, category %s: %v", userID, category, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}

func GetAllBudgetsForUser(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		budgets, err := db.GetAllBudgetsForUser(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get budgets for user %d: %v", userID, err)
			http.Error(w, "failed to get budgets", http.StatusInternalServerError)
			return
		}

		if budgets == nil {
			budgets = []models.Budget{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budgets)
	}
}

func UpdateBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.ParseInt(budgetIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid budget id param: %s", budgetIDStr)
			http.Error(w, "invalid budget id", http.StatusBadRequest)
			return
		}

		var req budgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budget request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		budget, reason := req.toBudget(userID)
		if reason != "" {
			http.Error(w, reason, http.StatusBadRequest)
			return
		}
		budget.ID = budgetID

		updated, err := db.UpdateBudget(r.Context(), pool, budget)
		if err != nil {
			log.Printf("ERROR: Failed to update budget %d for user %d: %v", budgetID, userID, err)
			http.Error(w, "failed to update budget", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		budgetIDStr := chi.URLParam(r, "budget_id")
		budgetID, err := strconv.ParseInt(budgetIDStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid budget id param: %s", budgetIDStr)
			http.Error(w, "invalid budget id", http.StatusBadRequest)
			return
		}

		if err := db.DeleteBudget(r.Context(), pool, userID, budgetID); err != nil {
			log.Printf("ERROR: Failed to delete budget %d for user %d: %v", budgetID, userID, err)
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
