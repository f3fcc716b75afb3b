package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	db "github.com/AkshatM1707/finance-assistant/src/db/sql"
	"github.com/AkshatM1707/finance-assistant/src/models"
)

func Me(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		user, err := db.GetUserByID(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get user - user_id: %d: %v", userID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": user,
		})
	}
}

func UpdateProfile(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req struct {
			Currency    string             `json:"currency"`
			Timezone    string             `json:"timezone"`
			Preferences models.Preferences `json:"preferences"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update profile request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Currency == "" {
			req.Currency = "USD"
		}
		if req.Timezone == "" {
			req.Timezone = "UTC"
		}

		user, err := db.UpdateUserProfile(r.Context(), pool, userID, req.Currency, req.Timezone, req.Preferences)
		if err != nil {
			log.Printf("ERROR: Failed to update profile for user %d: %v", userID, err)
			http.Error(w, "failed to update profile", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Updated profile for user %d", userID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"user": user,
		})
	}
}
