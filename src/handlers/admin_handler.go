package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	db "github.com/AkshatM1707/finance-assistant/src/db/sql"
)

// CleanupTestData sweeps the caller's test receipts and the transactions
// they created.
func CleanupTestData(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		log.Printf("INFO: Starting cleanup of test data for user %d", userID)

		deletedReceipts, deletedTransactions, err := db.CleanupTestData(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Cleanup failed for user %d: %v", userID, err)
			http.Error(w, "Failed to clean up test data", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Cleanup completed for user %d: %d receipts, %d transactions deleted",
			userID, deletedReceipts, deletedTransactions)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":             "Cleanup completed successfully",
			"deletedReceipts":     deletedReceipts,
			"deletedTransactions": deletedTransactions,
		})
	}
}
