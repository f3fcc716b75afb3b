package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/AkshatM1707/finance-assistant/src/analytics"
	"github.com/AkshatM1707/finance-assistant/src/extraction"
	"github.com/AkshatM1707/finance-assistant/src/models"
	"github.com/AkshatM1707/finance-assistant/src/util"
)

const maxUploadBytes = 10 << 20 // 10 MB

func GetTransactions(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		q := r.URL.Query()

		timeRange := q.Get("timeRange")
		if timeRange == "" {
			timeRange = "month"
		}
		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		f := analytics.Filter{
			UserID:   userID,
			Category: q.Get("category"),
		}
		if t := q.Get("type"); t != "" && t != "all" {
			f.Type = t
		}
		if start, ok := util.ResolveStartDate(timeRange, time.Now()); ok {
			f.Since = start
		}

		log.Printf("INFO: Fetching transactions for user %d: page=%d limit=%d timeRange=%s type=%s",
			userID, page, limit, timeRange, q.Get("type"))

		result, err := svc.Overview(r.Context(), f, page, limit)
		if err != nil {
			log.Printf("ERROR: Failed to fetch transactions for user %d: %v", userID, err)
			http.Error(w, "Failed to fetch transactions", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

func CreateTransaction(store analytics.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		req, err := util.ValidateTransaction(req)
		if err != nil {
			log.Printf("ERROR: Transaction validation failed for user %d: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		date, _ := util.ParseDate(req.Date)
		created, err := store.Insert(r.Context(), &models.Transaction{
			UserID:      userID,
			Type:        req.Type,
			Category:    req.Category,
			Amount:      req.Amount,
			Description: req.Description,
			Date:        date,
			Merchant:    req.Merchant,
			Location:    req.Location,
			Notes:       req.Notes,
			Status:      models.StatusCompleted,
		})
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for user %d: %v", userID, err)
			http.Error(w, "Failed to create transaction", http.StatusInternalServerError)
			return
		}

		log.Printf("INFO: Created transaction id %d for user %d, type %s, amount %.2f",
			created.ID, userID, created.Type, created.Amount)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":     "Transaction created successfully",
			"transaction": created,
		})
	}
}

// UploadStatement bulk-imports transactions from an uploaded statement
// document. Rows that fail validation are skipped and reported; valid rows
// still import.
func UploadStatement(store analytics.Store, provider extraction.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "No file provided", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		log.Printf("INFO: Processing statement upload for user %d: %s", userID, header.Filename)

		rows, err := provider.ExtractStatement(r.Context(), header.Filename, data)
		if err != nil {
			log.Printf("ERROR: Statement extraction failed for user %d: %v", userID, err)
			http.Error(w, "Failed to process statement", http.StatusInternalServerError)
			return
		}

		var created []models.Transaction
		var rowErrors []string
		for i, row := range rows {
			if row.Date == "" || row.Amount == 0 || row.Description == "" {
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d: Missing required fields (date, amount, or description)", i+1))
				continue
			}
			date, err := util.ParseDate(row.Date)
			if err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d: %v", i+1, err))
				continue
			}

			txType := row.Type
			if txType == "" {
				txType = models.TypeExpense
			}
			category := row.Category
			if category == "" {
				category = "Other"
			}

			tx, err := store.Insert(r.Context(), &models.Transaction{
				UserID:      userID,
				Type:        txType,
				Category:    category,
				Amount:      math.Abs(row.Amount),
				Description: row.Description,
				Date:        date,
				Status:      models.StatusCompleted,
			})
			if err != nil {
				log.Printf("ERROR: Failed to import statement row %d for user %d: %v", i+1, userID, err)
				rowErrors = append(rowErrors, fmt.Sprintf("Row %d: import failed", i+1))
				continue
			}
			created = append(created, *tx)
		}

		log.Printf("INFO: Statement processing completed for user %d: %d transactions created, %d errors",
			userID, len(created), len(rowErrors))

		if created == nil {
			created = []models.Transaction{}
		}
		if rowErrors == nil {
			rowErrors = []string{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":      "Statement processed successfully",
			"processed":    len(created),
			"errors":       rowErrors,
			"transactions": created,
		})
	}
}
