package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AkshatM1707/finance-assistant/src/analytics"
	db "github.com/AkshatM1707/finance-assistant/src/db/sql"
	"github.com/AkshatM1707/finance-assistant/src/extraction"
	"github.com/AkshatM1707/finance-assistant/src/models"
)

const receiptListLimit = 50

// ProcessReceipt runs the extraction provider over an uploaded receipt,
// stores the receipt record, and creates the linked expense transaction.
func ProcessReceipt(pool *pgxpool.Pool, store analytics.Store, provider extraction.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("receipt")
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

		log.Printf("INFO: Processing receipt for user %d: %s", userID, header.Filename)

		result, err := provider.ExtractReceipt(r.Context(), header.Filename, data)
		if err != nil {
			log.Printf("ERROR: Receipt extraction failed for user %d: %v", userID, err)
			http.Error(w, "Failed to process receipt", http.StatusInternalServerError)
			return
		}

		receipt := &models.Receipt{
			UserID:       userID,
			Filename:     header.Filename,
			StoredName:   uuid.NewString() + filepath.Ext(header.Filename),
			OriginalText: result.RawText,
			Extracted: models.ExtractedData{
				Merchant: result.Merchant,
				Total:    result.Total,
				Date:     result.Date,
				Items:    result.Items,
				Tax:      result.Tax,
				Subtotal: result.Subtotal,
			},
			Status: models.ReceiptCompleted,
		}
		saved, err := db.InsertReceipt(r.Context(), pool, receipt)
		if err != nil {
			log.Printf("ERROR: Failed to save receipt for user %d: %v", userID, err)
			http.Error(w, "Failed to save receipt", http.StatusInternalServerError)
			return
		}

		merchant := result.Merchant
		created, err := store.Insert(r.Context(), &models.Transaction{
			UserID:      userID,
			Type:        models.TypeExpense,
			Category:    "Shopping", // default, the user can recategorize later
			Amount:      result.Total,
			Description: "Receipt from " + merchant,
			Date:        result.Date,
			Merchant:    &merchant,
			Status:      models.StatusCompleted,
			Receipt: &models.ReceiptData{
				Items:    result.Items,
				Total:    result.Total,
				Tax:      result.Tax,
				Subtotal: result.Subtotal,
			},
		})
		if err != nil {
			log.Printf("ERROR: Failed to create transaction from receipt %d for user %d: %v", saved.ID, userID, err)
			http.Error(w, "Failed to create transaction from receipt", http.StatusInternalServerError)
			return
		}

		if err := db.LinkTransaction(r.Context(), pool, userID, saved.ID, created.ID); err != nil {
			log.Printf("ERROR: Failed to link transaction %d to receipt %d: %v", created.ID, saved.ID, err)
		}

		log.Printf("INFO: Receipt %d processed for user %d, transaction %d created", saved.ID, userID, created.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Receipt processed successfully",
			"receipt": map[string]interface{}{
				"id":       saved.ID,
				"filename": saved.Filename,
				"merchant": saved.Extracted.Merchant,
				"total":    saved.Extracted.Total,
				"date":     saved.Extracted.Date,
				"items":    saved.Extracted.Items,
				"status":   saved.Status,
			},
			"transactionId": created.ID,
		})
	}
}

func GetReceipts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)

		receipts, err := db.GetReceiptsForUser(r.Context(), pool, userID, receiptListLimit)
		if err != nil {
			log.Printf("ERROR: Failed to get receipts for user %d: %v", userID, err)
			http.Error(w, "Failed to fetch receipts", http.StatusInternalServerError)
			return
		}

		formatted := make([]map[string]interface{}, 0, len(receipts))
		for _, receipt := range receipts {
			date := receipt.Extracted.Date
			if date.IsZero() {
				date = receipt.CreatedAt
			}
			formatted = append(formatted, map[string]interface{}{
				"id":            receipt.ID,
				"filename":      receipt.Filename,
				"merchant":      receipt.Extracted.Merchant,
				"amount":        receipt.Extracted.Total,
				"date":          date,
				"status":        receipt.Status,
				"extractedData": receipt.Extracted,
				"transactionId": receipt.TransactionID,
				"createdAt":     receipt.CreatedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"receipts": formatted,
		})
	}
}
