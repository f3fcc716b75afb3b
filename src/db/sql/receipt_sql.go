package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	cache "github.com/AkshatM1707/finance-assistant/src/db"
	"github.com/AkshatM1707/finance-assistant/src/models"
)

const receiptColumns = `id, user_id, filename, stored_name, original_text, extracted_data, status, transaction_id, created_at, updated_at`

// testFilenamePattern matches receipts created by manual testing so the
// cleanup endpoint can sweep them away.
const testFilenamePattern = `(test-receipt|whatsapp|dummy|mock)`

func InsertReceipt(ctx context.Context, pool *pgxpool.Pool, r *models.Receipt) (*models.Receipt, error) {
	query := fmt.Sprintf(`
		INSERT INTO receipts (user_id, filename, stored_name, original_text, extracted_data, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s
	`, receiptColumns)

	var saved models.Receipt
	err := pool.QueryRow(ctx, query,
		r.UserID, r.Filename, r.StoredName, r.OriginalText, r.Extracted, r.Status,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Filename, &saved.StoredName, &saved.OriginalText,
		&saved.Extracted, &saved.Status, &saved.TransactionID, &saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// LinkTransaction records the transaction a processed receipt produced. A
// receipt links to at most one transaction.
func LinkTransaction(ctx context.Context, pool *pgxpool.Pool, userID, receiptID, transactionID int64) error {
	query := `
		UPDATE receipts
		SET transaction_id = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3
	`
	cmd, err := pool.Exec(ctx, query, transactionID, receiptID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("receipt not found")
	}
	return nil
}

func GetReceiptsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64, limit int) ([]models.Receipt, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM receipts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, receiptColumns)

	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []models.Receipt
	for rows.Next() {
		var r models.Receipt
		err := rows.Scan(
			&r.ID, &r.UserID, &r.Filename, &r.StoredName, &r.OriginalText,
			&r.Extracted, &r.Status, &r.TransactionID, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}
	return receipts, rows.Err()
}

// CleanupTestData deletes the user's receipts whose filename matches the
// test-data patterns, together with the transactions they created. Returns
// how many of each were removed.
func CleanupTestData(ctx context.Context, pool *pgxpool.Pool, userID int64) (int, int, error) {
	deleteTransactions := `
		DELETE FROM transactions t
		USING receipts r
		WHERE r.user_id = $1
		  AND r.transaction_id = t.id
		  AND r.filename ~* $2
	`
	txCmd, err := pool.Exec(ctx, deleteTransactions, userID, testFilenamePattern)
	if err != nil {
		return 0, 0, err
	}

	deleteReceipts := `
		DELETE FROM receipts
		WHERE user_id = $1 AND filename ~* $2
	`
	recCmd, err := pool.Exec(ctx, deleteReceipts, userID, testFilenamePattern)
	if err != nil {
		return 0, int(txCmd.RowsAffected()), err
	}

	cache.ClearAllAnalyticsCaches()
	return int(recCmd.RowsAffected()), int(txCmd.RowsAffected()), nil
}
