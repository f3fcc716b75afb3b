package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AkshatM1707/finance-assistant/src/analytics"
	cache "github.com/AkshatM1707/finance-assistant/src/db"
	"github.com/AkshatM1707/finance-assistant/src/models"
)

const transactionColumns = `id, user_id, type, category, amount, description, date, merchant, location, notes, receipt, status, created_at, updated_at`

// TransactionStore runs every transaction query against Postgres. Each
// statement binds the owning user id from the filter; no unscoped variant
// exists.
type TransactionStore struct {
	Pool *pgxpool.Pool
}

func NewTransactionStore(pool *pgxpool.Pool) *TransactionStore {
	return &TransactionStore{Pool: pool}
}

// filterClause builds the WHERE clause for a filter. UserID is always the
// first condition.
func filterClause(f analytics.Filter) (string, []interface{}) {
	where := "user_id = $1"
	args := []interface{}{f.UserID}
	if f.Type != "" && f.Type != "all" {
		args = append(args, f.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if !f.Since.IsZero() {
		args = append(args, f.Since)
		where += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	return where, args
}

func scanTransaction(row interface{ Scan(...interface{}) error }) (*models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(
		&t.ID, &t.UserID, &t.Type, &t.Category, &t.Amount, &t.Description,
		&t.Date, &t.Merchant, &t.Location, &t.Notes, &t.Receipt, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TransactionStore) Find(ctx context.Context, f analytics.Filter, skip, limit int) ([]models.Transaction, error) {
	where, args := filterClause(f)
	args = append(args, limit, skip)
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE %s
		ORDER BY date DESC
		LIMIT $%d OFFSET $%d
	`, transactionColumns, where, len(args)-1, len(args))

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

func (s *TransactionStore) Count(ctx context.Context, f analytics.Filter) (int, error) {
	where, args := filterClause(f)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM transactions WHERE %s`, where)

	var total int
	err := s.Pool.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

func (s *TransactionStore) SumByType(ctx context.Context, f analytics.Filter, txType string) (float64, error) {
	f.Type = txType
	where, args := filterClause(f)
	query := fmt.Sprintf(`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE %s`, where)

	var total float64
	err := s.Pool.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

func (s *TransactionStore) GroupByCategory(ctx context.Context, f analytics.Filter) ([]analytics.CategoryStat, error) {
	where, args := filterClause(f)
	// Ties on total break by category name so the order is deterministic.
	query := fmt.Sprintf(`
		SELECT category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM transactions
		WHERE %s
		GROUP BY category
		ORDER BY total DESC, category ASC
	`, where)

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []analytics.CategoryStat
	for rows.Next() {
		var st analytics.CategoryStat
		if err := rows.Scan(&st.Category, &st.Total, &st.Count); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *TransactionStore) GroupByDescription(ctx context.Context, f analytics.Filter, limit int) ([]analytics.MerchantStat, error) {
	where, args := filterClause(f)
	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT description, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM transactions
		WHERE %s
		GROUP BY description
		ORDER BY total DESC, description ASC
		LIMIT $%d
	`, where, len(args))

	rows, err := s.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []analytics.MerchantStat
	for rows.Next() {
		var st analytics.MerchantStat
		if err := rows.Scan(&st.Name, &st.Amount, &st.Count); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (s *TransactionStore) MonthlyByType(ctx context.Context, userID int64, since time.Time) ([]analytics.MonthTypeSum, error) {
	query := `
		SELECT EXTRACT(MONTH FROM date)::int AS month, type, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = $1 AND date >= $2
		GROUP BY month, type
		ORDER BY month
	`

	rows, err := s.Pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []analytics.MonthTypeSum
	for rows.Next() {
		var m analytics.MonthTypeSum
		if err := rows.Scan(&m.Month, &m.Type, &m.Total); err != nil {
			return nil, err
		}
		sums = append(sums, m)
	}
	return sums, rows.Err()
}

func (s *TransactionStore) DailyExpenses(ctx context.Context, userID int64, since time.Time) ([]analytics.DaySum, error) {
	query := `
		SELECT date_trunc('day', date) AS day, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND date >= $2
		GROUP BY day
		ORDER BY day
	`

	rows, err := s.Pool.Query(ctx, query, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sums []analytics.DaySum
	for rows.Next() {
		var d analytics.DaySum
		if err := rows.Scan(&d.Day, &d.Total); err != nil {
			return nil, err
		}
		sums = append(sums, d)
	}
	return sums, rows.Err()
}

func (s *TransactionStore) Insert(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	if t.Status == "" {
		t.Status = models.StatusCompleted
	}

	query := fmt.Sprintf(`
		INSERT INTO transactions (user_id, type, category, amount, description, date, merchant, location, notes, receipt, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING %s
	`, transactionColumns)

	created, err := scanTransaction(s.Pool.QueryRow(ctx, query,
		t.UserID, t.Type, t.Category, t.Amount, t.Description, t.Date,
		t.Merchant, t.Location, t.Notes, t.Receipt, t.Status,
	))
	if err != nil {
		return nil, err
	}

	cache.ClearAllAnalyticsCaches()
	return created, nil
}
