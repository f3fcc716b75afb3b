package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

const budgetColumns = `id, user_id, name, amount, spent, category, period, start_date, end_date, is_active, alerts, created_at, updated_at`

func scanBudget(row pgx.Row) (*models.Budget, error) {
	var b models.Budget
	err := row.Scan(
		&b.ID, &b.UserID, &b.Name, &b.Amount, &b.Spent, &b.Category, &b.Period,
		&b.StartDate, &b.EndDate, &b.IsActive, &b.Alerts, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := fmt.Sprintf(`
		INSERT INTO budgets (user_id, name, amount, category, period, start_date, end_date, is_active, alerts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, budgetColumns)
	return scanBudget(pool.QueryRow(ctx, query,
		budget.UserID, budget.Name, budget.Amount, budget.Category, budget.Period,
		budget.StartDate, budget.EndDate, budget.IsActive, budget.Alerts,
	))
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, userID, budgetID int64) (*models.Budget, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM budgets WHERE id = $1 AND user_id = $2
	`, budgetColumns)
	return scanBudget(pool.QueryRow(ctx, query, budgetID, userID))
}

func GetBudgetByCategory(ctx context.Context, pool *pgxpool.Pool, userID int64, category string) (*models.Budget, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM budgets WHERE user_id = $1 AND category = $2
	`, budgetColumns)
	return scanBudget(pool.QueryRow(ctx, query, userID, category))
}

func GetAllBudgetsForUser(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Budget, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM budgets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, budgetColumns)

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *b)
	}
	return budgets, rows.Err()
}

func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := fmt.Sprintf(`
		UPDATE budgets
		SET name = $1, amount = $2, category = $3, period = $4, start_date = $5,
			end_date = $6, is_active = $7, alerts = $8, updated_at = NOW()
		WHERE id = $9 AND user_id = $10
		RETURNING %s
	`, budgetColumns)
	return scanBudget(pool.QueryRow(ctx, query,
		budget.Name, budget.Amount, budget.Category, budget.Period, budget.StartDate,
		budget.EndDate, budget.IsActive, budget.Alerts, budget.ID, budget.UserID,
	))
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, userID, budgetID int64) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, budgetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("budget not found")
	}
	return nil
}
