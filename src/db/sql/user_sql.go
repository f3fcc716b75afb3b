package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

const userColumns = `id, first_name, last_name, email, password_hash, currency, timezone, preferences, created_at, updated_at`

var ErrUserNotFound = errors.New("user not found")

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.Currency, &u.Timezone, &u.Preferences, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &u, nil
}

func GetUserByID(ctx context.Context, pool *pgxpool.Pool, userID int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(pool.QueryRow(ctx, query, userID))
}

func GetUserByEmail(ctx context.Context, pool *pgxpool.Pool, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(pool.QueryRow(ctx, query, email))
}

func CreateUser(ctx context.Context, pool *pgxpool.Pool, req models.RegisterRequest, hashedPassword string) (*models.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (first_name, last_name, email, password_hash, preferences)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s
	`, userColumns)

	user, err := scanUser(pool.QueryRow(ctx, query,
		req.FirstName, req.LastName, req.Email, hashedPassword, models.DefaultPreferences(),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func UpdateUserProfile(ctx context.Context, pool *pgxpool.Pool, userID int64, currency, timezone string, prefs models.Preferences) (*models.User, error) {
	query := fmt.Sprintf(`
		UPDATE users
		SET currency = $1, timezone = $2, preferences = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING %s
	`, userColumns)

	return scanUser(pool.QueryRow(ctx, query, currency, timezone, prefs, userID))
}
