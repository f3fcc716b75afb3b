package util

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 6
}

// Validation errors double as the client-facing reason strings.
var (
	ErrInvalidType      = errors.New("Invalid transaction type")
	ErrMissingFields    = errors.New("Missing required fields")
	ErrCategoryRequired = errors.New("Category is required for expenses")
	ErrInvalidAmount    = errors.New("Amount must be greater than 0")
	ErrInvalidCategory  = errors.New("Invalid category")
	ErrInvalidDate      = errors.New("Invalid date")
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// ValidateTransaction checks a proposed transaction in order, first failure
// wins: type, required fields, category, amount, category set membership,
// date format. It is pure; the only derived value is the default income
// category when none was supplied, returned on the normalized copy.
func ValidateTransaction(req models.CreateTransactionRequest) (models.CreateTransactionRequest, error) {
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		return req, ErrInvalidType
	}
	req.Description = strings.TrimSpace(req.Description)
	if req.Amount == 0 || req.Description == "" || req.Date == "" {
		return req, ErrMissingFields
	}
	if req.Type == models.TypeExpense && req.Category == "" {
		return req, ErrCategoryRequired
	}
	if req.Type == models.TypeIncome && req.Category == "" {
		req.Category = models.DefaultIncomeCategory
	}
	if req.Amount <= 0 {
		return req, ErrInvalidAmount
	}
	if !models.ValidCategory(req.Type, req.Category) {
		return req, ErrInvalidCategory
	}
	if _, err := ParseDate(req.Date); err != nil {
		return req, err
	}
	return req, nil
}
