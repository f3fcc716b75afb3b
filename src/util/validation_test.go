package util

import (
	"errors"
	"testing"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com", "x_1@sub.domain.org"}
	invalid := []string{"", "plain", "a@b", "@example.com", "a b@example.com"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("ValidateEmail(%q) = true, want false", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("12345") {
		t.Error("ValidatePassword accepted a 5-character password")
	}
	if !ValidatePassword("123456") {
		t.Error("ValidatePassword rejected a 6-character password")
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2024-05-17"); err != nil {
		t.Errorf("ParseDate rejected date-only format: %v", err)
	}
	if _, err := ParseDate("2024-05-17T10:30:00Z"); err != nil {
		t.Errorf("ParseDate rejected RFC3339: %v", err)
	}
	if _, err := ParseDate("17/05/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("ParseDate error = %v, want ErrInvalidDate", err)
	}
}

func TestValidateTransaction(t *testing.T) {
	base := models.CreateTransactionRequest{
		Type:        models.TypeExpense,
		Category:    "Food & Dining",
		Amount:      25.50,
		Description: "Lunch",
		Date:        "2024-05-17",
	}

	tests := []struct {
		name    string
		mutate  func(r *models.CreateTransactionRequest)
		wantErr error
	}{
		{"valid expense", func(r *models.CreateTransactionRequest) {}, nil},
		{"invalid type", func(r *models.CreateTransactionRequest) { r.Type = "transfer" }, ErrInvalidType},
		{"zero amount counts as missing", func(r *models.CreateTransactionRequest) { r.Amount = 0 }, ErrMissingFields},
		{"blank description", func(r *models.CreateTransactionRequest) { r.Description = "   " }, ErrMissingFields},
		{"missing date", func(r *models.CreateTransactionRequest) { r.Date = "" }, ErrMissingFields},
		{"expense without category", func(r *models.CreateTransactionRequest) { r.Category = "" }, ErrCategoryRequired},
		{"negative amount", func(r *models.CreateTransactionRequest) { r.Amount = -5 }, ErrInvalidAmount},
		{"unknown category", func(r *models.CreateTransactionRequest) { r.Category = "Gambling" }, ErrInvalidCategory},
		{"income category on expense", func(r *models.CreateTransactionRequest) { r.Category = "Salary" }, ErrInvalidCategory},
		{"bad date format", func(r *models.CreateTransactionRequest) { r.Date = "17-05-2024x" }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := ValidateTransaction(req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTransaction error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTransactionIncomeDefaultsCategory(t *testing.T) {
	req := models.CreateTransactionRequest{
		Type:        models.TypeIncome,
		Amount:      1000,
		Description: "Paycheck",
		Date:        "2024-05-01",
	}

	normalized, err := ValidateTransaction(req)
	if err != nil {
		t.Fatalf("ValidateTransaction returned error: %v", err)
	}
	if normalized.Category != models.DefaultIncomeCategory {
		t.Errorf("category = %q, want %q", normalized.Category, models.DefaultIncomeCategory)
	}
}

func TestValidateTransactionOrdering(t *testing.T) {
	// An invalid type wins over every other problem in the request.
	req := models.CreateTransactionRequest{Type: "transfer", Amount: -1, Category: "Nope"}
	if _, err := ValidateTransaction(req); !errors.Is(err, ErrInvalidType) {
		t.Errorf("error = %v, want ErrInvalidType first", err)
	}

	// Missing fields are reported before the category check.
	req = models.CreateTransactionRequest{Type: models.TypeExpense, Amount: 0}
	if _, err := ValidateTransaction(req); !errors.Is(err, ErrMissingFields) {
		t.Errorf("error = %v, want ErrMissingFields before category", err)
	}
}
