package models

import "testing"

func TestValidCategory(t *testing.T) {
	tests := []struct {
		txType   string
		category string
		want     bool
	}{
		{TypeExpense, "Food & Dining", true},
		{TypeExpense, "Utilities", true},
		{TypeExpense, "Other", true},
		{TypeExpense, "Salary", false},
		{TypeExpense, "food & dining", false},
		{TypeExpense, "", false},
		{TypeIncome, "Salary", true},
		{TypeIncome, "Freelance", true},
		{TypeIncome, "Investment", true},
		{TypeIncome, "Other", true},
		{TypeIncome, "Healthcare", false},
		{"transfer", "Other", false},
	}

	for _, tt := range tests {
		if got := ValidCategory(tt.txType, tt.category); got != tt.want {
			t.Errorf("ValidCategory(%q, %q) = %v, want %v", tt.txType, tt.category, got, tt.want)
		}
	}
}

func TestValidExpenseCategory(t *testing.T) {
	if !ValidExpenseCategory("Shopping") {
		t.Error("ValidExpenseCategory rejected Shopping")
	}
	if ValidExpenseCategory("Salary") {
		t.Error("ValidExpenseCategory accepted an income category")
	}
}

func TestDefaultIncomeCategoryIsValid(t *testing.T) {
	if !ValidCategory(TypeIncome, DefaultIncomeCategory) {
		t.Errorf("default income category %q is not a valid income category", DefaultIncomeCategory)
	}
}
