package models

// The category sets are fixed per transaction type. A transaction whose
// category is not in the set for its type is invalid.
var ExpenseCategories = []string{
	"Food & Dining",
	"Transportation",
	"Entertainment",
	"Shopping",
	"Healthcare",
	"Utilities",
	"Other",
}

var IncomeCategories = []string{
	"Salary",
	"Freelance",
	"Investment",
	"Other",
}

// DefaultIncomeCategory is substituted when an income transaction arrives
// without a category.
const DefaultIncomeCategory = "Salary"

func ValidCategory(txType, category string) bool {
	switch txType {
	case TypeExpense:
		return containsCategory(ExpenseCategories, category)
	case TypeIncome:
		return containsCategory(IncomeCategories, category)
	}
	return false
}

func ValidExpenseCategory(category string) bool {
	return containsCategory(ExpenseCategories, category)
}

func containsCategory(set []string, category string) bool {
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}
