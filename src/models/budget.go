package models

import "time"

const (
	PeriodMonthly = "monthly"
	PeriodWeekly  = "weekly"
	PeriodYearly  = "yearly"
)

// BudgetAlerts configures when the user is warned about overspending.
// Threshold is a percentage of the budget amount.
type BudgetAlerts struct {
	Enabled   bool    `json:"enabled"`
	Threshold float64 `json:"threshold"`
}

func DefaultBudgetAlerts() BudgetAlerts {
	return BudgetAlerts{Enabled: true, Threshold: 80}
}

// Budget is a spending cap for one expense category over a recurring period.
type Budget struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"userId"`
	Name      string       `json:"name"`
	Amount    float64      `json:"amount"`
	Spent     float64      `json:"spent"`
	Category  string       `json:"category"`
	Period    string       `json:"period"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	IsActive  bool         `json:"isActive"`
	Alerts    BudgetAlerts `json:"alerts"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func ValidPeriod(period string) bool {
	return period == PeriodMonthly || period == PeriodWeekly || period == PeriodYearly
}
