package analytics

import (
	"context"
	"time"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

// Filter narrows a transaction query. UserID is mandatory: no query is ever
// issued without an owner scope.
type Filter struct {
	UserID   int64
	Type     string    // "income", "expense", or "" for all
	Category string    // exact match, "" for all
	Since    time.Time // inclusive lower date bound, zero means unbounded
}

type CategoryStat struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type MerchantStat struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type MonthPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type DailyPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type CategoryPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// MonthTypeSum is one grouped-sum row: every record of one type within one
// calendar month.
type MonthTypeSum struct {
	Month int // 1-12
	Type  string
	Total float64
}

// DaySum is one grouped-sum row: all expenses of a single calendar day.
type DaySum struct {
	Day   time.Time
	Total float64
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ListSummary struct {
	Income        float64        `json:"income"`
	Expenses      float64        `json:"expenses"`
	Net           float64        `json:"net"`
	CategoryStats []CategoryStat `json:"categoryStats"`
}

// ListResult is the payload of the paginated transaction list endpoint.
type ListResult struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   Pagination           `json:"pagination"`
	Summary      ListSummary          `json:"summary"`
}

type ReportSummary struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	NetSavings       float64 `json:"netSavings"`
	TransactionCount int     `json:"transactionCount"`
}

// Report is the chart-ready analytics payload. Partial is set when one of
// the secondary aggregations failed and was replaced with an empty result.
type Report struct {
	Summary      ReportSummary   `json:"summary"`
	CategoryData []CategoryPoint `json:"categoryData"`
	MonthlyData  []MonthPoint    `json:"monthlyData"`
	DailyData    []DailyPoint    `json:"dailyData"`
	TopMerchants []MerchantStat  `json:"topMerchants"`
	Partial      bool            `json:"partial"`
}

// Store is the record store the aggregator runs over. Implementations must
// scope every operation to the filter's UserID; there is no unscoped
// variant of any call.
type Store interface {
	Find(ctx context.Context, f Filter, skip, limit int) ([]models.Transaction, error)
	Count(ctx context.Context, f Filter) (int, error)
	// SumByType sums amounts of the given type, overriding any type already
	// set on the filter.
	SumByType(ctx context.Context, f Filter, txType string) (float64, error)
	GroupByCategory(ctx context.Context, f Filter) ([]CategoryStat, error)
	GroupByDescription(ctx context.Context, f Filter, limit int) ([]MerchantStat, error)
	MonthlyByType(ctx context.Context, userID int64, since time.Time) ([]MonthTypeSum, error)
	DailyExpenses(ctx context.Context, userID int64, since time.Time) ([]DaySum, error)
	Insert(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
}
