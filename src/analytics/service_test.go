package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

type fakeStore struct {
	find               func(ctx context.Context, f Filter, skip, limit int) ([]models.Transaction, error)
	count              func(ctx context.Context, f Filter) (int, error)
	sumByType          func(ctx context.Context, f Filter, txType string) (float64, error)
	groupByCategory    func(ctx context.Context, f Filter) ([]CategoryStat, error)
	groupByDescription func(ctx context.Context, f Filter, limit int) ([]MerchantStat, error)
	monthlyByType      func(ctx context.Context, userID int64, since time.Time) ([]MonthTypeSum, error)
	dailyExpenses      func(ctx context.Context, userID int64, since time.Time) ([]DaySum, error)
}

func (s *fakeStore) Find(ctx context.Context, f Filter, skip, limit int) ([]models.Transaction, error) {
	if s.find != nil {
		return s.find(ctx, f, skip, limit)
	}
	return nil, nil
}

func (s *fakeStore) Count(ctx context.Context, f Filter) (int, error) {
	if s.count != nil {
		return s.count(ctx, f)
	}
	return 0, nil
}

func (s *fakeStore) SumByType(ctx context.Context, f Filter, txType string) (float64, error) {
	if s.sumByType != nil {
		return s.sumByType(ctx, f, txType)
	}
	return 0, nil
}

func (s *fakeStore) GroupByCategory(ctx context.Context, f Filter) ([]CategoryStat, error) {
	if s.groupByCategory != nil {
		return s.groupByCategory(ctx, f)
	}
	return nil, nil
}

func (s *fakeStore) GroupByDescription(ctx context.Context, f Filter, limit int) ([]MerchantStat, error) {
	if s.groupByDescription != nil {
		return s.groupByDescription(ctx, f, limit)
	}
	return nil, nil
}

func (s *fakeStore) MonthlyByType(ctx context.Context, userID int64, since time.Time) ([]MonthTypeSum, error) {
	if s.monthlyByType != nil {
		return s.monthlyByType(ctx, userID, since)
	}
	return nil, nil
}

func (s *fakeStore) DailyExpenses(ctx context.Context, userID int64, since time.Time) ([]DaySum, error) {
	if s.dailyExpenses != nil {
		return s.dailyExpenses(ctx, userID, since)
	}
	return nil, nil
}

func (s *fakeStore) Insert(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	return t, nil
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{7, 7},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.in); got != tt.want {
			t.Errorf("ClampPage(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-10, 1},
		{1, 1},
		{50, 50},
		{100, 100},
		{101, MaxLimit},
		{1000, MaxLimit},
	}
	for _, tt := range tests {
		if got := ClampLimit(tt.in); got != tt.want {
			t.Errorf("ClampLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestOverviewSummaryAndPagination(t *testing.T) {
	store := &fakeStore{
		find: func(ctx context.Context, f Filter, skip, limit int) ([]models.Transaction, error) {
			if skip != 50 || limit != 50 {
				t.Errorf("Find skip/limit = %d/%d, want 50/50", skip, limit)
			}
			return []models.Transaction{{ID: 1, UserID: f.UserID, Type: models.TypeExpense, Amount: 12}}, nil
		},
		count: func(ctx context.Context, f Filter) (int, error) { return 101, nil },
		sumByType: func(ctx context.Context, f Filter, txType string) (float64, error) {
			if txType == models.TypeIncome {
				return 1000, nil
			}
			return 400, nil
		},
		groupByCategory: func(ctx context.Context, f Filter) ([]CategoryStat, error) {
			return []CategoryStat{{Category: "Food & Dining", Total: 400, Count: 3}}, nil
		},
	}
	svc := NewService(store)

	res, err := svc.Overview(context.Background(), Filter{UserID: 1}, 2, 0)
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}

	if res.Summary.Income != 1000 || res.Summary.Expenses != 400 || res.Summary.Net != 600 {
		t.Errorf("summary = %+v, want income 1000, expenses 400, net 600", res.Summary)
	}
	if len(res.Summary.CategoryStats) != 1 {
		t.Fatalf("got %d category stats, want 1", len(res.Summary.CategoryStats))
	}
	p := res.Pagination
	if p.Page != 2 || p.Limit != 50 || p.Total != 101 || p.Pages != 3 {
		t.Errorf("pagination = %+v, want page 2, limit 50, total 101, pages 3", p)
	}
}

func TestOverviewSummaryDegradesTogether(t *testing.T) {
	store := &fakeStore{
		find: func(ctx context.Context, f Filter, skip, limit int) ([]models.Transaction, error) {
			return []models.Transaction{{ID: 1}}, nil
		},
		count: func(ctx context.Context, f Filter) (int, error) { return 1, nil },
		sumByType: func(ctx context.Context, f Filter, txType string) (float64, error) {
			if txType == models.TypeIncome {
				return 1000, nil
			}
			return 0, errors.New("connection reset")
		},
		groupByCategory: func(ctx context.Context, f Filter) ([]CategoryStat, error) {
			return []CategoryStat{{Category: "Other", Total: 5, Count: 1}}, nil
		},
	}
	svc := NewService(store)

	res, err := svc.Overview(context.Background(), Filter{UserID: 1}, 1, 10)
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}
	if res.Summary.Income != 0 || res.Summary.Expenses != 0 || res.Summary.Net != 0 {
		t.Errorf("summary = %+v, want all zeros after aggregation failure", res.Summary)
	}
	if len(res.Summary.CategoryStats) != 0 {
		t.Errorf("got %d category stats, want empty after aggregation failure", len(res.Summary.CategoryStats))
	}
	if len(res.Transactions) != 1 {
		t.Errorf("got %d transactions, want list preserved", len(res.Transactions))
	}
}

func TestOverviewListFailureIsFatal(t *testing.T) {
	store := &fakeStore{
		find: func(ctx context.Context, f Filter, skip, limit int) ([]models.Transaction, error) {
			return nil, errors.New("down")
		},
	}
	svc := NewService(store)

	if _, err := svc.Overview(context.Background(), Filter{UserID: 1}, 1, 10); err == nil {
		t.Fatal("expected error when the list query fails")
	}
}

func TestReportMonthlySeriesIsDense(t *testing.T) {
	now := time.Date(2024, time.May, 17, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{
		monthlyByType: func(ctx context.Context, userID int64, since time.Time) ([]MonthTypeSum, error) {
			want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
			if !since.Equal(want) {
				t.Errorf("monthly since = %v, want %v", since, want)
			}
			return []MonthTypeSum{
				{Month: 2, Type: models.TypeIncome, Total: 900},
				{Month: 2, Type: models.TypeExpense, Total: 250},
				{Month: 5, Type: models.TypeExpense, Total: 40},
			}, nil
		},
	}
	svc := NewService(store)

	rep, err := svc.Report(context.Background(), 1, "month", now)
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	if len(rep.MonthlyData) != 12 {
		t.Fatalf("got %d monthly points, want 12", len(rep.MonthlyData))
	}
	if rep.MonthlyData[0].Month != "Jan" || rep.MonthlyData[11].Month != "Dec" {
		t.Errorf("month labels = %s..%s, want Jan..Dec", rep.MonthlyData[0].Month, rep.MonthlyData[11].Month)
	}
	feb := rep.MonthlyData[1]
	if feb.Income != 900 || feb.Expenses != 250 {
		t.Errorf("Feb = %+v, want income 900, expenses 250", feb)
	}
	may := rep.MonthlyData[4]
	if may.Income != 0 || may.Expenses != 40 {
		t.Errorf("May = %+v, want income 0, expenses 40", may)
	}
	if jan := rep.MonthlyData[0]; jan.Income != 0 || jan.Expenses != 0 {
		t.Errorf("Jan = %+v, want zero-filled", jan)
	}
}

func TestReportDailySeriesIsSparse(t *testing.T) {
	now := time.Date(2024, time.May, 17, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{
		dailyExpenses: func(ctx context.Context, userID int64, since time.Time) ([]DaySum, error) {
			want := now.Add(-30 * 24 * time.Hour)
			if !since.Equal(want) {
				t.Errorf("daily since = %v, want %v", since, want)
			}
			return []DaySum{
				{Day: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), Total: 12.5},
				{Day: time.Date(2024, time.May, 16, 0, 0, 0, 0, time.UTC), Total: 80},
			}, nil
		},
	}
	svc := NewService(store)

	rep, err := svc.Report(context.Background(), 1, "month", now)
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	if len(rep.DailyData) != 2 {
		t.Fatalf("got %d daily points, want 2", len(rep.DailyData))
	}
	if rep.DailyData[0].Date != "3/5" || rep.DailyData[0].Amount != 12.5 {
		t.Errorf("first point = %+v, want 3/5 for 12.5", rep.DailyData[0])
	}
	if rep.DailyData[1].Date != "16/5" || rep.DailyData[1].Amount != 80 {
		t.Errorf("second point = %+v, want 16/5 for 80", rep.DailyData[1])
	}
}

func TestReportSummaryAndMerchants(t *testing.T) {
	now := time.Date(2024, time.May, 17, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{
		sumByType: func(ctx context.Context, f Filter, txType string) (float64, error) {
			wantSince := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
			if !f.Since.Equal(wantSince) {
				t.Errorf("sum filter since = %v, want %v", f.Since, wantSince)
			}
			if txType == models.TypeIncome {
				return 1000, nil
			}
			return 400, nil
		},
		groupByCategory: func(ctx context.Context, f Filter) ([]CategoryStat, error) {
			if f.Type != models.TypeExpense {
				t.Errorf("category filter type = %q, want expense", f.Type)
			}
			return []CategoryStat{
				{Category: "Food & Dining", Total: 300, Count: 4},
				{Category: "Transportation", Total: 100, Count: 2},
			}, nil
		},
		groupByDescription: func(ctx context.Context, f Filter, limit int) ([]MerchantStat, error) {
			if limit != 5 {
				t.Errorf("merchant limit = %d, want 5", limit)
			}
			return []MerchantStat{{Name: "Walmart", Amount: 120, Count: 3}}, nil
		},
	}
	svc := NewService(store)

	rep, err := svc.Report(context.Background(), 1, "month", now)
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	s := rep.Summary
	if s.TotalIncome != 1000 || s.TotalExpenses != 400 || s.NetSavings != 600 {
		t.Errorf("summary = %+v, want income 1000, expenses 400, net 600", s)
	}
	if s.TransactionCount != 6 {
		t.Errorf("transaction count = %d, want 6", s.TransactionCount)
	}
	if len(rep.CategoryData) != 2 || rep.CategoryData[0].Name != "Food & Dining" {
		t.Errorf("category data = %+v, want ordered breakdown", rep.CategoryData)
	}
	if len(rep.TopMerchants) != 1 || rep.TopMerchants[0].Name != "Walmart" {
		t.Errorf("top merchants = %+v", rep.TopMerchants)
	}
	if rep.Partial {
		t.Error("Partial = true, want false when every query succeeds")
	}
}

func TestReportSecondaryFailureDegrades(t *testing.T) {
	store := &fakeStore{
		sumByType: func(ctx context.Context, f Filter, txType string) (float64, error) {
			return 100, nil
		},
		monthlyByType: func(ctx context.Context, userID int64, since time.Time) ([]MonthTypeSum, error) {
			return nil, errors.New("timeout")
		},
		groupByCategory: func(ctx context.Context, f Filter) ([]CategoryStat, error) {
			return []CategoryStat{{Category: "Other", Total: 100, Count: 1}}, nil
		},
	}
	svc := NewService(store)

	rep, err := svc.Report(context.Background(), 1, "year", time.Now())
	if err != nil {
		t.Fatalf("Report returned error: %v", err)
	}

	if !rep.Partial {
		t.Error("Partial = false, want true after a secondary aggregation failure")
	}
	if len(rep.MonthlyData) != 12 {
		t.Fatalf("got %d monthly points, want zero-filled 12", len(rep.MonthlyData))
	}
	for _, p := range rep.MonthlyData {
		if p.Income != 0 || p.Expenses != 0 {
			t.Errorf("month %s = %+v, want zero after failure", p.Month, p)
		}
	}
	if len(rep.CategoryData) != 1 {
		t.Errorf("got %d category points, want other aggregations preserved", len(rep.CategoryData))
	}
	if rep.Summary.TotalIncome != 100 {
		t.Errorf("total income = %v, want totals preserved", rep.Summary.TotalIncome)
	}
}

func TestReportTotalsFailureIsFatal(t *testing.T) {
	store := &fakeStore{
		sumByType: func(ctx context.Context, f Filter, txType string) (float64, error) {
			if txType == models.TypeExpense {
				return 0, errors.New("down")
			}
			return 100, nil
		},
	}
	svc := NewService(store)

	if _, err := svc.Report(context.Background(), 1, "month", time.Now()); err == nil {
		t.Fatal("expected error when a totals query fails")
	}
}

func TestReportUnknownRangeIsUnbounded(t *testing.T) {
	var gotSince time.Time
	store := &fakeStore{
		sumByType: func(ctx context.Context, f Filter, txType string) (float64, error) {
			if txType == models.TypeIncome {
				gotSince = f.Since
			}
			return 0, nil
		},
	}
	svc := NewService(store)

	if _, err := svc.Report(context.Background(), 1, "all", time.Now()); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if !gotSince.IsZero() {
		t.Errorf("since = %v, want zero bound for unknown range token", gotSince)
	}
}
