package analytics

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AkshatM1707/finance-assistant/src/models"
	"github.com/AkshatM1707/finance-assistant/src/util"
)

const (
	DefaultLimit = 50
	MaxLimit     = 100

	topMerchantLimit = 5
	dailyWindow      = 30 * 24 * time.Hour
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Service computes transaction summaries from a Store. Aggregation queries
// with no data dependency on each other are dispatched concurrently and
// joined; the Timeout caps the whole fan-out.
type Service struct {
	Store   Store
	Timeout time.Duration
}

func NewService(store Store) *Service {
	return &Service{Store: store, Timeout: 10 * time.Second}
}

func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func ClampLimit(limit int) int {
	if limit == 0 {
		return DefaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Overview produces the paginated list payload: the requested page of
// transactions sorted by date descending, the total count, and summary
// totals plus a category breakdown over the same filter.
//
// The list and count are primary: their failure fails the whole call. The
// three summary queries run concurrently and degrade together to zero/empty
// results if any of them fails, so the list stays usable when the backend is
// only partially healthy.
func (s *Service) Overview(ctx context.Context, f Filter, page, limit int) (*ListResult, error) {
	page = ClampPage(page)
	limit = ClampLimit(limit)

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	transactions, err := s.Store.Find(ctx, f, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	total, err := s.Store.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	var income, expenses float64
	var cats []CategoryStat
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = s.Store.SumByType(gctx, f, models.TypeIncome)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.Store.SumByType(gctx, f, models.TypeExpense)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = s.Store.GroupByCategory(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("ERROR: Summary aggregation failed for user %d: %v", f.UserID, err)
		income, expenses, cats = 0, 0, nil
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if cats == nil {
		cats = []CategoryStat{}
	}

	return &ListResult{
		Transactions: transactions,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(limit))),
		},
		Summary: ListSummary{
			Income:        income,
			Expenses:      expenses,
			Net:           income - expenses,
			CategoryStats: cats,
		},
	}, nil
}

// Report computes the analytics payload for one user.
//
// The income and expense totals are primary: if either fails the whole call
// fails. The four grouped aggregations (category breakdown, monthly series,
// daily trend, top merchants) each degrade independently to an empty result
// on failure, flagged via Report.Partial.
//
// The monthly series always spans the current calendar year and the daily
// trend always spans the rolling 30 days ending at now, both regardless of
// the requested range token.
func (s *Service) Report(ctx context.Context, userID int64, rangeToken string, now time.Time) (*Report, error) {
	if rangeToken == "" {
		rangeToken = "month"
	}

	rangeF := Filter{UserID: userID}
	if start, ok := util.ResolveStartDate(rangeToken, now); ok {
		rangeF.Since = start
	}
	expenseF := rangeF
	expenseF.Type = models.TypeExpense

	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	thirtyDaysAgo := now.Add(-dailyWindow)

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	var (
		income, expenses float64
		cats             []CategoryStat
		months           []MonthTypeSum
		days             []DaySum
		top              []MerchantStat

		catFailed, monthFailed, dayFailed, topFailed bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = s.Store.SumByType(gctx, rangeF, models.TypeIncome)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.Store.SumByType(gctx, rangeF, models.TypeExpense)
		return err
	})
	g.Go(func() error {
		var err error
		if cats, err = s.Store.GroupByCategory(gctx, expenseF); err != nil {
			log.Printf("ERROR: Category aggregation failed for user %d: %v", userID, err)
			catFailed = true
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if months, err = s.Store.MonthlyByType(gctx, userID, yearStart); err != nil {
			log.Printf("ERROR: Monthly aggregation failed for user %d: %v", userID, err)
			monthFailed = true
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if days, err = s.Store.DailyExpenses(gctx, userID, thirtyDaysAgo); err != nil {
			log.Printf("ERROR: Daily aggregation failed for user %d: %v", userID, err)
			dayFailed = true
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if top, err = s.Store.GroupByDescription(gctx, expenseF, topMerchantLimit); err != nil {
			log.Printf("ERROR: Top merchant aggregation failed for user %d: %v", userID, err)
			topFailed = true
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate totals: %w", err)
	}

	if catFailed {
		cats = nil
	}
	if monthFailed {
		months = nil
	}
	if dayFailed {
		days = nil
	}
	if topFailed {
		top = nil
	}
	if top == nil {
		top = []MerchantStat{}
	}

	count := 0
	for _, c := range cats {
		count += c.Count
	}

	return &Report{
		Summary: ReportSummary{
			TotalIncome:      income,
			TotalExpenses:    expenses,
			NetSavings:       income - expenses,
			TransactionCount: count,
		},
		CategoryData: buildCategoryData(cats),
		MonthlyData:  buildMonthlySeries(months),
		DailyData:    buildDailySeries(days),
		TopMerchants: top,
		Partial:      catFailed || monthFailed || dayFailed || topFailed,
	}, nil
}

// buildMonthlySeries shapes grouped month/type rows into the dense 12-bucket
// chart series. Months with no records keep zero values; income and expense
// sums for the same month are independent.
func buildMonthlySeries(rows []MonthTypeSum) []MonthPoint {
	series := make([]MonthPoint, 12)
	for i := range series {
		series[i].Month = monthNames[i]
	}
	for _, row := range rows {
		if row.Month < 1 || row.Month > 12 {
			continue
		}
		p := &series[row.Month-1]
		if row.Type == models.TypeIncome {
			p.Income = row.Total
		} else {
			p.Expenses = row.Total
		}
	}
	return series
}

// buildDailySeries is sparse on purpose: days without expenses are absent,
// unlike the monthly series which is always dense.
func buildDailySeries(rows []DaySum) []DailyPoint {
	points := make([]DailyPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, DailyPoint{
			Date:   fmt.Sprintf("%d/%d", row.Day.Day(), int(row.Day.Month())),
			Amount: row.Total,
		})
	}
	return points
}

func buildCategoryData(cats []CategoryStat) []CategoryPoint {
	points := make([]CategoryPoint, 0, len(cats))
	for _, c := range cats {
		points = append(points, CategoryPoint{Name: c.Category, Value: c.Total, Count: c.Count})
	}
	return points
}
