package extraction

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

var mockMerchants = []string{
	"Walmart", "Target", "Starbucks", "McDonald's", "Shell Gas", "Kroger", "CVS Pharmacy",
}

const mockTaxRate = 0.08

// MockProvider simulates OCR by generating a plausible receipt text and then
// running the same parsing heuristics a real text extraction would feed.
type MockProvider struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewMockProvider() *MockProvider {
	return &MockProvider{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (p *MockProvider) ExtractReceipt(ctx context.Context, filename string, data []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	merchant := mockMerchants[p.rand.Intn(len(mockMerchants))]
	base := float64(p.rand.Intn(50) + 10) // $10-60
	p.mu.Unlock()

	tax := math.Round(base*mockTaxRate*100) / 100
	total := math.Round((base+tax)*100) / 100
	now := time.Now()

	text := fmt.Sprintf(`%s
Store #1234
%s
%s

Item 1: $%.2f
Item 2: $%.2f
Item 3: $%.2f

Subtotal: $%.2f
Tax: $%.2f
Total: $%.2f

Thank you for shopping!`,
		merchant,
		now.Format("1/2/2006"),
		now.Format("3:04:05 PM"),
		base*0.4, base*0.3, base*0.3,
		base, tax, total,
	)

	return ParseReceiptText(text), nil
}

// ParseReceiptText runs the extraction heuristics over raw receipt text.
func ParseReceiptText(text string) *Result {
	merchant := parseMerchant(text)
	total := parseTotal(text)
	date := parseDate(text)
	items := parseItems(text)

	tax := 0.0
	if len(items) > 0 {
		tax = total * mockTaxRate
	}

	return &Result{
		Merchant: merchant,
		Total:    total,
		Date:     date,
		Items:    items,
		Tax:      tax,
		Subtotal: total - tax,
		RawText:  text,
	}
}

var merchantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)walmart`),
	regexp.MustCompile(`(?i)target`),
	regexp.MustCompile(`(?i)costco`),
	regexp.MustCompile(`(?i)kroger`),
	regexp.MustCompile(`(?i)safeway`),
	regexp.MustCompile(`(?i)shell`),
	regexp.MustCompile(`(?i)chevron`),
	regexp.MustCompile(`(?i)bp`),
	regexp.MustCompile(`(?i)exxon`),
	regexp.MustCompile(`(?i)mobil`),
	regexp.MustCompile(`(?i)mcdonald`),
	regexp.MustCompile(`(?i)burger king`),
	regexp.MustCompile(`(?i)kfc`),
	regexp.MustCompile(`(?i)subway`),
	regexp.MustCompile(`(?i)starbucks`),
	regexp.MustCompile(`(?i)cvs`),
	regexp.MustCompile(`(?i)amazon`),
	regexp.MustCompile(`(?i)best buy`),
	regexp.MustCompile(`(?i)home depot`),
	regexp.MustCompile(`(?i)lowes`),
}

// parseMerchant checks the first few lines against the known merchant list
// and falls back to the first non-empty line.
func parseMerchant(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for i := 0; i < limit; i++ {
		for _, pattern := range merchantPatterns {
			if pattern.MatchString(lines[i]) {
				return lines[i]
			}
		}
	}

	if len(lines) > 0 {
		return lines[0]
	}
	return "Unknown Merchant"
}

var totalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total[:\s]*\$?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)amount[:\s]*\$?(\d+\.?\d*)`),
	regexp.MustCompile(`(?i)balance[:\s]*\$?(\d+\.?\d*)`),
	regexp.MustCompile(`\$(\d+\.\d{2})`),
}

// parseTotal takes the largest amount matched by the first pattern that
// matches anything; receipts list the grand total as the biggest number.
func parseTotal(text string) float64 {
	for _, pattern := range totalPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		max := 0.0
		for _, m := range matches {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > max {
				max = v
			}
		}
		return max
	}
	return 0
}

var datePatterns = []struct {
	re     *regexp.Regexp
	layout string
}{
	{regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}`), "1/2/2006"},
	{regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2}`), "1/2/06"},
	{regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`), "2006-1-2"},
	{regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{4}`), "1-2-2006"},
}

// parseDate defaults to now when no date is present.
func parseDate(text string) time.Time {
	for _, p := range datePatterns {
		if match := p.re.FindString(text); match != "" {
			if t, err := time.Parse(p.layout, match); err == nil {
				return t
			}
		}
	}
	return time.Now()
}

var itemLineRe = regexp.MustCompile(`(.+?)\s+\$?(\d+\.?\d*)$`)

var nonItemWords = []string{"total", "tax", "subtotal", "change"}

func parseItems(text string) []models.LineItem {
	var items []models.LineItem
	for _, line := range strings.Split(text, "\n") {
		match := itemLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(match[1]), ":"))
		price, err := strconv.ParseFloat(match[2], 64)
		if err != nil {
			continue
		}
		if isNonItemLine(name) || len(name) <= 2 || price <= 0 {
			continue
		}
		items = append(items, models.LineItem{Name: name, Price: price, Quantity: 1})
	}
	return items
}

func isNonItemLine(name string) bool {
	lower := strings.ToLower(name)
	for _, word := range nonItemWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// ExtractStatement returns the rows a PDF table extraction would produce.
// Dates are relative to now so bulk imports land inside the recent ranges.
func (p *MockProvider) ExtractStatement(ctx context.Context, filename string, data []byte) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now()
	day := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).Format("2006-01-02")
	}

	return []Row{
		{Date: day(1), Description: "Grocery Store Purchase", Amount: -85.43, Type: models.TypeExpense, Category: "Food & Dining"},
		{Date: day(2), Description: "Salary Deposit", Amount: 3200.00, Type: models.TypeIncome, Category: "Salary"},
		{Date: day(3), Description: "Gas Station", Amount: -45.67, Type: models.TypeExpense, Category: "Transportation"},
		{Date: day(5), Description: "Online Shopping", Amount: -129.99, Type: models.TypeExpense, Category: "Shopping"},
		{Date: day(7), Description: "Electric Bill", Amount: -78.20, Type: models.TypeExpense, Category: "Utilities"},
		{Date: day(9), Description: "Freelance Payment", Amount: 450.00, Type: models.TypeIncome, Category: "Freelance"},
		{Date: day(12), Description: "Restaurant Dinner", Amount: -62.35, Type: models.TypeExpense, Category: "Food & Dining"},
	}, nil
}
