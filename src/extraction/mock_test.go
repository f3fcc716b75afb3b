package extraction

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

const sampleReceipt = `Walmart
Store #1234
5/17/2024

Bananas 2.50
Milk $3.99
Bread: $2.49

Subtotal: $8.98
Tax: $0.72
Total: $9.70

Thank you for shopping!`

func TestParseReceiptText(t *testing.T) {
	res := ParseReceiptText(sampleReceipt)

	if res.Merchant != "Walmart" {
		t.Errorf("merchant = %q, want Walmart", res.Merchant)
	}
	if res.Total != 9.70 {
		t.Errorf("total = %v, want 9.70", res.Total)
	}
	want := time.Date(2024, time.May, 17, 0, 0, 0, 0, time.UTC)
	if !res.Date.Equal(want) {
		t.Errorf("date = %v, want %v", res.Date, want)
	}
	if len(res.Items) != 3 {
		t.Fatalf("got %d items, want 3: %+v", len(res.Items), res.Items)
	}
	if res.Items[0].Name != "Bananas" || res.Items[0].Price != 2.50 {
		t.Errorf("first item = %+v, want Bananas at 2.50", res.Items[0])
	}
	if res.Items[2].Name != "Bread" {
		t.Errorf("third item = %+v, want trailing colon stripped", res.Items[2])
	}
	if res.RawText != sampleReceipt {
		t.Error("raw text not preserved")
	}
}

func TestParseTotalTakesLargestMatch(t *testing.T) {
	text := "Subtotal: $8.98\nTotal: $9.70"
	res := ParseReceiptText(text)
	if res.Total != 9.70 {
		t.Errorf("total = %v, want the largest matched amount 9.70", res.Total)
	}
}

func TestParseTotalNoAmounts(t *testing.T) {
	if res := ParseReceiptText("just some text"); res.Total != 0 {
		t.Errorf("total = %v, want 0 when nothing matches", res.Total)
	}
}

func TestParseMerchantFallback(t *testing.T) {
	res := ParseReceiptText("Corner Bodega\nTotal: $4.00")
	if res.Merchant != "Corner Bodega" {
		t.Errorf("merchant = %q, want first line fallback", res.Merchant)
	}

	if res := ParseReceiptText(""); res.Merchant != "Unknown Merchant" {
		t.Errorf("merchant = %q, want Unknown Merchant for empty text", res.Merchant)
	}
}

func TestParseMerchantChecksEarlyLinesOnly(t *testing.T) {
	text := "Line one\nLine two\nLine three\nLine four\nLine five\nStarbucks"
	res := ParseReceiptText(text)
	if res.Merchant != "Line one" {
		t.Errorf("merchant = %q, want fallback when the match is past the first five lines", res.Merchant)
	}
}

func TestParseItemsFiltering(t *testing.T) {
	text := `Target
Coffee $4.50
AB 3.00
Change: $5.00
Total: $4.50`
	res := ParseReceiptText(text)

	if len(res.Items) != 1 {
		t.Fatalf("got %d items, want 1: %+v", len(res.Items), res.Items)
	}
	item := res.Items[0]
	if item.Name != "Coffee" || item.Price != 4.50 || item.Quantity != 1 {
		t.Errorf("item = %+v, want Coffee at 4.50 x1", item)
	}
}

func TestExtractReceiptInvariants(t *testing.T) {
	p := NewMockProvider()

	res, err := p.ExtractReceipt(context.Background(), "receipt.jpg", []byte("fake"))
	if err != nil {
		t.Fatalf("ExtractReceipt returned error: %v", err)
	}

	if res.Merchant == "" {
		t.Error("merchant is empty")
	}
	if res.Total < 10 {
		t.Errorf("total = %v, want at least the minimum synthetic base", res.Total)
	}
	if len(res.Items) == 0 {
		t.Error("no items extracted from synthetic receipt")
	}
	if math.Abs(res.Tax+res.Subtotal-res.Total) > 0.001 {
		t.Errorf("tax %v + subtotal %v != total %v", res.Tax, res.Subtotal, res.Total)
	}
	if res.RawText == "" {
		t.Error("raw text is empty")
	}
}

func TestExtractReceiptCancelledContext(t *testing.T) {
	p := NewMockProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.ExtractReceipt(ctx, "receipt.jpg", nil); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestExtractStatement(t *testing.T) {
	p := NewMockProvider()

	rows, err := p.ExtractStatement(context.Background(), "statement.pdf", []byte("fake"))
	if err != nil {
		t.Fatalf("ExtractStatement returned error: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("no rows extracted")
	}

	now := time.Now()
	for i, row := range rows {
		d, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			t.Errorf("row %d date %q not parseable: %v", i, row.Date, err)
			continue
		}
		if d.After(now) {
			t.Errorf("row %d date %v is in the future", i, d)
		}
		switch row.Type {
		case models.TypeExpense:
			if row.Amount >= 0 {
				t.Errorf("row %d expense amount = %v, want negative", i, row.Amount)
			}
			if !models.ValidExpenseCategory(row.Category) {
				t.Errorf("row %d expense category %q not recognized", i, row.Category)
			}
		case models.TypeIncome:
			if row.Amount <= 0 {
				t.Errorf("row %d income amount = %v, want positive", i, row.Amount)
			}
		default:
			t.Errorf("row %d has type %q", i, row.Type)
		}
	}
}
