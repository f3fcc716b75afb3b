package extraction

import (
	"context"
	"time"

	"github.com/AkshatM1707/finance-assistant/src/models"
)

// Result is a structured read of a single receipt.
type Result struct {
	Merchant string
	Total    float64
	Date     time.Time
	Items    []models.LineItem
	Tax      float64
	Subtotal float64
	RawText  string
}

// Row is one transaction extracted from a tabular statement document.
// Amount keeps the sign convention of bank statements: negative for money
// out, positive for money in.
type Row struct {
	Date        string
	Description string
	Amount      float64
	Type        string
	Category    string
}

// Provider turns uploaded documents into structured financial data. The
// rest of the system does not care whether a transaction came from manual
// entry, a receipt scan, or a bulk import, so swapping in a real OCR
// backend only touches this interface.
type Provider interface {
	ExtractReceipt(ctx context.Context, filename string, data []byte) (*Result, error)
	ExtractStatement(ctx context.Context, filename string, data []byte) ([]Row, error)
}
