package models

import "time"

const (
	ReceiptProcessing = "processing"
	ReceiptCompleted  = "completed"
	ReceiptFailed     = "failed"
)

// ExtractedData is the structured result of reading a receipt image.
type ExtractedData struct {
	Merchant string     `json:"merchant"`
	Total    float64    `json:"total"`
	Date     time.Time  `json:"date"`
	Items    []LineItem `json:"items,omitempty"`
	Tax      float64    `json:"tax"`
	Subtotal float64    `json:"subtotal"`
}

// Receipt stores the raw extracted text and structured extraction result of
// one uploaded receipt. At most one transaction is created per receipt and
// linked back via TransactionID.
type Receipt struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"userId"`
	Filename      string        `json:"filename"`
	StoredName    string        `json:"storedName"`
	OriginalText  string        `json:"originalText"`
	Extracted     ExtractedData `json:"extractedData"`
	Status        string        `json:"status"`
	TransactionID *int64        `json:"transactionId"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
