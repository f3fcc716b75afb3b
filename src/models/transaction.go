package models

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// LineItem is a single purchased item read off a receipt.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ReceiptData is the extraction payload embedded on a transaction that was
// created from receipt processing.
type ReceiptData struct {
	Items    []LineItem `json:"items,omitempty"`
	Total    float64    `json:"total"`
	Tax      float64    `json:"tax"`
	Subtotal float64    `json:"subtotal"`
}

// Transaction is the canonical financial record. Every transaction belongs
// to exactly one user and is never edited after creation.
type Transaction struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"userId"`
	Type        string       `json:"type"`
	Category    string       `json:"category"`
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	Merchant    *string      `json:"merchant"`
	Location    *string      `json:"location"`
	Notes       *string      `json:"notes"`
	Receipt     *ReceiptData `json:"receipt,omitempty"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type CreateTransactionRequest struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Merchant    *string `json:"merchant"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}
