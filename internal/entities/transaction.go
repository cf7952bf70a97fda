package entities

import "time"

// TransactionType classifies both transactions and categories.
type TransactionType string

const (
	TypeIncome         TransactionType = "INCOME"
	TypeExpense        TransactionType = "EXPENSE"
	TypeCreditGiven    TransactionType = "CREDIT_GIVEN"
	TypeCreditReceived TransactionType = "CREDIT_RECEIVED"
)

// PaymentMode is how a transaction was settled: ONLINE or CASH.
type PaymentMode string

// Recurrence (DAILY, WEEKLY, MONTHLY or YEARLY) is declarative only; nothing
// schedules recurring transactions.
type Recurrence string

// Transaction is a dated, typed, user-owned monetary record.
type Transaction struct {
	ID          string          `json:"id"` // UUID
	UserID      string          `json:"userId"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      float64         `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	Recurrence  *Recurrence     `json:"recurrence,omitempty"`
	RelatedTo   *string         `json:"relatedTo,omitempty"` // counterparty for credit transactions
	IsPaid      *bool           `json:"isPaid,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
