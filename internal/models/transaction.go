package models

import "github.com/shopspring/decimal"

// TransactionType indicates whether a transaction row is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction represents a ledger row as stored in the database.
// Note: Amount uses a precise decimal type, never floats.
type Transaction struct {
	TransactionID        string          `db:"transaction_id"`
	AccountID            string          `db:"account_id"`
	CounterpartAccountID *string         `db:"counterpart_account_id"` // Nullable
	TransactionType      TransactionType `db:"transaction_type"`
	Category             string          `db:"category"`
	Amount               decimal.Decimal `db:"amount"`
	Description          string          `db:"description"`
	AuditFields
}
