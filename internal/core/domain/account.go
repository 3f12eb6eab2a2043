package domain

import (
	"github.com/shopspring/decimal"
)

// Account represents a customer bank account within the core domain.
// This is the primary representation used by services.
//
// Balance is denormalized: application code writes it only at creation time,
// every later mutation flows through the transaction ledger (see
// TransactionRepository.SaveTransactions). AccountNumber is globally unique
// among all rows ever created, including inactive ones.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owning user (Not Null)
	Name          string          `json:"name"`          // User-defined display name
	AccountNumber string          `json:"accountNumber"` // 10-digit numeric string, unique
	Balance       decimal.Decimal `json:"balance"`
	CurrencyCode  string          `json:"currencyCode"` // FK -> currencies.code
	IsActive      bool            `json:"isActive"`     // Soft delete flag
	AuditFields
}
