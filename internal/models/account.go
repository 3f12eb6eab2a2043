package models

import (
	"github.com/shopspring/decimal"
)

// Account represents an account row as stored in the database.
type Account struct {
	AccountID     string          `db:"account_id"`
	UserID        string          `db:"user_id"`
	Name          string          `db:"name"`
	AccountNumber string          `db:"account_number"`
	Balance       decimal.Decimal `db:"balance"`
	CurrencyCode  string          `db:"currency_code"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
