package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// TransactionCategory classifies a ledger row. The category functionally
// determines the transaction type: the debit categories below require DEBIT,
// everything else requires CREDIT. A mismatch is a validation error, never
// silently corrected.
type TransactionCategory string

const (
	CategoryWithdrawalATM    TransactionCategory = "WITHDRAWAL_ATM"
	CategoryWithdrawalBranch TransactionCategory = "WITHDRAWAL_BRANCH"
	CategoryPayment          TransactionCategory = "PAYMENT"
	CategoryTransferOut      TransactionCategory = "TRANSFER_OUT"
	CategoryDepositATM       TransactionCategory = "DEPOSIT_ATM"
	CategoryDepositBranch    TransactionCategory = "DEPOSIT_BRANCH"
	CategoryTransferIn       TransactionCategory = "TRANSFER_IN"
)

var debitCategories = map[TransactionCategory]bool{
	CategoryWithdrawalATM:    true,
	CategoryWithdrawalBranch: true,
	CategoryPayment:          true,
	CategoryTransferOut:      true,
}

// TypeForCategory returns the transaction type the category mandates.
func TypeForCategory(category TransactionCategory) TransactionType {
	if debitCategories[category] {
		return Debit
	}
	return Credit
}

// ValidCategory reports whether the category is one of the known values.
func ValidCategory(category TransactionCategory) bool {
	switch category {
	case CategoryWithdrawalATM, CategoryWithdrawalBranch, CategoryPayment,
		CategoryTransferOut, CategoryDepositATM, CategoryDepositBranch, CategoryTransferIn:
		return true
	}
	return false
}

// Transaction represents a single immutable ledger row affecting one account.
// A transfer produces two rows linked via CounterpartAccountID; no update or
// delete operation exists for transactions.
type Transaction struct {
	TransactionID        string              `json:"transactionID"` // Primary Key (UUID)
	AccountID            string              `json:"accountID"`     // FK -> Account.accountID (Not Null)
	CounterpartAccountID *string             `json:"counterpartAccountID,omitempty"`
	TransactionType      TransactionType     `json:"transactionType"` // DEBIT or CREDIT (Not Null)
	Category             TransactionCategory `json:"category"`
	Amount               decimal.Decimal     `json:"amount"` // Positive value; precise decimal type
	Description          string              `json:"description"`
	AuditFields
}

// SignedAmount returns the amount with the sign the balance rule applies:
// positive for credits, negative for debits.
func (t Transaction) SignedAmount() (decimal.Decimal, error) {
	switch t.TransactionType {
	case Credit:
		return t.Amount, nil
	case Debit:
		return t.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type %q for transaction %s", t.TransactionType, t.TransactionID)
	}
}
