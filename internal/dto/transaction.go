package dto

import (
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// TargetAccountNumber is required for TRANSFER_OUT and ignored otherwise.
type CreateTransactionRequest struct {
	AccountID           string                     `json:"accountID" binding:"required"`
	Category            domain.TransactionCategory `json:"category" binding:"required"`
	TransactionType     domain.TransactionType     `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	Amount              decimal.Decimal            `json:"amount" binding:"required"`
	Description         string                     `json:"description"`
	TargetAccountNumber *string                    `json:"targetAccountNumber"`
}

// TransactionResponse defines the data returned for a ledger row.
type TransactionResponse struct {
	TransactionID        string          `json:"transactionID"`
	AccountID            string          `json:"accountID"`
	CounterpartAccountID *string         `json:"counterpartAccountID,omitempty"`
	TransactionType      string          `json:"transactionType"`
	Category             string          `json:"category"`
	Amount               decimal.Decimal `json:"amount"`
	Description          string          `json:"description"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of transactions with the cursor for
// the next page, nil when the listing is exhausted.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:        txn.TransactionID,
		AccountID:            txn.AccountID,
		CounterpartAccountID: txn.CounterpartAccountID,
		TransactionType:      string(txn.TransactionType),
		Category:             string(txn.Category),
		Amount:               txn.Amount,
		Description:          txn.Description,
		CreatedAt:            txn.CreatedAt,
		CreatedBy:            txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
