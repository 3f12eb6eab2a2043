package services

import (
	"context"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single ledger row. The requesting user
	// must own the account the row belongs to.
	GetTransactionByID(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves transactions for a specific account.
	ListTransactionsByAccount(ctx context.Context, accountID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for ledger data
type TransactionWriterSvc interface {
	// RecordTransaction validates and persists a new transaction. A transfer
	// produces two ledger rows, both returned, debit leg first; every other
	// category produces exactly one.
	RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, requestingUserID string) ([]domain.Transaction, error)
}

// TransactionSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
