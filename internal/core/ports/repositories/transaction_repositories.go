package repositories

import (
	"context"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
)

// TransactionReader defines read operations for ledger data
type TransactionReader interface {
	// FindTransactionByID retrieves a single ledger row by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByAccountID retrieves a paginated list of transactions for a specific account using token-based pagination.
	// It returns the transactions, a token for the next page, and an error.
	ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for ledger data
type TransactionWriter interface {
	// SaveTransactions persists one or more ledger rows and applies their
	// signed amounts to the affected account balances inside a single
	// database transaction. Affected account rows are locked before debit
	// legs are re-checked against the current balance, so a concurrent
	// writer cannot drive a balance negative; an uncoverable debit fails
	// the whole batch with apperrors.ErrInsufficientFunds.
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
