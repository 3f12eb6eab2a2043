package services

import (
	"context"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	// The requesting user must own the account.
	GetAccountByID(ctx context.Context, accountID string, requestingUserID string) (*domain.Account, error)

	// GetAccountByNumber retrieves an account by its customer-facing number.
	GetAccountByNumber(ctx context.Context, accountNumber string, requestingUserID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts owned by the requesting user.
	ListAccounts(ctx context.Context, requestingUserID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account with a freshly generated account number.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's mutable details.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, requestingUserID string) error
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
