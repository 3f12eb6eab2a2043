package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/apperrors"
	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
	"github.com/Yeizermarrugo/BankSystem/internal/middleware"
	"github.com/Yeizermarrugo/BankSystem/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountNumberLength is the fixed width of customer-facing account numbers.
const accountNumberLength = 10

type accountService struct {
	accountRepo    portsrepo.AccountRepositoryFacade
	currencyRepo   portsrepo.CurrencyRepositoryFacade
	logWriter      portssvc.LogWriterSvc
	numberAttempts int
}

// NewAccountService creates the account service. numberAttempts bounds the
// collision-retry loop for account number generation.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	logWriter portssvc.LogWriterSvc,
	numberAttempts int,
) portssvc.AccountSvcFacade {
	if numberAttempts <= 0 {
		numberAttempts = 10
	}
	return &accountService{
		accountRepo:    accountRepo,
		currencyRepo:   currencyRepo,
		logWriter:      logWriter,
		numberAttempts: numberAttempts,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// generateAccountNumber draws random 10-digit numbers until one is unused.
// Gives up after the configured number of attempts rather than looping forever.
func (s *accountService) generateAccountNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.numberAttempts; attempt++ {
		candidate, err := utils.GenerateNumericString(accountNumberLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate account number: %w", err)
		}
		exists, err := s.accountRepo.AccountNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", apperrors.NewAppError(500, "could not allocate a unique account number", nil)
}

// CreateAccount persists a new account with a zero balance and a freshly
// generated account number.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown currency %s", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, err
	}

	accountNumber, err := s.generateAccountNumber(ctx)
	if err != nil {
		logger.Error("Failed to generate account number", slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID:     uuid.NewString(),
		UserID:        creatorUserID,
		Name:          req.Name,
		AccountNumber: accountNumber,
		Balance:       decimal.Zero,
		CurrencyCode:  req.CurrencyCode,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("account_number", account.AccountNumber))
	s.recordAudit(ctx, account.AccountID, "create", "account created", nil, account)

	return &account, nil
}

// GetAccountByID retrieves an account the requesting user owns.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string, requestingUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	return account, nil
}

// GetAccountByNumber retrieves an account by number, still subject to ownership.
func (s *accountService) GetAccountByNumber(ctx context.Context, accountNumber string, requestingUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	return account, nil
}

// ListAccounts retrieves all accounts owned by the requesting user.
func (s *accountService) ListAccounts(ctx context.Context, requestingUserID string) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.ListAccountsByUser(ctx, requestingUserID)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()), slog.String("user_id", requestingUserID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccount updates the mutable fields of an account. Balance, number and
// currency are ignored even if a client sends them.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	before := *account

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = requestingUserID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		logger.Error("Failed to update account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	s.recordAudit(ctx, accountID, "update", "account updated", before, *account)

	return account, nil
}

// DeactivateAccount marks an account as inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.UserID != requestingUserID {
		return apperrors.ErrForbidden
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, requestingUserID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to deactivate account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Account deactivated", slog.String("account_id", accountID))
	s.recordAudit(ctx, accountID, "delete", "account deactivated", account, nil)

	return nil
}

// recordAudit writes a best-effort audit log entry for an account mutation.
func (s *accountService) recordAudit(ctx context.Context, accountID, action, message string, oldData, newData any) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry := domain.LogEntry{
		Service:  "accounts",
		EntityID: accountID,
		Action:   action,
		Status:   "success",
		Message:  message,
	}
	if oldData != nil {
		if b, err := json.Marshal(oldData); err == nil {
			entry.OldData = b
		}
	}
	if newData != nil {
		if b, err := json.Marshal(newData); err == nil {
			entry.NewData = b
		}
	}

	if err := s.logWriter.Record(ctx, entry); err != nil {
		logger.Warn("Failed to record audit log for account", slog.String("error", err.Error()), slog.String("account_id", accountID))
	}
}
