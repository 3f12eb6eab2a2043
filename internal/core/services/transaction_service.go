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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	userReader      portssvc.UserReaderSvc
	logWriter       portssvc.LogWriterSvc
	notifier        portssvc.NotificationPublisherSvc
	minAmount       decimal.Decimal
}

// NewTransactionService creates the ledger service. The log writer and
// notifier are post-commit side effects; their failures never undo a
// committed transaction.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	userReader portssvc.UserReaderSvc,
	logWriter portssvc.LogWriterSvc,
	notifier portssvc.NotificationPublisherSvc,
	minAmount int64,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		userReader:      userReader,
		logWriter:       logWriter,
		notifier:        notifier,
		minAmount:       decimal.NewFromInt(minAmount),
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// RecordTransaction validates and persists a new transaction.
//
// Validation order: account existence, ownership and active flag first, then
// category, type/category agreement, amount floor, debit coverage, and
// finally the transfer counterpart checks. The debit coverage check here is
// optimistic; the repository re-checks it on locked rows, so a concurrent
// debit surfaces as ErrInsufficientFunds from SaveTransactions rather than a
// negative balance.
func (s *transactionService) RecordTransaction(ctx context.Context, req dto.CreateTransactionRequest, requestingUserID string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		logger.Error("Failed to find account for transaction", slog.String("error", err.Error()), slog.String("account_id", req.AccountID))
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountNumber)
	}

	if !domain.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	}
	if req.Category == domain.CategoryTransferIn {
		// The credit leg of a transfer is only ever written by the engine
		// itself, alongside its TRANSFER_OUT counterpart.
		return nil, fmt.Errorf("%w: TRANSFER_IN cannot be recorded directly", apperrors.ErrValidation)
	}
	if want := domain.TypeForCategory(req.Category); req.TransactionType != want {
		return nil, fmt.Errorf("%w: category %s requires type %s", apperrors.ErrValidation, req.Category, want)
	}

	// Amounts must be strictly greater than the policy minimum.
	if req.Amount.Cmp(s.minAmount) <= 0 {
		return nil, fmt.Errorf("%w: got %s", apperrors.ErrInvalidAmount, req.Amount.String())
	}

	if req.TransactionType == domain.Debit && req.Amount.Cmp(account.Balance) > 0 {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, account.AccountNumber)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     requestingUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: requestingUserID,
	}

	outgoing := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       account.AccountID,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		AuditFields:     audit,
	}

	transactions := []domain.Transaction{outgoing}

	var target *domain.Account
	if req.Category == domain.CategoryTransferOut {
		target, err = s.resolveTransferTarget(ctx, account, req)
		if err != nil {
			return nil, err
		}

		incoming := domain.Transaction{
			TransactionID:        uuid.NewString(),
			AccountID:            target.AccountID,
			CounterpartAccountID: &account.AccountID,
			TransactionType:      domain.Credit,
			Category:             domain.CategoryTransferIn,
			Amount:               req.Amount,
			Description:          fmt.Sprintf("Transfer received from account %s", account.AccountNumber),
			AuditFields:          audit,
		}
		transactions[0].CounterpartAccountID = &target.AccountID
		transactions = append(transactions, incoming)
	}

	if err := s.transactionRepo.SaveTransactions(ctx, transactions); err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientFunds) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save transactions", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		}
		return nil, err
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", outgoing.TransactionID),
		slog.String("category", string(outgoing.Category)),
		slog.String("amount", outgoing.Amount.String()),
	)

	s.emitSideEffects(ctx, account, target, transactions)

	return transactions, nil
}

// resolveTransferTarget validates the counterpart account of a TRANSFER_OUT.
func (s *transactionService) resolveTransferTarget(ctx context.Context, source *domain.Account, req dto.CreateTransactionRequest) (*domain.Account, error) {
	if req.TargetAccountNumber == nil || *req.TargetAccountNumber == "" {
		return nil, fmt.Errorf("%w: target account number required", apperrors.ErrInvalidTransfer)
	}

	target, err := s.accountRepo.FindAccountByNumber(ctx, *req.TargetAccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no account with number %s", apperrors.ErrInvalidTransfer, *req.TargetAccountNumber)
		}
		return nil, err
	}
	if target.AccountID == source.AccountID {
		return nil, apperrors.ErrSameAccountTransfer
	}
	if !target.IsActive {
		return nil, fmt.Errorf("%w: target account %s is inactive", apperrors.ErrInvalidTransfer, target.AccountNumber)
	}

	return target, nil
}

// emitSideEffects records the audit trail and, for a transfer, queues a
// notification addressed to the owner of the receiving account. Both are
// best-effort once the ledger write committed.
func (s *transactionService) emitSideEffects(ctx context.Context, source *domain.Account, target *domain.Account, transactions []domain.Transaction) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, txn := range transactions {
		newData, err := json.Marshal(txn)
		if err != nil {
			logger.Warn("Failed to marshal transaction for audit log", slog.String("error", err.Error()))
			newData = nil
		}
		entry := domain.LogEntry{
			Service:  "transactions",
			EntityID: txn.TransactionID,
			Action:   "create",
			Status:   "success",
			Message:  fmt.Sprintf("%s of %s on account %s", txn.Category, txn.Amount.String(), txn.AccountID),
			NewData:  newData,
		}
		if err := s.logWriter.Record(ctx, entry); err != nil {
			logger.Warn("Failed to record audit log for transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		}
	}

	// Only a transfer has a notification hop, and it goes to the receiving
	// side, not to the caller who already holds the response.
	if target == nil {
		return
	}
	recipientName := ""
	if recipient, err := s.userReader.GetUserByID(ctx, target.UserID); err == nil {
		recipientName = recipient.DisplayName()
	} else {
		logger.Warn("Failed to resolve transfer recipient", slog.String("error", err.Error()), slog.String("user_id", target.UserID))
	}
	message := fmt.Sprintf("%s: transfer of %s received on account %s from account %s",
		recipientName, transactions[0].Amount.String(), target.AccountNumber, source.AccountNumber)
	if err := s.notifier.Enqueue(ctx, message); err != nil {
		logger.Warn("Failed to enqueue transfer notification", slog.String("error", err.Error()))
	}
}

// GetTransactionByID retrieves a single ledger row after checking the caller
// owns the account it belongs to.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, txn.AccountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	return txn, nil
}

// ListTransactionsByAccount retrieves a page of transactions for one account.
func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}

	transactions, nextToken, err := s.transactionRepo.ListTransactionsByAccountID(ctx, accountID, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}
