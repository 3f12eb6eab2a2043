package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Yeizermarrugo/BankSystem/internal/apperrors"
	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	"github.com/Yeizermarrugo/BankSystem/internal/models"
	"github.com/Yeizermarrugo/BankSystem/internal/utils/mapping"
	"github.com/Yeizermarrugo/BankSystem/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, account_id, counterpart_account_id, transaction_type, category, amount, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for ledger data.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// SaveTransactions inserts the ledger rows and applies their signed amounts
// to the affected account balances within one database transaction.
//
// The affected account rows are locked FOR UPDATE before any balance math,
// so two concurrent debits against the same account serialize here. Debit
// coverage is re-checked against the LOCKED balance, not whatever snapshot
// the service validated against earlier; a debit the locked balance cannot
// cover fails the whole batch with ErrInsufficientFunds and nothing is
// written.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	balanceChanges, err := computeBalanceChanges(transactions)
	if err != nil {
		return apperrors.NewAppError(500, "failed to sign transaction amount", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // No-op once committed.

	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	if err := verifyBalanceCoverage(lockedAccounts, balanceChanges); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	txnQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, txn := range transactions {
		modelTxn := mapping.ToModelTransaction(txn)
		batch.Queue(txnQuery,
			modelTxn.TransactionID,
			modelTxn.AccountID,
			modelTxn.CounterpartAccountID,
			modelTxn.TransactionType,
			modelTxn.Category,
			modelTxn.Amount,
			modelTxn.Description,
			modelTxn.CreatedAt,
			modelTxn.CreatedBy,
			modelTxn.LastUpdatedAt,
			modelTxn.LastUpdatedBy,
		)
	}

	balanceQuery := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	for accID, change := range balanceChanges {
		// All rows in a batch share one timestamp and actor.
		first := transactions[0]
		batch.Queue(balanceQuery, accID, change, first.CreatedAt, first.CreatedBy)
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to execute ledger batch", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close ledger batch", err)
	}

	return r.Commit(ctx, tx)
}

// computeBalanceChanges folds a batch of ledger rows into the net signed
// change per account: credits add, debits subtract. The two legs of a
// transfer therefore net to zero across their accounts.
func computeBalanceChanges(transactions []domain.Transaction) (map[string]decimal.Decimal, error) {
	balanceChanges := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		signed, err := txn.SignedAmount()
		if err != nil {
			return nil, err
		}
		balanceChanges[txn.AccountID] = balanceChanges[txn.AccountID].Add(signed)
	}
	return balanceChanges, nil
}

// verifyBalanceCoverage re-checks every net change against the locked account
// rows. An account missing from the locked set is ErrNotFound; a net debit
// the locked balance cannot cover is ErrInsufficientFunds.
func verifyBalanceCoverage(lockedAccounts map[string]domain.Account, balanceChanges map[string]decimal.Decimal) error {
	for accID := range balanceChanges {
		if _, ok := lockedAccounts[accID]; !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accID)
		}
	}
	for accID, change := range balanceChanges {
		if change.IsNegative() && lockedAccounts[accID].Balance.Add(change).IsNegative() {
			return fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, accID)
		}
	}
	return nil
}

func scanTransactionRow(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.CounterpartAccountID,
		&m.TransactionType,
		&m.Category,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindTransactionByID retrieves a single ledger row by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	modelTxn, err := scanTransactionRow(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactionsByAccountID retrieves a paginated list of transactions for a specific account using token-based pagination.
// It returns the transactions, a token for the next page, and an error.
func (r *PgxTransactionRepository) ListTransactionsByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1
	`
	// Ordering must be stable; transaction_id breaks created_at ties.
	orderByClause := `ORDER BY created_at DESC, transaction_id DESC`

	args := []interface{}{accountID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastTxnID, decodeErr := pagination.DecodeKeysetToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		cursorClause := `AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastTxnID)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		return r.listTransactions(ctx, accountID, query, args, limit)
	}

	query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)
	return r.listTransactions(ctx, accountID, query, args, limit)
}

func (r *PgxTransactionRepository) listTransactions(ctx context.Context, accountID, query string, args []interface{}, limit int) ([]domain.Transaction, *string, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for account "+accountID, err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0, limit+1)
	for rows.Next() {
		m, err := scanTransactionRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row for account "+accountID, err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transaction rows for account "+accountID, err)
	}

	var token *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[limit-1]
		t := pagination.EncodeKeysetToken(last.CreatedAt, last.TransactionID)
		token = &t
	}

	return mapping.ToDomainTransactionSlice(modelTxns), token, nil
}
