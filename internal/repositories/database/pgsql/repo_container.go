package pgsql

import (
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
// The notification queue lives in Redis and is injected separately.
func NewRepositoryProvider(dbPool *pgxpool.Pool, notificationQ portsrepo.NotificationQueue) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	userRepo := newPgxUserRepository(dbPool)
	currencyRepo := newPgxCurrencyRepository(dbPool)
	logRepo := newPgxLogRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		TransactionRepo:  transactionRepo,
		UserRepo:         userRepo,
		CurrencyRepo:     currencyRepo,
		LogRepo:          logRepo,
		NotificationRepo: notificationRepo,
		NotificationQ:    notificationQ,
	}
}
