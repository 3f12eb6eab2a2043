package services

import (
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	portssvc "github.com/Yeizermarrugo/BankSystem/internal/core/ports/services"
	"github.com/Yeizermarrugo/BankSystem/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Log and notification services first, the ledger depends on them.
	container.Log = NewLogService(repos.LogRepo)
	container.Notification = NewNotificationService(repos.NotificationQ, repos.NotificationRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo, container.Log, cfg.AccountNumberAttempts)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.AccountRepo,
		container.User,
		container.Log,
		container.Notification,
		cfg.MinTransactionAmount,
	)

	return container
}
