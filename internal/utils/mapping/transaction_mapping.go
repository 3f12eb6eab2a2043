package mapping

import (
	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	"github.com/Yeizermarrugo/BankSystem/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		AccountID:            d.AccountID,
		CounterpartAccountID: d.CounterpartAccountID,
		TransactionType:      models.TransactionType(d.TransactionType),
		Category:             string(d.Category),
		Amount:               d.Amount,
		Description:          d.Description,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		AccountID:            m.AccountID,
		CounterpartAccountID: m.CounterpartAccountID,
		TransactionType:      domain.TransactionType(m.TransactionType),
		Category:             domain.TransactionCategory(m.Category),
		Amount:               m.Amount,
		Description:          m.Description,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
