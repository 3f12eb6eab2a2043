package mapping

import (
	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	"github.com/Yeizermarrugo/BankSystem/internal/models"
)

// ToModelLogEntry converts a domain LogEntry to a model LogEntry
func ToModelLogEntry(d domain.LogEntry) models.LogEntry {
	return models.LogEntry{
		LogID:     d.LogID,
		Service:   d.Service,
		EntityID:  d.EntityID,
		Action:    d.Action,
		Status:    d.Status,
		Message:   d.Message,
		OldData:   d.OldData,
		NewData:   d.NewData,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainLogEntry converts a model LogEntry to a domain LogEntry
func ToDomainLogEntry(m models.LogEntry) domain.LogEntry {
	return domain.LogEntry{
		LogID:     m.LogID,
		Service:   m.Service,
		EntityID:  m.EntityID,
		Action:    m.Action,
		Status:    m.Status,
		Message:   m.Message,
		OldData:   m.OldData,
		NewData:   m.NewData,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainLogEntrySlice converts a slice of model LogEntries to domain LogEntries
func ToDomainLogEntrySlice(ms []models.LogEntry) []domain.LogEntry {
	ds := make([]domain.LogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLogEntry(m)
	}
	return ds
}
