package services

import (
	"context"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	"github.com/Yeizermarrugo/BankSystem/internal/dto"
)

// LogWriterSvc defines write operations for audit log data
type LogWriterSvc interface {
	// Record persists a single audit entry. Failures are the caller's to
	// decide on; state-changing services treat them as best-effort.
	Record(ctx context.Context, entry domain.LogEntry) error
}

// LogReaderSvc defines read operations for audit log data
type LogReaderSvc interface {
	// ListLogs retrieves a paginated list of audit entries, newest first,
	// optionally narrowed by service, action, and a from/to date range.
	ListLogs(ctx context.Context, params dto.ListLogsParams) ([]domain.LogEntry, error)

	// ListRecentLogs retrieves every audit entry of the last seven days, newest first.
	ListRecentLogs(ctx context.Context) ([]domain.LogEntry, error)

	// ListLogsByEntity retrieves every audit entry for one entity, newest first.
	ListLogsByEntity(ctx context.Context, entityID string) ([]domain.LogEntry, error)
}

// LogSvcFacade combines all audit log service interfaces
type LogSvcFacade interface {
	LogReaderSvc
	LogWriterSvc
}
