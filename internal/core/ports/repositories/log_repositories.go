package repositories

import (
	"context"
	"time"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
)

// LogFilter narrows a log listing. Zero-valued fields do not filter.
type LogFilter struct {
	Service string
	Action  string
	From    *time.Time
	To      *time.Time
	Limit   int
	Offset  int
}

// LogWriter defines write operations for audit log data
type LogWriter interface {
	// SaveLog persists a single audit log entry.
	SaveLog(ctx context.Context, entry domain.LogEntry) error
}

// LogReader defines read operations for audit log data
type LogReader interface {
	// FindLogs retrieves a paginated list of audit log entries matching the
	// filter, newest first.
	FindLogs(ctx context.Context, filter LogFilter) ([]domain.LogEntry, error)

	// FindLogsByEntityID retrieves all audit log entries for a single entity, newest first.
	FindLogsByEntityID(ctx context.Context, entityID string) ([]domain.LogEntry, error)
}

// LogRepositoryFacade combines all audit log repository interfaces
type LogRepositoryFacade interface {
	LogReader
	LogWriter
}
