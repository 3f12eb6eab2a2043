package services

import (
	"context"
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
)

type logService struct {
	logRepo portsrepo.LogRepositoryFacade
}

// NewLogService creates the audit log service.
func NewLogService(logRepo portsrepo.LogRepositoryFacade) portssvc.LogSvcFacade {
	return &logService{logRepo: logRepo}
}

var _ portssvc.LogSvcFacade = (*logService)(nil)

// Record persists a single audit entry, filling in the ID and timestamp when
// the caller left them zero.
func (s *logService) Record(ctx context.Context, entry domain.LogEntry) error {
	if entry.LogID == "" {
		entry.LogID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := s.logRepo.SaveLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to save audit log entry", slog.String("error", err.Error()), slog.String("entity_id", entry.EntityID))
		return err
	}
	return nil
}

// ListLogs retrieves a paginated list of audit entries, newest first,
// optionally narrowed by service, action, and a from/to date range.
func (s *logService) ListLogs(ctx context.Context, params dto.ListLogsParams) ([]domain.LogEntry, error) {
	filter, err := buildLogFilter(params)
	if err != nil {
		return nil, err
	}

	entries, err := s.logRepo.FindLogs(ctx, filter)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list audit logs", slog.String("error", err.Error()))
		return nil, err
	}
	if entries == nil {
		return []domain.LogEntry{}, nil
	}
	return entries, nil
}

// recentLogWindow is how far back ListRecentLogs reaches.
const recentLogWindow = 7 * 24 * time.Hour

// ListRecentLogs retrieves every audit entry of the last seven days, newest first.
func (s *logService) ListRecentLogs(ctx context.Context) ([]domain.LogEntry, error) {
	from := time.Now().Add(-recentLogWindow)
	entries, err := s.logRepo.FindLogs(ctx, portsrepo.LogFilter{From: &from})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list recent audit logs", slog.String("error", err.Error()))
		return nil, err
	}
	if entries == nil {
		return []domain.LogEntry{}, nil
	}
	return entries, nil
}

// buildLogFilter validates the query parameters and converts the date pair
// into an inclusive [from, to] range covering the whole end day.
func buildLogFilter(params dto.ListLogsParams) (portsrepo.LogFilter, error) {
	filter := portsrepo.LogFilter{
		Service: params.Service,
		Action:  params.Action,
		Limit:   params.Limit,
		Offset:  params.Offset,
	}

	if params.From == "" && params.To == "" {
		return filter, nil
	}
	if params.From == "" || params.To == "" {
		return portsrepo.LogFilter{}, fmt.Errorf("%w: provide both from and to dates", apperrors.ErrValidation)
	}

	from, err := time.Parse("2006-01-02", params.From)
	if err != nil {
		return portsrepo.LogFilter{}, fmt.Errorf("%w: from must be an ISO date (YYYY-MM-DD)", apperrors.ErrValidation)
	}
	to, err := time.Parse("2006-01-02", params.To)
	if err != nil {
		return portsrepo.LogFilter{}, fmt.Errorf("%w: to must be an ISO date (YYYY-MM-DD)", apperrors.ErrValidation)
	}
	if to.Before(from) {
		return portsrepo.LogFilter{}, fmt.Errorf("%w: to must not precede from", apperrors.ErrValidation)
	}

	// The range includes the entire end day.
	toEnd := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	filter.From = &from
	filter.To = &toEnd
	return filter, nil
}

// ListLogsByEntity retrieves every audit entry for one entity, newest first.
func (s *logService) ListLogsByEntity(ctx context.Context, entityID string) ([]domain.LogEntry, error) {
	entries, err := s.logRepo.FindLogsByEntityID(ctx, entityID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list audit logs for entity", slog.String("error", err.Error()), slog.String("entity_id", entityID))
		return nil, err
	}
	if entries == nil {
		return []domain.LogEntry{}, nil
	}
	return entries, nil
}
