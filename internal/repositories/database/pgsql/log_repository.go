package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	"github.com/Yeizermarrugo/BankSystem/internal/models"
	"github.com/Yeizermarrugo/BankSystem/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const logColumns = `log_id, service, entity_id, action, status, message, old_data, new_data, created_at`

type PgxLogRepository struct {
	BaseRepository
}

// newPgxLogRepository creates a new repository for audit log data.
func newPgxLogRepository(pool *pgxpool.Pool) portsrepo.LogRepositoryFacade {
	return &PgxLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLogRepository implements portsrepo.LogRepositoryFacade
var _ portsrepo.LogRepositoryFacade = (*PgxLogRepository)(nil)

func scanLogRow(row pgx.Row) (models.LogEntry, error) {
	var m models.LogEntry
	err := row.Scan(
		&m.LogID,
		&m.Service,
		&m.EntityID,
		&m.Action,
		&m.Status,
		&m.Message,
		&m.OldData,
		&m.NewData,
		&m.CreatedAt,
	)
	return m, err
}

// SaveLog inserts a single audit log entry. Log rows are append-only.
func (r *PgxLogRepository) SaveLog(ctx context.Context, entry domain.LogEntry) error {
	modelEntry := mapping.ToModelLogEntry(entry)

	query := `
		INSERT INTO logs (` + logColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEntry.LogID,
		modelEntry.Service,
		modelEntry.EntityID,
		modelEntry.Action,
		modelEntry.Status,
		modelEntry.Message,
		modelEntry.OldData,
		modelEntry.NewData,
		modelEntry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save log entry %s: %w", modelEntry.LogID, err)
	}
	return nil
}

// FindLogs retrieves a paginated list of audit log entries matching the
// filter, newest first. Empty filter fields add no WHERE clause.
func (r *PgxLogRepository) FindLogs(ctx context.Context, filter portsrepo.LogFilter) ([]domain.LogEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var clauses []string
	var args []interface{}
	addClause := func(condition string, value interface{}) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(condition, len(args)))
	}

	if filter.Service != "" {
		addClause("service = $%d", filter.Service)
	}
	if filter.Action != "" {
		addClause("action = $%d", filter.Action)
	}
	if filter.From != nil {
		addClause("created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addClause("created_at <= $%d", *filter.To)
	}

	query := `SELECT ` + logColumns + ` FROM logs`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	defer rows.Close()

	entries := []domain.LogEntry{}
	for rows.Next() {
		modelEntry, err := scanLogRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		entries = append(entries, mapping.ToDomainLogEntry(modelEntry))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating log rows: %w", rows.Err())
	}

	return entries, nil
}

// FindLogsByEntityID retrieves all audit log entries for one entity, newest first.
func (r *PgxLogRepository) FindLogsByEntityID(ctx context.Context, entityID string) ([]domain.LogEntry, error) {
	query := `
		SELECT ` + logColumns + `
		FROM logs
		WHERE entity_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs for entity %s: %w", entityID, err)
	}
	defer rows.Close()

	entries := []domain.LogEntry{}
	for rows.Next() {
		modelEntry, err := scanLogRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan log row for entity %s: %w", entityID, err)
		}
		entries = append(entries, mapping.ToDomainLogEntry(modelEntry))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating log rows for entity %s: %w", entityID, rows.Err())
	}

	return entries, nil
}
