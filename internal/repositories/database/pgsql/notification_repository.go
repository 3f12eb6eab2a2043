package pgsql

import (
	"context"
	"fmt"

	"github.com/Yeizermarrugo/BankSystem/internal/core/domain"
	portsrepo "github.com/Yeizermarrugo/BankSystem/internal/core/ports/repositories"
	"github.com/Yeizermarrugo/BankSystem/internal/models"
	"github.com/Yeizermarrugo/BankSystem/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `notification_id, message, status, created_at`

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for delivered notification data.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func scanNotificationRow(row pgx.Row) (models.Notification, error) {
	var m models.Notification
	err := row.Scan(
		&m.NotificationID,
		&m.Message,
		&m.Status,
		&m.CreatedAt,
	)
	return m, err
}

// SaveNotification inserts a notification with its delivery outcome.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	modelNotification := mapping.ToModelNotification(notification)

	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelNotification.NotificationID,
		modelNotification.Message,
		modelNotification.Status,
		modelNotification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", modelNotification.NotificationID, err)
	}
	return nil
}

// FindNotifications retrieves a paginated list of notifications, newest first.
func (r *PgxNotificationRepository) FindNotifications(ctx context.Context, limit int, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		modelNotification, err := scanNotificationRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, mapping.ToDomainNotification(modelNotification))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", rows.Err())
	}

	return notifications, nil
}
