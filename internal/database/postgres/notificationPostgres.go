package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/entity"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (title, message, target_date, kind, customer_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $6)
		RETURNING id
	`

	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		notification.Title,
		notification.Message,
		notification.Date,
		notification.Kind,
		customerIDArg(notification.CustomerID),
		now,
	).Scan(&notification.ID)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	notification.Read = false
	notification.CreatedAt = now
	return nil
}

// GetByDate returns every notification targeted at the given day, read or
// not, most recently created first.
func (r *notificationRepository) GetByDate(ctx context.Context, date entity.Date) ([]*entity.Notification, error) {
	query := `
		SELECT id, title, message, target_date, kind, customer_id, read, created_at
		FROM notifications
		WHERE target_date = $1
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// GetUnreadByDate returns unread notifications targeted at the given day,
// most recently created first.
func (r *notificationRepository) GetUnreadByDate(ctx context.Context, date entity.Date) ([]*entity.Notification, error) {
	query := `
		SELECT id, title, message, target_date, kind, customer_id, read, created_at
		FROM notifications
		WHERE target_date = $1 AND read = false
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

func collectNotifications(rows *sql.Rows) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	for rows.Next() {
		var notification entity.Notification
		var customerID sql.NullInt64

		err := rows.Scan(
			&notification.ID,
			&notification.Title,
			&notification.Message,
			&notification.Date,
			&notification.Kind,
			&customerID,
			&notification.Read,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		if customerID.Valid {
			id := customerID.Int64
			notification.CustomerID = &id
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// MarkRead flips the read flag. Already-read and unknown ids are no-ops so
// the operation stays idempotent.
func (r *notificationRepository) MarkRead(ctx context.Context, id int64) error {
	query := `UPDATE notifications SET read = true WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func customerIDArg(id *int64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
