package repository

import (
	"context"
	"time"

	"courtside/internal/infra"
	"courtside/internal/infra/db"
	"courtside/internal/usecase/commands"

	"github.com/google/uuid"
)

// Notification jobs are written in the same transaction as the booking
// change that produced them, so an event is never emitted for a change
// that rolled back.
type notificationRepository struct{}

func NewNotificationRepository() commands.NotificationRepository {
	return &notificationRepository{}
}

const insertNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, 'pending')`

func (r *notificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, insertNotificationJobSQL, uuid.New(), kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
