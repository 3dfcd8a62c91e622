package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"journal-backend/internal/domains/notification/model"
	"journal-backend/internal/shared/query"
	"journal-backend/pkg/database"
)

type postgresNotificationRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresNotificationRepository(pool *pgxpool.Pool) NotificationRepository {
	return &postgresNotificationRepository{pool: pool}
}

const insertNotification = `
	INSERT INTO notifications (id, recipient_id, actor_id, type, entry_id, message, read, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
`

func (r *postgresNotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	_, err := r.pool.Exec(ctx, insertNotification,
		n.ID, n.RecipientID, n.ActorID, n.Type, n.EntryID, n.Message, n.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return model.ErrRecipientNotFound
		}
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *postgresNotificationRepository) CreateBatch(ctx context.Context, ns []*model.Notification) error {
	if len(ns) == 0 {
		return nil
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, n := range ns {
			batch.Queue(insertNotification,
				n.ID, n.RecipientID, n.ActorID, n.Type, n.EntryID, n.Message, n.CreatedAt,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for range ns {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to batch create notifications: %w", err)
			}
		}

		return nil
	})
}

func (r *postgresNotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	sql := `
		SELECT id, recipient_id, actor_id, type, entry_id, message, read, created_at
		FROM notifications
		WHERE id = $1
	`

	n := &model.Notification{}
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&n.ID, &n.RecipientID, &n.ActorID, &n.Type, &n.EntryID, &n.Message, &n.Read, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

func (r *postgresNotificationRepository) List(ctx context.Context, recipientID uuid.UUID, typeFilter string, unreadOnly bool, p query.Pagination) ([]model.NotificationResponse, int64, error) {
	where := `WHERE n.recipient_id = $1`
	args := []interface{}{recipientID}

	if typeFilter != "" {
		args = append(args, typeFilter)
		where += fmt.Sprintf(` AND n.type = $%d`, len(args))
	}
	if unreadOnly {
		where += ` AND n.read = FALSE`
	}

	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM notifications n %s`, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	listSQL := fmt.Sprintf(`
		SELECT n.id, n.recipient_id, n.actor_id, u.username, n.type, n.entry_id, n.message, n.read, n.created_at
		FROM notifications n
		JOIN users u ON u.id = n.actor_id
		%s
		ORDER BY n.created_at DESC, n.id ASC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, p.Limit(), p.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.NotificationResponse
	for rows.Next() {
		var n model.NotificationResponse
		err := rows.Scan(
			&n.ID, &n.RecipientID, &n.ActorID, &n.Actor, &n.Type, &n.EntryID, &n.Message, &n.Read, &n.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, total, rows.Err()
}

func (r *postgresNotificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotificationNotFound
	}
	return nil
}

func (r *postgresNotificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotificationNotFound
	}
	return nil
}

func (r *postgresNotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
