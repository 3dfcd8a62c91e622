package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"journal-backend/internal/domains/entry/model"
	"journal-backend/internal/shared/query"
	"journal-backend/pkg/database"
)

type postgresEntryRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresEntryRepository(pool *pgxpool.Pool) EntryRepository {
	return &postgresEntryRepository{pool: pool}
}

// entrySelect joins the author for display and aggregates the liker set.
// Filter predicates must use qualified columns (e.created_at, e.author_id,
// e.is_private); ORDER BY may use the bare output labels.
const entrySelect = `
	SELECT
		e.id, e.author_id, u.username AS author,
		e.title, e.text,
		e.is_private, e.comment_disabled,
		e.like_count,
		COALESCE(ARRAY_AGG(l.user_id::text) FILTER (WHERE l.user_id IS NOT NULL), '{}') AS liked_by,
		e.created_at, e.updated_at
	FROM entries e
	JOIN users u ON u.id = e.author_id
	LEFT JOIN entry_likes l ON l.entry_id = e.id
`

const entryGroupBy = `GROUP BY e.id, u.username`

func scanEntry(rows pgx.Rows) (*model.Entry, error) {
	entry := &model.Entry{}
	var likedBy []string

	err := rows.Scan(
		&entry.ID,
		&entry.AuthorID,
		&entry.Author,
		&entry.Title,
		&entry.Text,
		&entry.IsPrivate,
		&entry.CommentDisabled,
		&entry.LikeCount,
		pq.Array(&likedBy),
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan entry: %w", err)
	}

	entry.LikedBy = make([]uuid.UUID, 0, len(likedBy))
	for _, raw := range likedBy {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid liker id %q: %w", raw, err)
		}
		entry.LikedBy = append(entry.LikedBy, id)
	}

	return entry, nil
}

func (r *postgresEntryRepository) Create(ctx context.Context, entry *model.Entry) error {
	sql := `
		INSERT INTO entries (id, author_id, title, text, is_private, comment_disabled, like_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
	`

	_, err := r.pool.Exec(ctx, sql,
		entry.ID,
		entry.AuthorID,
		entry.Title,
		entry.Text,
		entry.IsPrivate,
		entry.CommentDisabled,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create entry: %w", err)
	}

	return nil
}

func (r *postgresEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Entry, error) {
	sql := entrySelect + ` WHERE e.id = $1 ` + entryGroupBy

	rows, err := r.pool.Query(ctx, sql, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get entry: %w", err)
		}
		return nil, model.ErrEntryNotFound
	}

	return scanEntry(rows)
}

func (r *postgresEntryRepository) List(ctx context.Context, filters query.Conjunction, sort query.Sort, p query.Pagination) ([]*model.Entry, int64, error) {
	where, args, next := filters.Where(1)

	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM entries e %s`, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count entries: %w", err)
	}

	listSQL := fmt.Sprintf(`%s %s %s %s LIMIT $%d OFFSET $%d`,
		entrySelect, where, entryGroupBy, sort.OrderBy(), next, next+1)
	args = append(args, p.Limit(), p.Offset())

	entries, err := r.queryEntries(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

func (r *postgresEntryRepository) MostLikedByAuthor(ctx context.Context, filters query.Conjunction, limit int) ([]*model.Entry, error) {
	where, args, next := filters.Where(1)

	sql := fmt.Sprintf(`%s %s %s ORDER BY like_count DESC, created_at ASC, id ASC LIMIT $%d`,
		entrySelect, where, entryGroupBy, next)
	args = append(args, limit)

	return r.queryEntries(ctx, sql, args...)
}

func (r *postgresEntryRepository) queryEntries(ctx context.Context, sql string, args ...interface{}) ([]*model.Entry, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []*model.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *postgresEntryRepository) Update(ctx context.Context, entry *model.Entry) error {
	sql := `
		UPDATE entries
		SET title = $2, text = $3, is_private = $4, comment_disabled = $5, updated_at = $6
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, sql,
		entry.ID,
		entry.Title,
		entry.Text,
		entry.IsPrivate,
		entry.CommentDisabled,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEntryNotFound
	}

	return nil
}

// Delete removes the entry together with its comments and every like
// attached to either, so no orphan rows survive.
func (r *postgresEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		statements := []string{
			`DELETE FROM comment_likes WHERE comment_id IN (SELECT id FROM comments WHERE entry_id = $1)`,
			`DELETE FROM comments WHERE entry_id = $1`,
			`DELETE FROM entry_likes WHERE entry_id = $1`,
			`DELETE FROM notifications WHERE entry_id = $1`,
		}

		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to cascade entry deletion: %w", err)
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrEntryNotFound
		}

		return nil
	})
}

// Like inserts the like row and bumps the denormalized counter in one
// transaction. The unique constraint on entry_likes is the idempotence
// guard, so concurrent duplicate likes cannot double-count.
func (r *postgresEntryRepository) Like(ctx context.Context, entryID, userID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO entry_likes (entry_id, user_id, created_at) VALUES ($1, $2, NOW())`,
			entryID, userID,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505":
					return model.ErrAlreadyLiked
				case "23503":
					return model.ErrEntryNotFound
				}
			}
			return fmt.Errorf("failed to like entry: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE entries SET like_count = like_count + 1 WHERE id = $1`,
			entryID,
		)
		if err != nil {
			return fmt.Errorf("failed to bump like count: %w", err)
		}

		return nil
	})
}

func (r *postgresEntryRepository) Unlike(ctx context.Context, entryID, userID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM entry_likes WHERE entry_id = $1 AND user_id = $2`,
			entryID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to unlike entry: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrNotLiked
		}

		_, err = tx.Exec(ctx,
			`UPDATE entries SET like_count = like_count - 1 WHERE id = $1`,
			entryID,
		)
		if err != nil {
			return fmt.Errorf("failed to lower like count: %w", err)
		}

		return nil
	})
}
