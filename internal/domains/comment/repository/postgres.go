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

	"journal-backend/internal/domains/comment/model"
	"journal-backend/internal/shared/query"
	"journal-backend/pkg/database"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

const commentSelect = `
	SELECT
		c.id, c.entry_id, c.author_id, u.username AS author,
		c.text,
		c.like_count,
		COALESCE(ARRAY_AGG(l.user_id::text) FILTER (WHERE l.user_id IS NOT NULL), '{}') AS liked_by,
		c.created_at, c.updated_at
	FROM comments c
	JOIN users u ON u.id = c.author_id
	LEFT JOIN comment_likes l ON l.comment_id = c.id
`

const commentGroupBy = `GROUP BY c.id, u.username`

func scanComment(rows pgx.Rows) (*model.Comment, error) {
	comment := &model.Comment{}
	var likedBy []string

	err := rows.Scan(
		&comment.ID,
		&comment.EntryID,
		&comment.AuthorID,
		&comment.Author,
		&comment.Text,
		&comment.LikeCount,
		pq.Array(&likedBy),
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan comment: %w", err)
	}

	comment.LikedBy = make([]uuid.UUID, 0, len(likedBy))
	for _, raw := range likedBy {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid liker id %q: %w", raw, err)
		}
		comment.LikedBy = append(comment.LikedBy, id)
	}

	return comment, nil
}

func (r *postgresCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	sql := `
		INSERT INTO comments (id, entry_id, author_id, text, like_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6)
	`

	_, err := r.pool.Exec(ctx, sql,
		comment.ID,
		comment.EntryID,
		comment.AuthorID,
		comment.Text,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	sql := commentSelect + ` WHERE c.id = $1 ` + commentGroupBy

	rows, err := r.pool.Query(ctx, sql, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get comment: %w", err)
		}
		return nil, model.ErrCommentNotFound
	}

	return scanComment(rows)
}

func (r *postgresCommentRepository) ListByEntry(ctx context.Context, entryID uuid.UUID, sort query.Sort, p query.Pagination) ([]*model.Comment, int64, error) {
	total, err := r.CountByEntry(ctx, entryID)
	if err != nil {
		return nil, 0, err
	}

	sql := fmt.Sprintf(`%s WHERE c.entry_id = $1 %s %s LIMIT $2 OFFSET $3`,
		commentSelect, commentGroupBy, sort.OrderBy())

	rows, err := r.pool.Query(ctx, sql, entryID, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, comment)
	}

	return comments, total, rows.Err()
}

func (r *postgresCommentRepository) CountByEntry(ctx context.Context, entryID uuid.UUID) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE entry_id = $1`, entryID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return total, nil
}

func (r *postgresCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	sql := `UPDATE comments SET text = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, sql, comment.ID, comment.Text, comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comment_likes WHERE comment_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete comment likes: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrCommentNotFound
		}

		return nil
	})
}

func (r *postgresCommentRepository) Like(ctx context.Context, commentID, userID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO comment_likes (comment_id, user_id, created_at) VALUES ($1, $2, NOW())`,
			commentID, userID,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505":
					return model.ErrAlreadyLiked
				case "23503":
					return model.ErrCommentNotFound
				}
			}
			return fmt.Errorf("failed to like comment: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE comments SET like_count = like_count + 1 WHERE id = $1`,
			commentID,
		)
		if err != nil {
			return fmt.Errorf("failed to bump like count: %w", err)
		}

		return nil
	})
}

func (r *postgresCommentRepository) Unlike(ctx context.Context, commentID, userID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`,
			commentID, userID,
		)
		if err != nil {
			return fmt.Errorf("failed to unlike comment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrNotLiked
		}

		_, err = tx.Exec(ctx,
			`UPDATE comments SET like_count = like_count - 1 WHERE id = $1`,
			commentID,
		)
		if err != nil {
			return fmt.Errorf("failed to lower like count: %w", err)
		}

		return nil
	})
}
