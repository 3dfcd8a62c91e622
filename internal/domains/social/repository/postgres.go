package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"journal-backend/internal/domains/social/model"
	"journal-backend/internal/shared/query"
)

type postgresSocialRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSocialRepository(pool *pgxpool.Pool) SocialRepository {
	return &postgresSocialRepository{pool: pool}
}

// Follow relies on the table constraints for its preconditions: the
// primary key rejects duplicate edges, the check constraint rejects
// self-edges and the foreign key rejects unknown users. That closes the
// race a read-then-insert version would have.
func (r *postgresSocialRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	sql := `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := r.pool.Exec(ctx, sql, followerID, followeeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return model.ErrAlreadyFollowing
			case "23514":
				return model.ErrCannotFollowSelf
			case "23503":
				return model.ErrUserNotFound
			}
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

func (r *postgresSocialRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	sql := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`

	tag, err := r.pool.Exec(ctx, sql, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFollowing
	}

	return nil
}

func (r *postgresSocialRepository) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, followerID, followeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *postgresSocialRepository) Followers(ctx context.Context, userID uuid.UUID, p query.Pagination) ([]model.FollowUser, int64, error) {
	return r.listEdge(ctx, userID, p, "follower_id", "followee_id")
}

func (r *postgresSocialRepository) Following(ctx context.Context, userID uuid.UUID, p query.Pagination) ([]model.FollowUser, int64, error) {
	return r.listEdge(ctx, userID, p, "followee_id", "follower_id")
}

// listEdge pages one direction of the graph: selectSide is the column to
// return, matchSide the column to match userID against.
func (r *postgresSocialRepository) listEdge(ctx context.Context, userID uuid.UUID, p query.Pagination, selectSide, matchSide string) ([]model.FollowUser, int64, error) {
	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM follows WHERE %s = $1`, matchSide)

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count follows: %w", err)
	}

	listSQL := fmt.Sprintf(`
		SELECT u.id, u.username, u.is_private, f.created_at
		FROM follows f
		JOIN users u ON u.id = f.%s
		WHERE f.%s = $1
		ORDER BY f.created_at ASC, u.id ASC
		LIMIT $2 OFFSET $3
	`, selectSide, matchSide)

	rows, err := r.pool.Query(ctx, listSQL, userID, p.Limit(), p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list follows: %w", err)
	}
	defer rows.Close()

	var users []model.FollowUser
	for rows.Next() {
		var u model.FollowUser
		if err := rows.Scan(&u.ID, &u.Username, &u.Private, &u.FollowedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan follow: %w", err)
		}
		users = append(users, u)
	}

	return users, total, rows.Err()
}

func (r *postgresSocialRepository) FollowerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.edgeIDs(ctx, `SELECT follower_id FROM follows WHERE followee_id = $1`, userID)
}

func (r *postgresSocialRepository) FollowingIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.edgeIDs(ctx, `SELECT followee_id FROM follows WHERE follower_id = $1`, userID)
}

func (r *postgresSocialRepository) edgeIDs(ctx context.Context, sql string, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan follow id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
