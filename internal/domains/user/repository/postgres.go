package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"journal-backend/internal/domains/user/model"
	"journal-backend/internal/shared/query"
	"journal-backend/pkg/database"
)

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, is_private, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.IsPrivate,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepository) Create(ctx context.Context, user *model.User) error {
	sql := `
		INSERT INTO users (id, username, email, password_hash, is_private, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, sql,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.IsPrivate,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return model.ErrEmailTaken
			}
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	sql := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, sql, id))
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	sql := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(username) = LOWER($1)`, userColumns)
	return scanUser(r.pool.QueryRow(ctx, sql, username))
}

func (r *postgresUserRepository) List(ctx context.Context, viewer *uuid.UUID, search string, p query.Pagination) ([]*model.User, int64, error) {
	filters := query.And(
		query.TextSearch{Columns: []string{"username"}, Needle: search},
	).Append(
		query.PrivacyClause{PrivateColumn: "is_private", AuthorColumn: "id", Viewer: viewer},
	)

	where, args, next := filters.Where(1)

	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM users %s`, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	listSQL := fmt.Sprintf(`
		SELECT %s FROM users
		%s
		ORDER BY created_at ASC, id ASC
		LIMIT $%d OFFSET $%d
	`, userColumns, where, next, next+1)
	args = append(args, p.Limit(), p.Offset())

	rows, err := r.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}

	return users, total, rows.Err()
}

func (r *postgresUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	sql := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, sql, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

// UpdatePrivacy flips the account flag and cascades it to the user's
// entries in one transaction, so a reader never sees the two out of sync.
func (r *postgresUserRepository) UpdatePrivacy(ctx context.Context, id uuid.UUID, private bool) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE users SET is_private = $2, updated_at = NOW() WHERE id = $1`,
			id, private,
		)
		if err != nil {
			return fmt.Errorf("failed to update privacy: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrUserNotFound
		}

		_, err = tx.Exec(ctx,
			`UPDATE entries SET is_private = $2, updated_at = NOW() WHERE author_id = $1`,
			id, private,
		)
		if err != nil {
			return fmt.Errorf("failed to cascade privacy to entries: %w", err)
		}

		return nil
	})
}

// Delete removes the account and all rows that reference it. The explicit
// deletes document the blast radius even where ON DELETE CASCADE would
// cover it.
func (r *postgresUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		statements := []string{
			`DELETE FROM notifications WHERE recipient_id = $1 OR actor_id = $1`,
			`DELETE FROM comment_likes WHERE user_id = $1
			   OR comment_id IN (SELECT id FROM comments WHERE author_id = $1)
			   OR comment_id IN (SELECT c.id FROM comments c
			        JOIN entries e ON c.entry_id = e.id WHERE e.author_id = $1)`,
			`DELETE FROM entry_likes WHERE user_id = $1
			   OR entry_id IN (SELECT id FROM entries WHERE author_id = $1)`,
			`DELETE FROM comments WHERE author_id = $1
			   OR entry_id IN (SELECT id FROM entries WHERE author_id = $1)`,
			`DELETE FROM follows WHERE follower_id = $1 OR followee_id = $1`,
			`DELETE FROM entries WHERE author_id = $1`,
		}

		for _, stmt := range statements {
			if _, err := tx.Exec(ctx, stmt, id); err != nil {
				return fmt.Errorf("failed to cascade account deletion: %w", err)
			}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrUserNotFound
		}

		return nil
	})
}
