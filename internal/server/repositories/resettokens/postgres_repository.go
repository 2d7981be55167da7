package resettokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Wilovy09/pgmq-test/internal/common"
	"github.com/Wilovy09/pgmq-test/internal/dbx"
	"github.com/Wilovy09/pgmq-test/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new reset token row. Each reset request gets its own
// row; existing tokens for the same user are left untouched.
func (r *PostgresRepository) Create(ctx context.Context, token *models.PasswordResetToken) (*models.PasswordResetToken, error) {

	query :=
		`INSERT INTO password_reset_tokens (user_id, token, expires_at)
         VALUES ($1, $2, $3)
		 RETURNING id, used, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		token.UserID, token.Token, token.ExpiresAt).Scan(&token.ID, &token.Used, &token.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return token, nil
}

func (r *PostgresRepository) FindByToken(ctx context.Context, tokenString string) (*models.PasswordResetToken, error) {
	query :=
		`SELECT id, user_id, token, expires_at, used, created_at FROM password_reset_tokens
		 WHERE token = $1
		 `

	token := &models.PasswordResetToken{}
	err := r.db.QueryRowContext(ctx, query, tokenString).Scan(
		&token.ID, &token.UserID, &token.Token, &token.ExpiresAt, &token.Used, &token.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return token, nil
}

// MarkUsed flips the used flag of an unconsumed token row. The used = FALSE
// predicate plus the affected-row check serializes concurrent redemptions:
// only one transaction observes a row to update, every other caller gets
// ErrAlreadyConsumed.
func (r *PostgresRepository) MarkUsed(ctx context.Context, id string) error {
	query :=
		`UPDATE password_reset_tokens SET used = TRUE
		 WHERE id = $1 AND used = FALSE
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return ErrAlreadyConsumed
	}

	return nil
}
