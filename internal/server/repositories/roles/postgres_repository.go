package roles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Wilovy09/pgmq-test/internal/common"
	"github.com/Wilovy09/pgmq-test/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindIDByName resolves a role name from the role catalog to its id.
// An absent role yields common.ErrorNotFound.
func (r *PostgresRepository) FindIDByName(ctx context.Context, name string) (string, error) {
	query :=
		`SELECT id FROM roles
		 WHERE name = $1
		 `

	var id string
	err := r.db.QueryRowContext(ctx, query, name).Scan(&id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) AssignToUser(ctx context.Context, userID, roleID string) error {
	query :=
		`INSERT INTO users_role (user_id, role_id)
         VALUES ($1, $2)
		 `

	_, err := r.db.ExecContext(ctx, query, userID, roleID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
