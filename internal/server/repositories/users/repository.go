package users

import (
	"context"

	"github.com/Wilovy09/pgmq-test/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailWithRole(ctx context.Context, email string) (*models.UserWithRole, error)
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
}
