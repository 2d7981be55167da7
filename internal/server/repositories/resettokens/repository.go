package resettokens

import (
	"context"
	"errors"

	"github.com/Wilovy09/pgmq-test/internal/server/models"
)

// ErrAlreadyConsumed is returned by MarkUsed when the token row was already
// marked used by another transaction. The conditional update that produces
// it is what makes redemption exactly-once under concurrency.
var ErrAlreadyConsumed = errors.New("reset token already consumed")

type Repository interface {
	Create(ctx context.Context, token *models.PasswordResetToken) (*models.PasswordResetToken, error)
	FindByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id string) error
}
