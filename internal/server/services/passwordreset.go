package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Wilovy09/pgmq-test/internal/common"
	"github.com/Wilovy09/pgmq-test/internal/dbx"
	"github.com/Wilovy09/pgmq-test/internal/logging"
	"github.com/Wilovy09/pgmq-test/internal/server/auth"
	"github.com/Wilovy09/pgmq-test/internal/server/mailer"
	"github.com/Wilovy09/pgmq-test/internal/server/config"
	"github.com/Wilovy09/pgmq-test/internal/server/models"
	"github.com/Wilovy09/pgmq-test/internal/server/repositories/repomanager"
	"github.com/Wilovy09/pgmq-test/internal/server/repositories/resettokens"
)

// resetTokenValidity is how long a reset link stays redeemable. The email
// body promises one hour, keep them in sync.
const resetTokenValidity = time.Hour

// Mailer delivers a plain-text message to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// PasswordResetService implements the two halves of the reset flow:
// issuing a single-use token and delivering it by email, then redeeming
// the token for a password change.
type PasswordResetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	mailer      Mailer
	frontendURL string
	bcryptCost  int
	logger      logging.Logger
}

func NewPasswordResetService(db *sql.DB, m repomanager.RepositoryManager, mailer Mailer, cfg *config.Config, logger logging.Logger) *PasswordResetService {
	return &PasswordResetService{
		db:          db,
		repomanager: m,
		mailer:      mailer,
		frontendURL: cfg.FrontendURL,
		bcryptCost:  cfg.BcryptCost,
		logger:      logger,
	}
}

// generateResetToken returns a 64-character hex-alphabet token built from
// two random UUIDs with the dashes stripped.
func generateResetToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

const resetEmailBody = "Hello,\n\nYou have requested to reset your password. " +
	"Please click the link below to reset your password:\n\n%s\n\n" +
	"This link will expire in 1 hour.\n\n" +
	"If you did not request this, please ignore this email.\n\n" +
	"Best regards,\nPGMQ Team"

// RequestReset creates a reset token for the account behind the email and
// sends the reset link. The token row is persisted before the email goes
// out and stays valid even when delivery fails, so a retried request does
// not invalidate a link already in flight.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error(ctx, "error fetching user", "error", err)
		return ErrDatabase
	}

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     generateResetToken(),
		ExpiresAt: time.Now().Add(resetTokenValidity),
	}

	token, err = s.repomanager.ResetTokens(s.db).Create(ctx, token)
	if err != nil {
		s.logger.Error(ctx, "error creating reset token", "error", err)
		return ErrDatabase
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token.Token)
	body := fmt.Sprintf(resetEmailBody, link)

	if err := s.mailer.Send(ctx, user.Email, "Password Reset Request", body); err != nil {
		s.logger.Warn(ctx, "error sending reset email", "error", err)
		if errors.Is(err, mailer.ErrInvalidRecipient) {
			return ErrInvalidTemplate
		}
		return ErrEmailSend
	}

	s.logger.Info(ctx, "Password reset email sent successfully", "user_id", user.ID)
	return nil
}

// ResetPassword redeems a reset token and replaces the account password.
// The password update and the token consumption commit together; if the
// token was consumed concurrently the password change rolls back and the
// caller sees ErrTokenAlreadyUsed.
func (s *PasswordResetService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {

	token, err := s.repomanager.ResetTokens(s.db).FindByToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return ErrTokenNotFoundOrExpired
		}
		s.logger.Error(ctx, "error fetching reset token", "error", err)
		return ErrDatabase
	}

	if !token.IsValid() {
		// a token both used and expired reports as used
		if token.Used {
			return ErrTokenAlreadyUsed
		}
		return ErrTokenNotFoundOrExpired
	}

	passwordHash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return ErrPasswordHash
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).UpdatePasswordHash(ctx, token.UserID, passwordHash); err != nil {
			return err
		}
		return s.repomanager.ResetTokens(tx).MarkUsed(ctx, token.ID)
	})

	if err != nil {
		if errors.Is(err, resettokens.ErrAlreadyConsumed) {
			return ErrTokenAlreadyUsed
		}
		s.logger.Error(ctx, "error resetting password", "error", err)
		return ErrTransaction
	}

	s.logger.Info(ctx, "Password reset successfully", "user_id", token.UserID)
	return nil
}
