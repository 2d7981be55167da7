package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Wilovy09/pgmq-test/internal/common"
	"github.com/Wilovy09/pgmq-test/internal/dbx"
	"github.com/Wilovy09/pgmq-test/internal/logging"
	"github.com/Wilovy09/pgmq-test/internal/server/auth"
	"github.com/Wilovy09/pgmq-test/internal/server/config"
	"github.com/Wilovy09/pgmq-test/internal/server/models"
	"github.com/Wilovy09/pgmq-test/internal/server/repositories/repomanager"
)

// UserService implements registration and login. Every successful call
// ends with a freshly minted access token; no session state is kept
// server-side.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	tokenIssuer                 string
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
	logger                      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		tokenIssuer:                 cfg.TokenIssuer,
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
		logger:                      logger,
	}
}

// usernameFromEmail derives a default username from the address local part.
func usernameFromEmail(email string) string {
	if local, _, found := strings.Cut(email, "@"); found && local != "" {
		return local
	}
	return "user"
}

// Register creates a user with the given credentials, assigns the default
// role, and returns an access token for the new account. The user row and
// the role assignment are written in a single transaction: a failure at
// any step leaves no partial account behind.
func (s *UserService) Register(ctx context.Context, email, password string) (string, error) {

	passwordHash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return "", ErrPasswordHash
	}

	user := &models.User{
		Username:     usernameFromEmail(email),
		Email:        email,
		PasswordHash: passwordHash,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			if errors.Is(err, dbx.ErrUniqueViolation) {
				return ErrEmailAlreadyRegistered
			}
			return err
		}
		user = created

		roleID, err := s.repomanager.Roles(tx).FindIDByName(ctx, models.DefaultRoleName)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return ErrDefaultRoleNotFound
			}
			return err
		}

		return s.repomanager.Roles(tx).AssignToUser(ctx, user.ID, roleID)
	})

	if err != nil {
		if errors.Is(err, ErrEmailAlreadyRegistered) || errors.Is(err, ErrDefaultRoleNotFound) {
			return "", err
		}
		s.logger.Error(ctx, "error registering user", "error", err)
		return "", ErrTransaction
	}

	token, err := auth.GenerateToken(s.tokenIssuer, s.accessTokenValidityDuration,
		auth.TokenTypeAccess, user.ID, models.DefaultRoleName, s.jwtSecret)
	if err != nil {
		s.logger.Error(ctx, "error generating token", "error", err)
		return "", ErrTransaction
	}

	return token, nil
}

// Login verifies the credentials and returns an access token carrying the
// user's role. Accounts without a role assignment are treated as holding
// the default role. Unknown email and wrong password are reported
// identically.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)

	var userID, passwordHash, roleName string

	userWithRole, err := repo.GetByEmailWithRole(ctx, email)
	switch {
	case err == nil:
		userID = userWithRole.ID
		passwordHash = userWithRole.PasswordHash
		roleName = userWithRole.RoleName
	case errors.Is(err, common.ErrorNotFound):
		// the account may exist without a role assignment
		user, err := repo.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return "", ErrInvalidCredentials
			}
			s.logger.Error(ctx, "error fetching user", "error", err)
			return "", ErrDatabase
		}
		userID = user.ID
		passwordHash = user.PasswordHash
		roleName = models.DefaultRoleName
	default:
		s.logger.Error(ctx, "error fetching user", "error", err)
		return "", ErrDatabase
	}

	if !auth.VerifyPassword(password, passwordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.tokenIssuer, s.accessTokenValidityDuration,
		auth.TokenTypeAccess, userID, roleName, s.jwtSecret)
	if err != nil {
		s.logger.Error(ctx, "error generating token", "error", err)
		return "", ErrDatabase
	}

	return token, nil
}
