// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, password change, and the
// two-phase password-reset flow.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/burgerlab/backend/internal/common"
	"github.com/burgerlab/backend/internal/dbx"
	"github.com/burgerlab/backend/internal/logging"
	"github.com/burgerlab/backend/internal/mailer"
	"github.com/burgerlab/backend/internal/server/auth"
	"github.com/burgerlab/backend/internal/server/config"
	"github.com/burgerlab/backend/internal/server/models"
	"github.com/burgerlab/backend/internal/server/repositories/repomanager"
)

// Session is the signed, stateless credential returned by Login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// resetTokenBytes gives 256 bits of entropy per reset token.
const resetTokenBytes = 32

// dummyHash is compared against when login hits an unknown email, so the
// request costs one bcrypt verification either way and timing does not leak
// account existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService provides authentication-related operations:
//   - Register: create accounts
//   - Login: verify credentials and mint session tokens
//   - ChangePassword: re-authenticated password update
//   - RequestReset / CompleteReset: the mailed-secret reset flow
type AuthService struct {
	db                   *sql.DB
	repos                repomanager.RepositoryManager
	mail                 mailer.Mailer
	logger               logging.Logger
	jwtSecret            []byte
	sessionTokenValidity time.Duration
	resetTokenValidity   time.Duration
	passwordMinLength    int
}

// NewAuthService constructs an AuthService using repositories, the mailer,
// and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, mail mailer.Mailer, logger logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                   db,
		repos:                m,
		mail:                 mail,
		logger:               logger,
		jwtSecret:            []byte(cfg.SecretKey),
		sessionTokenValidity: cfg.SessionTokenValidity,
		resetTokenValidity:   cfg.ResetTokenValidity,
		passwordMinLength:    cfg.PasswordMinLength,
	}
}

// Register creates a new account with the default "user" role. A duplicate
// email yields common.ErrEmailExists. The welcome mail is best-effort.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if len(password) < s.passwordMinLength {
		return nil, common.ErrPasswordTooShort
	}

	repo := s.repos.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrEmailExists
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	user, err := repo.Create(ctx, &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Roles:        []string{"user"},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	if s.mail != nil {
		if err := s.mail.SendWelcome(ctx, user.Email, user.Name); err != nil {
			s.logger.Warn(ctx, "welcome mail failed", "error", err)
		}
	}

	return user, nil
}

// Login verifies the email/password pair and, on success, returns a new
// Session. An unknown email and a wrong password both yield
// common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	repo := s.repos.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			auth.VerifyPassword(password, dummyHash)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, expires, err := auth.GenerateToken(user.ID, user.Roles, s.jwtSecret, s.sessionTokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &Session{Token: token, ExpiresAt: expires, User: user}, nil
}

// UserFromToken validates a session token and loads the bound account.
// The caller is expected to treat any error as unauthenticated; the
// distinguishable kinds from auth.ParseToken are preserved for logging.
func (s *AuthService) UserFromToken(ctx context.Context, token string) (*models.User, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	user, err := s.repos.Users(s.db).GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// ChangePassword updates the password of an already-authenticated user.
// The old password must verify (common.ErrWrongOldPassword) and the new one
// must actually differ (common.ErrSamePassword).
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error {
	if !auth.VerifyPassword(oldPassword, user.PasswordHash) {
		return common.ErrWrongOldPassword
	}
	if auth.VerifyPassword(newPassword, user.PasswordHash) {
		return common.ErrSamePassword
	}
	if len(newPassword) < s.passwordMinLength {
		return common.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return common.ErrInternal
	}

	if err := s.repos.Users(s.db).UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// RequestReset starts the reset flow for the account behind email. An unknown
// email is a silent no-op so responses cannot be used for enumeration. The
// new token replaces any prior token for the user; only a failed mail
// delivery is reported (common.ErrDeliveryFailure), since the user would
// otherwise wait for mail that never arrives.
func (s *AuthService) RequestReset(ctx context.Context, email string) error {
	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.logger.Info(ctx, "reset requested for unknown email")
			return nil
		}
		return common.ErrInternal
	}

	token, err := common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return common.ErrInternal
	}

	// single live token per user: replace inside one transaction
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repos.ResetTokens(tx)
		if err := repoTx.DeleteAllForUser(ctx, user.ID); err != nil {
			return err
		}
		return repoTx.Create(ctx, user.ID, token, s.resetTokenValidity)
	})
	if err != nil {
		return fmt.Errorf("error storing reset token: %w", err)
	}

	if err := s.mail.SendPasswordReset(ctx, user.Email, user.Name, token); err != nil {
		s.logger.Error(ctx, "reset mail delivery failed", "error", err)
		return common.ErrDeliveryFailure
	}

	s.logger.Info(ctx, "reset token issued", "user_id", user.ID)
	return nil
}

// CompleteReset consumes a reset token and overwrites the bound user's
// password. Consume-and-update run in one transaction, so racing calls on
// the same token produce exactly one success; the losers get
// common.ErrInvalidOrExpiredToken, as does any replay or expired token.
func (s *AuthService) CompleteReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < s.passwordMinLength {
		return common.ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return common.ErrInternal
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		rt, err := s.repos.ResetTokens(tx).Consume(ctx, token, time.Now())
		if err != nil {
			return err
		}
		return s.repos.Users(tx).UpdatePassword(ctx, rt.UserID, hash)
	})
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("error completing reset: %w", err)
	}

	s.logger.Info(ctx, "password reset completed")
	return nil
}

// PurgeExpiredTokens removes expired reset tokens. Purely maintenance:
// expired tokens are rejected on consume whether or not this ever runs.
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) (int64, error) {
	return s.repos.ResetTokens(s.db).DeleteExpired(ctx, time.Now())
}
