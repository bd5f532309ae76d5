package commands

import (
	"context"
	"log/slog"

	"ticket-seckill/internal/domain/user"
	"ticket-seckill/internal/pkg/clock"
	"ticket-seckill/internal/pkg/errs"
	"ticket-seckill/internal/pkg/jwt"
	"ticket-seckill/internal/pkg/password"
	"ticket-seckill/internal/usecase/shared"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Username string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	Username    string
	Role        user.Role
	AccessToken string
	// Registered is true when this login created the account.
	Registered bool
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow            shared.UnitOfWork
	jwtService     *jwt.Service
	clock          clock.Clock
	adminUsernames []string
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock, adminUsernames []string) AuthCommands {
	return &authCommandsImpl{
		uow:            uow,
		jwtService:     jwtService,
		clock:          clk,
		adminUsernames: adminUsernames,
	}
}

// Login verifies the password of a known user, or registers the username on first use.
func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := user.NewCredentials(req.Username, req.Password)
	if err != nil {
		return nil, errs.Mark(invalidInput(err), ErrAuthenticationFailed)
	}

	account, registered, err := a.findOrRegister(ctx, credentials)
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.Username().Value(), account.Role())
	if err != nil {
		return nil, errs.Wrap(ErrTokenGeneration, err.Error())
	}

	err = a.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), account.ID(), a.clock.Now())
	})
	if err != nil {
		// Login already succeeded; last_login_at is informational.
		slog.WarnContext(ctx, "failed to update last login", "user_id", account.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      account.ID(),
		Username:    account.Username().Value(),
		Role:        account.Role(),
		AccessToken: token,
		Registered:  registered,
	}, nil
}

func (a *authCommandsImpl) findOrRegister(ctx context.Context, credentials user.Credentials) (*user.User, bool, error) {
	var (
		existing *user.User
		findErr  error
	)
	err := a.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, findErr = tx.Users().FindByUsername(ctx, tx.DB(), credentials.Username())
		return nil
	})
	if err != nil {
		return nil, false, storageFailure(err, "find user")
	}

	switch {
	case findErr == nil:
		if err := password.ComparePassword(existing.PasswordHash(), credentials.Password().Value()); err != nil {
			return nil, false, ErrInvalidCredentials
		}
		return existing, false, nil
	case !isNotFound(findErr):
		return nil, false, storageFailure(findErr, "find user")
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		if errs.Is(err, password.ErrPasswordTooLong) {
			return nil, false, invalidInput(err)
		}
		return nil, false, storageFailure(err, "hash password")
	}

	candidate := user.NewUser(credentials.Username(), hash, user.RoleFor(credentials.Username(), a.adminUsernames))

	var stored *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Users().Create(ctx, tx.DB(), candidate)
		if err != nil {
			return storageFailure(err, "create user")
		}
		stored = res
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	// A concurrent first login registered the name first; its password decides.
	if stored.ID() != candidate.ID() {
		if err := password.ComparePassword(stored.PasswordHash(), credentials.Password().Value()); err != nil {
			return nil, false, ErrInvalidCredentials
		}
		return stored, false, nil
	}
	return stored, true, nil
}
