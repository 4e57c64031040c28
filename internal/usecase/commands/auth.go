package commands

import (
	"context"
	"log/slog"

	"stayline/internal/domain/user"
	"stayline/internal/infra"
	"stayline/internal/infra/db"
	"stayline/internal/pkg/errs"
	"stayline/internal/pkg/jwt"
	"stayline/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyUsed   = errs.New("email is already registered")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserNotFound       = errs.New("user not found")
)

type RegisterRequest struct {
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	Token string
	User  *user.User
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, rawPassword string) (*AuthResult, error)
	CurrentUser(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type authCommandsImpl struct {
	users UserRepository
	tx    TxRunner
	jwt   *jwt.Service
}

func NewAuthCommands(users UserRepository, tx TxRunner, jwtSvc *jwt.Service) AuthCommands {
	return &authCommandsImpl{users: users, tx: tx, jwt: jwtSvc}
}

func (c *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(email, hash, role)

	persistErr := c.tx.RunInTx(ctx, func(tx db.DBTX) error {
		return c.users.Create(ctx, tx, u)
	})
	if persistErr != nil {
		if infra.IsKind(persistErr, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, errs.Mark(persistErr, ErrPersistenceFailure)
	}

	token, err := c.jwt.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}

	slog.Info("user registered", "user_id", u.ID(), "role", u.Role())
	return &AuthResult{Token: token, User: u}, nil
}

func (c *authCommandsImpl) CurrentUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := c.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*AuthResult, error) {
	u, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(u.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := c.jwt.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}
	return &AuthResult{Token: token, User: u}, nil
}
