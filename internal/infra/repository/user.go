package repository

import (
	"context"

	"stayline/internal/domain/user"
	"stayline/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const insertUser = `
INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, insertUser, u.ID(), u.Email().String(), u.PasswordHash(), u.Role().String())
	if err != nil {
		return wrapQueryErr("failed to create user", err)
	}
	return nil
}

const selectUserByEmail = `
SELECT id, email, password_hash, role FROM users WHERE email = $1
`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRow(ctx, selectUserByEmail, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find user by email", err)
	}
	return u, nil
}

const selectUserByID = `
SELECT id, email, password_hash, role FROM users WHERE id = $1
`

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, selectUserByID, id)
	u, err := scanUser(row)
	if err != nil {
		return nil, wrapQueryErr("failed to find user by id", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id           uuid.UUID
		emailStr     string
		passwordHash string
		roleStr      string
	)
	if err := row.Scan(&id, &emailStr, &passwordHash, &roleStr); err != nil {
		return nil, err
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(roleStr)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, email, passwordHash, role), nil
}
