package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/pkg/uow"
)

const userColumns = `id, created_at, updated_at, username, password, role`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

func (r *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING `+userColumns,
		args.Username, args.Password, args.Role,
	)

	var user domain.User
	if err := row.Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username, &user.Password, &user.Role,
	); err != nil {
		return nil, convertErr(err, "creating user `%s`", args.Username)
	}
	return &user, nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username,
	)

	var user domain.User
	if err := row.Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username, &user.Password, &user.Role,
	); err != nil {
		return nil, convertErr(err, "finding user by username `%s`", username)
	}
	return &user, nil
}
