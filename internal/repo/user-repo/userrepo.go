package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/numbroker/numbroker/internal/domain"
	"github.com/numbroker/numbroker/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, is_admin, is_banned FROM users WHERE login = $1", login).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.IsAdmin, &user.IsBanned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, login, password_hash, is_admin, is_banned FROM users WHERE id = $1", userID).
		Scan(&user.ID, &user.Login, &user.PasswordHash, &user.IsAdmin, &user.IsBanned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) SetBanned(ctx context.Context, userID int, banned bool) error {
	query := `
		UPDATE users
		SET is_banned = $1
		WHERE id = $2
	`
	_, err := repo.db.Exec(ctx, query, banned, userID)
	if err != nil {
		zap.L().Error("can't update ban flag", zap.Error(err))
		return err
	}
	return nil
}
