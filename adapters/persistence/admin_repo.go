package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type postgresAdminRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAdminRepo(db *pgxpool.Pool, log logger.Logger) content.AdminRepository {
	return &postgresAdminRepo{db: db, logger: log}
}

func (r *postgresAdminRepo) PasswordHash(ctx context.Context) (string, error) {
	var hash string
	err := r.db.QueryRow(ctx, `SELECT password_hash FROM admin_account WHERE id = 1`).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.NewNotFound("admin account", "1")
		}
		return "", apperror.NewInternal("failed to query admin account", err)
	}
	return hash, nil
}
