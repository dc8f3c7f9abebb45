package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type postgresMessageRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresMessageRepo(db *pgxpool.Pool, log logger.Logger) content.MessageRepository {
	return &postgresMessageRepo{db: db, logger: log}
}

func (r *postgresMessageRepo) Create(ctx context.Context, m content.Message) error {
	query := `
		INSERT INTO messages (name, email, message)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, m.Name, m.Email, m.Message)
	if err != nil {
		return apperror.NewInternal("failed to insert message", err)
	}
	return nil
}
