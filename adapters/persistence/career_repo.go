package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresCareerRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCareerRepo(db *pgxpool.Pool, log logger.Logger) content.CareerRepository {
	return &postgresCareerRepo{db: db, logger: log}
}

func (r *postgresCareerRepo) List(ctx context.Context) ([]content.CareerEntry, error) {
	builder := psql.Select("id, institution, degree, major, date, description").
		From("portfolio_career").
		OrderBy("id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build career list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query career entries", err)
	}
	defer rows.Close()

	entries := make([]content.CareerEntry, 0)
	for rows.Next() {
		var e content.CareerEntry
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.Major, &e.Date, &e.Description); err != nil {
			return nil, apperror.NewInternal("failed to scan career row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating career rows", err)
	}
	return entries, nil
}

func (r *postgresCareerRepo) Create(ctx context.Context, e content.CareerEntry) (int64, error) {
	query := `
		INSERT INTO portfolio_career (institution, degree, major, date, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, e.Institution, e.Degree, e.Major, e.Date, e.Description).Scan(&id)
	if err != nil {
		return 0, apperror.NewInternal("failed to insert career entry", err)
	}
	return id, nil
}

func (r *postgresCareerRepo) Update(ctx context.Context, e content.CareerEntry) error {
	query := `
		UPDATE portfolio_career SET
			institution = $2,
			degree = $3,
			major = $4,
			date = $5,
			description = $6,
			updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, e.ID, e.Institution, e.Degree, e.Major, e.Date, e.Description)
	if err != nil {
		return apperror.NewInternal("failed to update career entry", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("career entry", formatID(e.ID))
	}
	return nil
}

func (r *postgresCareerRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM portfolio_career WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete career entry", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("career entry", formatID(id))
	}
	return nil
}
