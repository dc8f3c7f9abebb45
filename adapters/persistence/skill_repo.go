package persistence

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, log logger.Logger) content.SkillRepository {
	return &postgresSkillRepo{db: db, logger: log}
}

// List returns flat rows ordered by category then id; the snapshot use case
// groups them into the categorized read model.
func (r *postgresSkillRepo) List(ctx context.Context) ([]content.CategorizedSkill, error) {
	builder := psql.Select("id, category, name, logo, level, invert").
		From("portfolio_skills").
		OrderBy("category", "id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	defer rows.Close()

	skills := make([]content.CategorizedSkill, 0)
	for rows.Next() {
		var s content.CategorizedSkill
		if err := rows.Scan(&s.ID, &s.Category, &s.Name, &s.Logo, &s.Level, &s.Invert); err != nil {
			return nil, apperror.NewInternal("failed to scan skill row", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) Create(ctx context.Context, s content.CategorizedSkill) (int64, error) {
	query := `
		INSERT INTO portfolio_skills (category, name, logo, level, invert)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, s.Category, s.Name, s.Logo, s.Level, s.Invert).Scan(&id)
	if err != nil {
		return 0, apperror.NewInternal("failed to insert skill", err)
	}
	return id, nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s content.CategorizedSkill) error {
	query := `
		UPDATE portfolio_skills SET
			category = $2,
			name = $3,
			logo = $4,
			level = $5,
			invert = $6,
			updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Category, s.Name, s.Logo, s.Level, s.Invert)
	if err != nil {
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", formatID(s.ID))
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM portfolio_skills WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", formatID(id))
	}
	return nil
}
