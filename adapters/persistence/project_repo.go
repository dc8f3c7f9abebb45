package persistence

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, log logger.Logger) content.ProjectRepository {
	return &postgresProjectRepo{db: db, logger: log}
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]content.Project, error) {
	builder := psql.Select("id, title, description, image, tags, demo, repo").
		From("portfolio_projects").
		OrderBy("id")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}
	defer rows.Close()

	projects := make([]content.Project, 0)
	for rows.Next() {
		var p content.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &p.Tags, &p.Demo, &p.Repo); err != nil {
			return nil, apperror.NewInternal("failed to scan project row", err)
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Create(ctx context.Context, p content.Project) (int64, error) {
	query := `
		INSERT INTO portfolio_projects (title, description, image, tags, demo, repo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, p.Title, p.Description, p.Image, p.Tags, p.Demo, p.Repo).Scan(&id)
	if err != nil {
		return 0, apperror.NewInternal("failed to insert project", err)
	}
	return id, nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p content.Project) error {
	query := `
		UPDATE portfolio_projects SET
			title = $2,
			description = $3,
			image = $4,
			tags = $5,
			demo = $6,
			repo = $7,
			updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, p.ID, p.Title, p.Description, p.Image, p.Tags, p.Demo, p.Repo)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", formatID(p.ID))
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM portfolio_projects WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", formatID(id))
	}
	return nil
}
