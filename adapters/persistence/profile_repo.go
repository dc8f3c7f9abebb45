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

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, log logger.Logger) content.ProfileRepository {
	return &postgresProfileRepo{db: db, logger: log}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*content.Profile, error) {
	query := `
		SELECT name, title, location, bio, profile_image, email, github, linkedin, twitter, facebook
		FROM portfolio_user
		LIMIT 1
	`
	p := &content.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.Name,
		&p.Title,
		&p.Location,
		&p.Bio,
		&p.ProfileImage,
		&p.Email,
		&p.Socials.GitHub,
		&p.Socials.LinkedIn,
		&p.Socials.Twitter,
		&p.Socials.Facebook,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}
	return p, nil
}

// Upsert keeps the singleton invariant: the fixed id makes a second row
// impossible.
func (r *postgresProfileRepo) Upsert(ctx context.Context, p content.Profile) error {
	query := `
		INSERT INTO portfolio_user (id, name, title, location, bio, profile_image, email, github, linkedin, twitter, facebook, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			title = EXCLUDED.title,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			profile_image = EXCLUDED.profile_image,
			email = EXCLUDED.email,
			github = EXCLUDED.github,
			linkedin = EXCLUDED.linkedin,
			twitter = EXCLUDED.twitter,
			facebook = EXCLUDED.facebook,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		p.Name, p.Title, p.Location, p.Bio, p.ProfileImage, p.Email,
		p.Socials.GitHub, p.Socials.LinkedIn, p.Socials.Twitter, p.Socials.Facebook,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
