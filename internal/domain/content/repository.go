package content

import "context"

// Repositories back the admin API. Ids are assigned by the database on
// create, matching the gateway contract.

type ProfileRepository interface {
	// Get returns (nil, nil) when the singleton row does not exist yet.
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, p Profile) error
}

type CareerRepository interface {
	List(ctx context.Context) ([]CareerEntry, error)
	Create(ctx context.Context, e CareerEntry) (int64, error)
	Update(ctx context.Context, e CareerEntry) error
	Delete(ctx context.Context, id int64) error
}

type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	Create(ctx context.Context, p Project) (int64, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id int64) error
}

type SkillRepository interface {
	List(ctx context.Context) ([]CategorizedSkill, error)
	Create(ctx context.Context, s CategorizedSkill) (int64, error)
	Update(ctx context.Context, s CategorizedSkill) error
	Delete(ctx context.Context, id int64) error
}

type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type MessageRepository interface {
	Create(ctx context.Context, m Message) error
}

// AdminRepository resolves the stored bcrypt hash the login use case checks
// candidates against.
type AdminRepository interface {
	PasswordHash(ctx context.Context) (string, error)
}
