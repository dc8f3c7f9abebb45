package snapshot

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/adapters/persistence"
	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// PortfolioView is the public snapshot payload. Profile is a pointer so an
// empty database serves JSON null and the client falls back to its defaults.
type PortfolioView struct {
	Profile  *content.Profile      `json:"profile"`
	Career   []content.CareerEntry `json:"career"`
	Projects []content.Project     `json:"projects"`
	Skills   content.SkillSet      `json:"skillCategories"`
}

type SnapshotUseCase struct {
	profileRepo content.ProfileRepository
	careerRepo  content.CareerRepository
	projectRepo content.ProjectRepository
	skillRepo   content.SkillRepository
	cache       persistence.SnapshotCache
	logger      logger.Logger
}

func NewSnapshotUseCase(
	profileRepo content.ProfileRepository,
	careerRepo content.CareerRepository,
	projectRepo content.ProjectRepository,
	skillRepo content.SkillRepository,
	cache persistence.SnapshotCache,
	log logger.Logger,
) *SnapshotUseCase {
	return &SnapshotUseCase{
		profileRepo: profileRepo,
		careerRepo:  careerRepo,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		cache:       cache,
		logger:      log,
	}
}

// Execute returns the encoded snapshot payload, served from cache when warm.
func (uc *SnapshotUseCase) Execute(ctx context.Context) ([]byte, error) {
	if payload, ok := uc.cache.Get(ctx); ok {
		return payload, nil
	}

	view, err := uc.assemble(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(view)
	if err != nil {
		return nil, apperror.NewInternal("failed to encode snapshot", err)
	}

	uc.cache.Set(ctx, payload)
	return payload, nil
}

func (uc *SnapshotUseCase) assemble(ctx context.Context) (*PortfolioView, error) {
	profile, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	career, err := uc.careerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	flat, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("assembled portfolio snapshot",
		zap.Int("career", len(career)),
		zap.Int("projects", len(projects)),
		zap.Int("skills", len(flat)),
	)

	return &PortfolioView{
		Profile:  profile,
		Career:   career,
		Projects: projects,
		Skills:   content.GroupSkills(flat),
	}, nil
}
