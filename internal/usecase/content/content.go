package content

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/adapters/event"
	"github.com/Autum7899/My-Portfolio/adapters/persistence"
	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// ContentUseCase owns the write path for every collection: database write,
// content event, cache invalidation. Event publishing is best-effort; a dead
// broker must not fail an edit that is already committed.
type ContentUseCase struct {
	profileRepo content.ProfileRepository
	careerRepo  content.CareerRepository
	projectRepo content.ProjectRepository
	skillRepo   content.SkillRepository
	messageRepo content.MessageRepository
	publisher   event.ContentEventPublisher
	cache       persistence.SnapshotCache
	logger      logger.Logger
}

func NewContentUseCase(
	profileRepo content.ProfileRepository,
	careerRepo content.CareerRepository,
	projectRepo content.ProjectRepository,
	skillRepo content.SkillRepository,
	messageRepo content.MessageRepository,
	publisher event.ContentEventPublisher,
	cache persistence.SnapshotCache,
	log logger.Logger,
) *ContentUseCase {
	return &ContentUseCase{
		profileRepo: profileRepo,
		careerRepo:  careerRepo,
		projectRepo: projectRepo,
		skillRepo:   skillRepo,
		messageRepo: messageRepo,
		publisher:   publisher,
		cache:       cache,
		logger:      log,
	}
}

func (uc *ContentUseCase) contentChanged(ctx context.Context, eventType, collection string, entityID int64) {
	uc.cache.Invalidate(ctx)
	if err := uc.publisher.PublishContentEvent(ctx, eventType, collection, entityID); err != nil {
		uc.logger.Warn("failed to publish content event",
			zap.String("collection", collection),
			zap.Error(err),
		)
	}
}

// --- Career ---

func (uc *ContentUseCase) CreateCareer(ctx context.Context, e content.CareerEntry) (int64, error) {
	id, err := uc.careerRepo.Create(ctx, e)
	if err != nil {
		return 0, err
	}
	uc.contentChanged(ctx, event.EventContentCreated, "career", id)
	return id, nil
}

func (uc *ContentUseCase) UpdateCareer(ctx context.Context, e content.CareerEntry) error {
	if err := uc.careerRepo.Update(ctx, e); err != nil {
		return err
	}
	uc.contentChanged(ctx, event.EventContentUpdated, "career", e.ID)
	return nil
}

func (uc *ContentUseCase) DeleteCareer(ctx context.Context, id int64) error {
	if err := uc.careerRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.contentChanged(ctx, event.EventContentDeleted, "career", id)
	return nil
}

// --- Projects ---

func (uc *ContentUseCase) CreateProject(ctx context.Context, p content.Project) (int64, error) {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	id, err := uc.projectRepo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	uc.contentChanged(ctx, event.EventContentCreated, "projects", id)
	return id, nil
}

func (uc *ContentUseCase) UpdateProject(ctx context.Context, p content.Project) error {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return err
	}
	uc.contentChanged(ctx, event.EventContentUpdated, "projects", p.ID)
	return nil
}

func (uc *ContentUseCase) DeleteProject(ctx context.Context, id int64) error {
	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.contentChanged(ctx, event.EventContentDeleted, "projects", id)
	return nil
}

// --- Skills ---

func (uc *ContentUseCase) CreateSkill(ctx context.Context, s content.CategorizedSkill) (int64, error) {
	if !content.IsValidCategory(s.Category) {
		return 0, apperror.NewInvalidInput("unknown skill category: "+string(s.Category), nil)
	}
	id, err := uc.skillRepo.Create(ctx, s)
	if err != nil {
		return 0, err
	}
	uc.contentChanged(ctx, event.EventContentCreated, "skills", id)
	return id, nil
}

func (uc *ContentUseCase) UpdateSkill(ctx context.Context, s content.CategorizedSkill) error {
	if !content.IsValidCategory(s.Category) {
		return apperror.NewInvalidInput("unknown skill category: "+string(s.Category), nil)
	}
	if err := uc.skillRepo.Update(ctx, s); err != nil {
		return err
	}
	uc.contentChanged(ctx, event.EventContentUpdated, "skills", s.ID)
	return nil
}

func (uc *ContentUseCase) DeleteSkill(ctx context.Context, id int64) error {
	if err := uc.skillRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.contentChanged(ctx, event.EventContentDeleted, "skills", id)
	return nil
}

// --- Profile ---

func (uc *ContentUseCase) UpdateProfile(ctx context.Context, p content.Profile) error {
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return err
	}
	uc.contentChanged(ctx, event.EventContentUpdated, "profile", 1)
	return nil
}

// --- Messages ---

func (uc *ContentUseCase) SubmitMessage(ctx context.Context, m content.Message) error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return apperror.NewInvalidInput("name, email, and message are required", nil)
	}
	return uc.messageRepo.Create(ctx, m)
}
