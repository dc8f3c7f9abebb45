package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	authUC "github.com/Autum7899/My-Portfolio/internal/usecase/auth"
	backupUC "github.com/Autum7899/My-Portfolio/internal/usecase/backup"
	contentUC "github.com/Autum7899/My-Portfolio/internal/usecase/content"
	snapshotUC "github.com/Autum7899/My-Portfolio/internal/usecase/snapshot"
	"github.com/Autum7899/My-Portfolio/pkg/auth"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// --- in-memory fakes ---

type memProfileRepo struct {
	profile *content.Profile
}

func (r *memProfileRepo) Get(ctx context.Context) (*content.Profile, error) {
	return r.profile, nil
}

func (r *memProfileRepo) Upsert(ctx context.Context, p content.Profile) error {
	r.profile = &p
	return nil
}

type memCareerRepo struct {
	entries []content.CareerEntry
	nextID  int64
}

func (r *memCareerRepo) List(ctx context.Context) ([]content.CareerEntry, error) {
	return append([]content.CareerEntry{}, r.entries...), nil
}

func (r *memCareerRepo) Create(ctx context.Context, e content.CareerEntry) (int64, error) {
	r.nextID++
	e.ID = r.nextID
	r.entries = append(r.entries, e)
	return e.ID, nil
}

func (r *memCareerRepo) Update(ctx context.Context, e content.CareerEntry) error {
	for i := range r.entries {
		if r.entries[i].ID == e.ID {
			r.entries[i] = e
			return nil
		}
	}
	return nil
}

func (r *memCareerRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

type memProjectRepo struct {
	projects []content.Project
	nextID   int64
}

func (r *memProjectRepo) List(ctx context.Context) ([]content.Project, error) {
	return append([]content.Project{}, r.projects...), nil
}

func (r *memProjectRepo) Create(ctx context.Context, p content.Project) (int64, error) {
	r.nextID++
	p.ID = r.nextID
	r.projects = append(r.projects, p)
	return p.ID, nil
}

func (r *memProjectRepo) Update(ctx context.Context, p content.Project) error {
	for i := range r.projects {
		if r.projects[i].ID == p.ID {
			r.projects[i] = p
			return nil
		}
	}
	return nil
}

func (r *memProjectRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

type memSkillRepo struct {
	skills []content.CategorizedSkill
	nextID int64
}

func (r *memSkillRepo) List(ctx context.Context) ([]content.CategorizedSkill, error) {
	return append([]content.CategorizedSkill{}, r.skills...), nil
}

func (r *memSkillRepo) Create(ctx context.Context, s content.CategorizedSkill) (int64, error) {
	r.nextID++
	s.ID = r.nextID
	r.skills = append(r.skills, s)
	return s.ID, nil
}

func (r *memSkillRepo) Update(ctx context.Context, s content.CategorizedSkill) error {
	for i := range r.skills {
		if r.skills[i].ID == s.ID {
			r.skills[i] = s
			return nil
		}
	}
	return nil
}

func (r *memSkillRepo) Delete(ctx context.Context, id int64) error {
	for i := range r.skills {
		if r.skills[i].ID == id {
			r.skills = append(r.skills[:i], r.skills[i+1:]...)
			return nil
		}
	}
	return nil
}

type memMessageRepo struct {
	messages []content.Message
}

func (r *memMessageRepo) Create(ctx context.Context, m content.Message) error {
	r.messages = append(r.messages, m)
	return nil
}

type memAdminRepo struct {
	hash string
}

func (r *memAdminRepo) PasswordHash(ctx context.Context) (string, error) {
	return r.hash, nil
}

type memPublisher struct {
	published []string
}

func (p *memPublisher) PublishContentEvent(ctx context.Context, eventType, collection string, entityID int64) error {
	p.published = append(p.published, eventType+":"+collection)
	return nil
}

type memUploader struct {
	uploads []string
}

func (u *memUploader) Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error) {
	u.uploads = append(u.uploads, publicID)
	return "https://cdn.example.com/" + folder + "/" + publicID, nil
}

func (u *memUploader) Delete(ctx context.Context, publicID string) error {
	return nil
}

type memCache struct {
	payload     []byte
	invalidated int
}

func (c *memCache) Get(ctx context.Context) ([]byte, bool) {
	if c.payload == nil {
		return nil, false
	}
	return c.payload, true
}

func (c *memCache) Set(ctx context.Context, payload []byte) {
	c.payload = payload
}

func (c *memCache) Invalidate(ctx context.Context) {
	c.payload = nil
	c.invalidated++
}

// --- suite ---

const testAdminPassword = "e2e_test_password_123"

type HandlerTestSuite struct {
	suite.Suite
	Router      *gin.Engine
	token       string
	careerRepo  *memCareerRepo
	projectRepo *memProjectRepo
	skillRepo   *memSkillRepo
	messageRepo *memMessageRepo
	publisher   *memPublisher
	cache       *memCache
	uploader    *memUploader
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()

	profileRepo := &memProfileRepo{}
	s.careerRepo = &memCareerRepo{}
	s.projectRepo = &memProjectRepo{}
	s.skillRepo = &memSkillRepo{}
	s.messageRepo = &memMessageRepo{}
	s.publisher = &memPublisher{}
	s.cache = &memCache{}

	hash, err := auth.HashPassword(testAdminPassword)
	s.Require().NoError(err)
	adminRepo := &memAdminRepo{hash: hash}

	s.uploader = &memUploader{}

	jwtSvc := auth.NewJWTService("handler-test-secret", time.Hour)
	loginUseCase := authUC.NewLoginUseCase(adminRepo, jwtSvc, log)
	snapshotUseCase := snapshotUC.NewSnapshotUseCase(profileRepo, s.careerRepo, s.projectRepo, s.skillRepo, s.cache, log)
	contentUseCase := contentUC.NewContentUseCase(
		profileRepo, s.careerRepo, s.projectRepo, s.skillRepo, s.messageRepo,
		s.publisher, s.cache, log,
	)
	backupUseCase := backupUC.NewBackupUseCase(snapshotUseCase, s.uploader, log)

	s.Router = NewRouter(Handlers{
		Portfolio: NewPortfolioHandler(snapshotUseCase, log),
		Auth:      NewAuthHandler(loginUseCase, log),
		Career:    NewCareerHandler(contentUseCase, log),
		Project:   NewProjectHandler(contentUseCase, log),
		Skill:     NewSkillHandler(contentUseCase, log),
		Profile:   NewProfileHandler(contentUseCase, log),
		Message:   NewMessageHandler(contentUseCase, log),
		Media:     NewMediaHandler(s.uploader, log),
		Backup:    NewBackupHandler(backupUseCase, log),
	}, jwtSvc, log)

	s.token, err = jwtSvc.GenerateToken()
	s.Require().NoError(err)
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func (s *HandlerTestSuite) Test_Health() {
	rr := s.do(http.MethodGet, "/api/health", nil, false)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
}

func (s *HandlerTestSuite) Test_GetPortfolio_EmptyDatabase() {
	rr := s.do(http.MethodGet, "/api/portfolio", nil, false)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var body struct {
		Profile  *content.Profile      `json:"profile"`
		Career   []content.CareerEntry `json:"career"`
		Projects []content.Project     `json:"projects"`
		Skills   content.SkillSet      `json:"skillCategories"`
	}
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Nil(s.T(), body.Profile)
	assert.Empty(s.T(), body.Career)
}

func (s *HandlerTestSuite) Test_GetPortfolio_ServedFromCache() {
	s.cache.payload = []byte(`{"profile":null,"career":[],"projects":[],"skillCategories":{}}`)

	rr := s.do(http.MethodGet, "/api/portfolio", nil, false)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.JSONEq(s.T(), string(s.cache.payload), rr.Body.String())
}

func (s *HandlerTestSuite) Test_Login_Flow() {
	rrBad := s.do(http.MethodPost, "/api/admin/auth/login", gin.H{"password": "wrongpassword"}, false)
	assert.Equal(s.T(), http.StatusUnauthorized, rrBad.Code)

	var badBody map[string]any
	s.Require().NoError(json.Unmarshal(rrBad.Body.Bytes(), &badBody))
	assert.Equal(s.T(), false, badBody["success"])
	assert.Equal(s.T(), "Invalid password", badBody["error"])

	rrGood := s.do(http.MethodPost, "/api/admin/auth/login", gin.H{"password": testAdminPassword}, false)
	assert.Equal(s.T(), http.StatusOK, rrGood.Code)

	var goodBody map[string]any
	s.Require().NoError(json.Unmarshal(rrGood.Body.Bytes(), &goodBody))
	assert.Equal(s.T(), true, goodBody["success"])
	assert.NotEmpty(s.T(), goodBody["token"])
}

func (s *HandlerTestSuite) Test_AdminRoutes_RejectMissingToken() {
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/admin/career"},
		{http.MethodPut, "/api/admin/projects"},
		{http.MethodDelete, "/api/admin/skills"},
		{http.MethodPut, "/api/admin/profile"},
	}
	for _, p := range paths {
		rr := s.do(p.method, p.path, gin.H{}, false)
		assert.Equal(s.T(), http.StatusUnauthorized, rr.Code, "%s %s", p.method, p.path)
	}
}

func (s *HandlerTestSuite) Test_AdminRoutes_RejectBadToken() {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/career", bytes.NewBufferString(`{}`))
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	assert.Equal(s.T(), http.StatusUnauthorized, rr.Code)
}

func (s *HandlerTestSuite) Test_CreateCareer() {
	rr := s.do(http.MethodPost, "/api/admin/career", gin.H{
		"institution": "University of Transport and Communications",
		"degree":      "Engineer",
		"major":       "Information Technology",
		"date":        "2021 - 2025",
	}, true)
	assert.Equal(s.T(), http.StatusCreated, rr.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(s.T(), float64(1), body["id"])
	assert.Len(s.T(), s.careerRepo.entries, 1)
	assert.Contains(s.T(), s.publisher.published, "content.created:career")
}

func (s *HandlerTestSuite) Test_CreateCareer_MissingInstitution() {
	rr := s.do(http.MethodPost, "/api/admin/career", gin.H{"degree": "Engineer"}, true)
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *HandlerTestSuite) Test_UpdateProject_InvalidatesCache() {
	id, err := s.projectRepo.Create(context.Background(), content.Project{Title: "Old"})
	s.Require().NoError(err)
	s.cache.payload = []byte(`{"stale":true}`)

	rr := s.do(http.MethodPut, "/api/admin/projects", gin.H{
		"id":    id,
		"title": "My Portfolio",
		"tags":  []string{"Go", "React"},
	}, true)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.Nil(s.T(), s.cache.payload)
	assert.Equal(s.T(), "My Portfolio", s.projectRepo.projects[0].Title)
}

func (s *HandlerTestSuite) Test_DeleteSkill() {
	id, err := s.skillRepo.Create(context.Background(), content.CategorizedSkill{
		Skill:    content.Skill{Name: "React"},
		Category: content.CategoryFrontend,
	})
	s.Require().NoError(err)

	rr := s.do(http.MethodDelete, "/api/admin/skills", gin.H{"id": id}, true)
	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.Empty(s.T(), s.skillRepo.skills)
	assert.Contains(s.T(), s.publisher.published, "content.deleted:skills")
}

func (s *HandlerTestSuite) Test_CreateSkill_UnknownCategory() {
	rr := s.do(http.MethodPost, "/api/admin/skills", gin.H{
		"category": "astrology",
		"name":     "Tarot",
	}, true)
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
	assert.Empty(s.T(), s.skillRepo.skills)
}

func (s *HandlerTestSuite) Test_UpdateProfile_ThenSnapshotCarriesIt() {
	rr := s.do(http.MethodPut, "/api/admin/profile", gin.H{
		"name":  "Nguyen Truong Minh Son",
		"title": "Full-Stack Developer",
		"socials": gin.H{
			"github": "https://github.com/Autum7899",
		},
	}, true)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	rrSnap := s.do(http.MethodGet, "/api/portfolio", nil, false)
	assert.Equal(s.T(), http.StatusOK, rrSnap.Code)

	var body struct {
		Profile *content.Profile `json:"profile"`
	}
	s.Require().NoError(json.Unmarshal(rrSnap.Body.Bytes(), &body))
	s.Require().NotNil(body.Profile)
	assert.Equal(s.T(), "Nguyen Truong Minh Son", body.Profile.Name)
	assert.Equal(s.T(), "https://github.com/Autum7899", body.Profile.Socials.GitHub)
}

func (s *HandlerTestSuite) Test_SubmitMessage() {
	rr := s.do(http.MethodPost, "/api/messages", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Nice site!",
	}, false)
	assert.Equal(s.T(), http.StatusCreated, rr.Code)
	assert.Len(s.T(), s.messageRepo.messages, 1)
}

func (s *HandlerTestSuite) Test_SubmitMessage_MissingFields() {
	rr := s.do(http.MethodPost, "/api/messages", gin.H{"name": "Visitor"}, false)
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
	assert.Empty(s.T(), s.messageRepo.messages)
}

func (s *HandlerTestSuite) Test_UploadMedia() {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "avatar.png")
	s.Require().NoError(err)
	_, err = part.Write([]byte("not-really-a-png"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/media", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token)
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(s.T(), http.StatusCreated, rr.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(s.T(), body["url"], "https://cdn.example.com/portfolio/avatar-")
	assert.Len(s.T(), s.uploader.uploads, 1)
}

func (s *HandlerTestSuite) Test_UploadMedia_MissingFile() {
	rr := s.do(http.MethodPost, "/api/admin/media", gin.H{}, true)
	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *HandlerTestSuite) Test_CreateBackup() {
	rr := s.do(http.MethodPost, "/api/admin/backup", nil, true)
	assert.Equal(s.T(), http.StatusOK, rr.Code)

	var body map[string]string
	s.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(s.T(), body["url"], "backups/portfolio/portfolio-")
	assert.Len(s.T(), s.uploader.uploads, 1)
}

func (s *HandlerTestSuite) Test_CORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/admin/projects", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	assert.Equal(s.T(), http.StatusOK, rr.Code)
	assert.Equal(s.T(), "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
