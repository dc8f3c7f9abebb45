package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Autum7899/My-Portfolio/internal/domain/content"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

// Gateway is the boundary between the portfolio store and the admin API.
// It carries no cache and mutates no local state; every failure is typed so
// the store can decide how to absorb it.
type Gateway interface {
	FetchSnapshot(ctx context.Context) (content.Snapshot, error)
	Login(ctx context.Context, password string) (string, error)

	CreateCareer(ctx context.Context, e content.CareerEntry) (int64, error)
	UpdateCareer(ctx context.Context, e content.CareerEntry) error
	DeleteCareer(ctx context.Context, id int64) error

	CreateProject(ctx context.Context, p content.Project) (int64, error)
	UpdateProject(ctx context.Context, p content.Project) error
	DeleteProject(ctx context.Context, id int64) error

	CreateSkill(ctx context.Context, s content.CategorizedSkill) (int64, error)
	UpdateSkill(ctx context.Context, s content.CategorizedSkill) error
	DeleteSkill(ctx context.Context, id int64) error

	UpdateProfile(ctx context.Context, p content.Profile) error
}

// TokenProvider resolves the current bearer token; an empty string means the
// caller is not authenticated and the write will come back 401.
type TokenProvider func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenProvider
	log     logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, token TokenProvider, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

func (c *Client) FetchSnapshot(ctx context.Context) (content.Snapshot, error) {
	var raw map[string]any
	if err := c.call(ctx, http.MethodGet, "/api/portfolio", nil, false, &raw); err != nil {
		return content.Snapshot{}, err
	}
	return content.NormalizeSnapshot(raw), nil
}

func (c *Client) Login(ctx context.Context, password string) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	err := c.call(ctx, http.MethodPost, "/api/admin/auth/login", map[string]string{"password": password}, false, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success || resp.Token == "" {
		return "", apperror.NewUnauthorized("login rejected", nil)
	}
	return resp.Token, nil
}

func (c *Client) CreateCareer(ctx context.Context, e content.CareerEntry) (int64, error) {
	return c.create(ctx, "/api/admin/career", e)
}

func (c *Client) UpdateCareer(ctx context.Context, e content.CareerEntry) error {
	return c.call(ctx, http.MethodPut, "/api/admin/career", e, true, nil)
}

func (c *Client) DeleteCareer(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/admin/career", id)
}

func (c *Client) CreateProject(ctx context.Context, p content.Project) (int64, error) {
	return c.create(ctx, "/api/admin/projects", p)
}

func (c *Client) UpdateProject(ctx context.Context, p content.Project) error {
	return c.call(ctx, http.MethodPut, "/api/admin/projects", p, true, nil)
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/admin/projects", id)
}

func (c *Client) CreateSkill(ctx context.Context, s content.CategorizedSkill) (int64, error) {
	return c.create(ctx, "/api/admin/skills", s)
}

func (c *Client) UpdateSkill(ctx context.Context, s content.CategorizedSkill) error {
	return c.call(ctx, http.MethodPut, "/api/admin/skills", s, true, nil)
}

func (c *Client) DeleteSkill(ctx context.Context, id int64) error {
	return c.delete(ctx, "/api/admin/skills", id)
}

func (c *Client) UpdateProfile(ctx context.Context, p content.Profile) error {
	return c.call(ctx, http.MethodPut, "/api/admin/profile", p, true, nil)
}

func (c *Client) create(ctx context.Context, path string, body any) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.call(ctx, http.MethodPost, path, body, true, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) delete(ctx context.Context, path string, id int64) error {
	return c.call(ctx, http.MethodDelete, path, map[string]int64{"id": id}, true, nil)
}

func (c *Client) call(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.NewInternal("failed to encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.NewInternal("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.NewUnavailable(fmt.Sprintf("%s %s", method, path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.remoteError(resp, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperror.NewInternal("failed to decode response body", err)
		}
	}
	return nil
}

func (c *Client) remoteError(resp *http.Response, method, path string) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		payload.Error = resp.Status
	}
	c.log.Warn("gateway call failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("server_error", payload.Error),
	)
	return apperror.NewRemote(resp.StatusCode, payload.Error)
}
