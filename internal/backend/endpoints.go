package backend

import (
	"context"
	"net/http"
	"net/url"

	"yogastudio/web/internal/models"
)

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (models.SessionIdentity, error) {
	var identity models.SessionIdentity
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &identity); err != nil {
		return models.SessionIdentity{}, err
	}
	return identity, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

func (c *Client) ListSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := c.do(ctx, http.MethodGet, "/api/session", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *Client) GetSession(ctx context.Context, id string) (models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodGet, sessionPath(id), nil, &session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

func (c *Client) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	var created models.Session
	if err := c.do(ctx, http.MethodPost, "/api/session", session, &created); err != nil {
		return models.Session{}, err
	}
	return created, nil
}

func (c *Client) UpdateSession(ctx context.Context, id string, session models.Session) (models.Session, error) {
	var updated models.Session
	if err := c.do(ctx, http.MethodPut, sessionPath(id), session, &updated); err != nil {
		return models.Session{}, err
	}
	return updated, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, sessionPath(id), nil, nil)
}

func (c *Client) Participate(ctx context.Context, sessionID, userID string) error {
	return c.do(ctx, http.MethodPost, participatePath(sessionID, userID), nil, nil)
}

func (c *Client) UnParticipate(ctx context.Context, sessionID, userID string) error {
	return c.do(ctx, http.MethodDelete, participatePath(sessionID, userID), nil, nil)
}

func (c *Client) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := c.do(ctx, http.MethodGet, "/api/teacher", nil, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (c *Client) GetTeacher(ctx context.Context, id string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := c.do(ctx, http.MethodGet, "/api/teacher/"+url.PathEscape(id), nil, &teacher); err != nil {
		return models.Teacher{}, err
	}
	return teacher, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/user/"+url.PathEscape(id), nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/user/"+url.PathEscape(id), nil, nil)
}

func sessionPath(id string) string {
	return "/api/session/" + url.PathEscape(id)
}

func participatePath(sessionID, userID string) string {
	return sessionPath(sessionID) + "/participate/" + url.PathEscape(userID)
}
