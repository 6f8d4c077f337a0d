package service

import (
	"context"
	"errors"

	"yogastudio/web/internal/models"
)

// ErrorMessage is the only failure text users ever see: collaborator
// failures are not told apart.
const ErrorMessage = "An error occurred"

var (
	// ErrSubmit wraps every collaborator failure surfaced by a presenter.
	ErrSubmit = errors.New("an error occurred")
	// ErrInvalidForm wraps field validation errors.
	ErrInvalidForm = errors.New("invalid form")
)

type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (models.SessionIdentity, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

type SessionAPI interface {
	ListSessions(ctx context.Context) ([]models.Session, error)
	GetSession(ctx context.Context, id string) (models.Session, error)
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	UpdateSession(ctx context.Context, id string, session models.Session) (models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	Participate(ctx context.Context, sessionID, userID string) error
	UnParticipate(ctx context.Context, sessionID, userID string) error
}

type TeacherAPI interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacher(ctx context.Context, id string) (models.Teacher, error)
}

type UserAPI interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// SessionState is the slice of the authentication state presenters use.
// Only login, logout and account deletion mutate it.
type SessionState interface {
	LogIn(identity models.SessionIdentity)
	LogOut()
	Identity() (models.SessionIdentity, bool)
}
