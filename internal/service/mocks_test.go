package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"yogastudio/web/internal/models"
)

// MockAuthAPI implements service.AuthAPI
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, req models.LoginRequest) (models.SessionIdentity, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.SessionIdentity), args.Error(1)
}

func (m *MockAuthAPI) Register(ctx context.Context, req models.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockSessionAPI implements service.SessionAPI
type MockSessionAPI struct {
	mock.Mock
}

func (m *MockSessionAPI) ListSessions(ctx context.Context) ([]models.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Session), args.Error(1)
}

func (m *MockSessionAPI) GetSession(ctx context.Context, id string) (models.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *MockSessionAPI) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *MockSessionAPI) UpdateSession(ctx context.Context, id string, session models.Session) (models.Session, error) {
	args := m.Called(ctx, id, session)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *MockSessionAPI) DeleteSession(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSessionAPI) Participate(ctx context.Context, sessionID, userID string) error {
	return m.Called(ctx, sessionID, userID).Error(0)
}

func (m *MockSessionAPI) UnParticipate(ctx context.Context, sessionID, userID string) error {
	return m.Called(ctx, sessionID, userID).Error(0)
}

// MockTeacherAPI implements service.TeacherAPI
type MockTeacherAPI struct {
	mock.Mock
}

func (m *MockTeacherAPI) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *MockTeacherAPI) GetTeacher(ctx context.Context, id string) (models.Teacher, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Teacher), args.Error(1)
}

// MockUserAPI implements service.UserAPI
type MockUserAPI struct {
	mock.Mock
}

func (m *MockUserAPI) GetUser(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserAPI) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
