package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yogastudio/web/internal/authstate"
	"yogastudio/web/internal/models"
	"yogastudio/web/internal/service"
)

func TestSessionListLoad(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockSessionAPI)
	state := authstate.New()
	state.LogIn(models.SessionIdentity{ID: 1, Admin: true})
	sessions.On("ListSessions", ctx).Return([]models.Session{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil)

	list := service.NewSessionList(sessions, state)
	require.NoError(t, list.Load(ctx))

	assert.Len(t, list.Sessions, 2)
	assert.True(t, list.Identity.Admin)
}

func TestSessionListFailure(t *testing.T) {
	ctx := context.Background()
	sessions := new(MockSessionAPI)
	sessions.On("ListSessions", ctx).Return([]models.Session(nil), errors.New("down"))

	list := service.NewSessionList(sessions, authstate.New())

	assert.Error(t, list.Load(ctx))
	assert.Nil(t, list.Sessions)
}
