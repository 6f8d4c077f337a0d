package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yogastudio/web/internal/authstate"
	"yogastudio/web/internal/models"
	"yogastudio/web/internal/nav"
	"yogastudio/web/internal/service"
)

func TestSubmitLogin(t *testing.T) {
	ctx := context.Background()
	identity := models.SessionIdentity{Token: "jwt", Type: "Bearer", ID: 1, Username: "yoga@studio.com", Admin: true}

	t.Run("success logs in and opens the session list", func(t *testing.T) {
		api := new(MockAuthAPI)
		state := authstate.New()
		rec := &nav.Recorder{}
		api.On("Login", ctx, models.LoginRequest{Email: "yoga@studio.com", Password: "test!1234"}).
			Return(identity, nil).Once()

		err := service.NewAuthFlow(api, state, zerolog.Nop()).
			SubmitLogin(ctx, service.LoginForm{Email: "yoga@studio.com", Password: "test!1234"}, rec)
		require.NoError(t, err)

		got, ok := state.Identity()
		require.True(t, ok)
		assert.Equal(t, identity, got)
		assert.Equal(t, nav.Sessions, rec.Target())
		api.AssertExpectations(t)
	})

	t.Run("failure leaves state untouched", func(t *testing.T) {
		api := new(MockAuthAPI)
		state := authstate.New()
		rec := &nav.Recorder{}
		api.On("Login", ctx, mock.Anything).Return(models.SessionIdentity{}, errors.New("401 Unauthorized"))

		err := service.NewAuthFlow(api, state, zerolog.Nop()).
			SubmitLogin(ctx, service.LoginForm{Email: "bad@studio.com", Password: "nope"}, rec)

		assert.ErrorIs(t, err, service.ErrSubmit)
		assert.False(t, state.IsLogged())
		assert.False(t, rec.Navigated())
	})

	t.Run("invalid form never reaches the backend", func(t *testing.T) {
		api := new(MockAuthAPI)
		state := authstate.New()
		rec := &nav.Recorder{}

		flow := service.NewAuthFlow(api, state, zerolog.Nop())
		for _, form := range []service.LoginForm{
			{},
			{Email: "yoga@studio.com"},
			{Password: "test!1234"},
			{Email: "not-an-email", Password: "test!1234"},
		} {
			err := flow.SubmitLogin(ctx, form, rec)
			assert.ErrorIs(t, err, service.ErrInvalidForm)
		}

		api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
		assert.False(t, state.IsLogged())
		assert.False(t, rec.Navigated())
	})
}

func TestSubmitRegister(t *testing.T) {
	ctx := context.Background()
	form := service.RegisterForm{
		Email:     "jean.dupont@example.com",
		FirstName: "Jean",
		LastName:  "Dupont",
		Password:  "superpass",
	}

	t.Run("success opens login without logging in", func(t *testing.T) {
		api := new(MockAuthAPI)
		state := authstate.New()
		rec := &nav.Recorder{}
		api.On("Register", ctx, models.RegisterRequest{
			Email:     form.Email,
			FirstName: form.FirstName,
			LastName:  form.LastName,
			Password:  form.Password,
		}).Return(nil).Once()

		err := service.NewAuthFlow(api, state, zerolog.Nop()).SubmitRegister(ctx, form, rec)
		require.NoError(t, err)

		assert.Equal(t, nav.Login, rec.Target())
		assert.False(t, state.IsLogged())
		api.AssertExpectations(t)
	})

	t.Run("failure stays on the page", func(t *testing.T) {
		api := new(MockAuthAPI)
		rec := &nav.Recorder{}
		api.On("Register", ctx, mock.Anything).Return(errors.New("400 Bad Request"))

		err := service.NewAuthFlow(api, authstate.New(), zerolog.Nop()).SubmitRegister(ctx, form, rec)

		assert.ErrorIs(t, err, service.ErrSubmit)
		assert.False(t, rec.Navigated())
	})

	t.Run("missing names are rejected", func(t *testing.T) {
		api := new(MockAuthAPI)

		err := service.NewAuthFlow(api, authstate.New(), zerolog.Nop()).
			SubmitRegister(ctx, service.RegisterForm{Email: form.Email, Password: form.Password}, &nav.Recorder{})

		assert.ErrorIs(t, err, service.ErrInvalidForm)
		api.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}
