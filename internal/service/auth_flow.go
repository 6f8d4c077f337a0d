package service

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/rs/zerolog"

	"yogastudio/web/internal/models"
	"yogastudio/web/internal/nav"
)

type LoginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Password, validation.Required),
	)
}

type RegisterForm struct {
	Email     string `form:"email" json:"email"`
	FirstName string `form:"firstName" json:"firstName"`
	LastName  string `form:"lastName" json:"lastName"`
	Password  string `form:"password" json:"password"`
}

func (f RegisterForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.FirstName, validation.Required),
		validation.Field(&f.LastName, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

// AuthFlow turns submitted credentials into a logged-in state. Any failure
// from the backend collapses into ErrSubmit and leaves the state untouched.
type AuthFlow struct {
	api   AuthAPI
	state SessionState
	log   zerolog.Logger
}

func NewAuthFlow(api AuthAPI, state SessionState, log zerolog.Logger) *AuthFlow {
	return &AuthFlow{
		api:   api,
		state: state,
		log:   log,
	}
}

func (f *AuthFlow) SubmitLogin(ctx context.Context, form LoginForm, to nav.Navigator) error {
	if err := form.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	identity, err := f.api.Login(ctx, models.LoginRequest{
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		f.log.Debug().Err(err).Msg("login failed")
		return ErrSubmit
	}

	f.state.LogIn(identity)
	f.log.Info().Int64("user_id", identity.ID).Bool("admin", identity.Admin).Msg("user logged in")
	to.Navigate(nav.Sessions)
	return nil
}

// SubmitRegister creates the account and sends the user to the login page;
// registering never logs anyone in.
func (f *AuthFlow) SubmitRegister(ctx context.Context, form RegisterForm, to nav.Navigator) error {
	if err := form.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	err := f.api.Register(ctx, models.RegisterRequest{
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Password:  form.Password,
	})
	if err != nil {
		f.log.Debug().Err(err).Msg("register failed")
		return ErrSubmit
	}

	to.Navigate(nav.Login)
	return nil
}
