package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"yogastudio/web/internal/models"
	"yogastudio/web/internal/nav"
)

const MessageAccountDeleted = "Your account has been deleted !"

var ErrNotLogged = errors.New("not logged in")

// Account backs the profile page and the two ways out of a session: logout
// and account deletion.
type Account struct {
	users  UserAPI
	state  SessionState
	nav    nav.Navigator
	notify nav.Notifier
	log    zerolog.Logger

	User *models.User
}

func NewAccount(users UserAPI, state SessionState, navigator nav.Navigator, notifier nav.Notifier, log zerolog.Logger) *Account {
	return &Account{
		users:  users,
		state:  state,
		nav:    navigator,
		notify: notifier,
		log:    log,
	}
}

func (a *Account) Load(ctx context.Context) error {
	identity, ok := a.state.Identity()
	if !ok {
		return ErrNotLogged
	}

	user, err := a.users.GetUser(ctx, strconv.FormatInt(identity.ID, 10))
	if err != nil {
		return fmt.Errorf("load user %d: %w", identity.ID, err)
	}
	a.User = &user
	return nil
}

// Delete removes the account of the current identity, then logs out.
func (a *Account) Delete(ctx context.Context) error {
	identity, ok := a.state.Identity()
	if !ok {
		return ErrNotLogged
	}

	if err := a.users.DeleteUser(ctx, strconv.FormatInt(identity.ID, 10)); err != nil {
		a.log.Error().Err(err).Int64("user_id", identity.ID).Msg("delete account failed")
		return fmt.Errorf("%w: %w", ErrSubmit, err)
	}

	a.log.Info().Int64("user_id", identity.ID).Msg("account deleted")
	a.notify.Notify(MessageAccountDeleted)
	a.state.LogOut()
	a.nav.Navigate(nav.Root)
	return nil
}

func (a *Account) LogOut() {
	if identity, ok := a.state.Identity(); ok {
		a.log.Info().Int64("user_id", identity.ID).Msg("user logged out")
	}
	a.state.LogOut()
	a.nav.Navigate(nav.Root)
}
