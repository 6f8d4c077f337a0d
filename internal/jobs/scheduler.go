package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"yogastudio/web/internal/models"
	"yogastudio/web/internal/security"
)

// SessionHolder is the part of the authentication state the expiry watch
// reads and clears.
type SessionHolder interface {
	Identity() (models.SessionIdentity, bool)
	LogOutToken(token string) bool
}

type Scheduler struct {
	cron  *cron.Cron
	state SessionHolder
	log   zerolog.Logger
	now   func() time.Time
}

func NewScheduler(state SessionHolder, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		state: state,
		log:   log,
		now:   time.Now,
	}
}

func (s *Scheduler) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.ExpireSession() }); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the schedule; the returned context is done once a running
// check has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// ExpireSession logs the current identity out once its backend token has
// expired. It reports whether it did so.
func (s *Scheduler) ExpireSession() bool {
	identity, ok := s.state.Identity()
	if !ok || identity.Token == "" {
		return false
	}
	if !security.TokenExpired(identity.Token, s.now()) {
		return false
	}

	if !s.state.LogOutToken(identity.Token) {
		return false
	}
	s.log.Info().
		Int64("user_id", identity.ID).
		Msg("session token expired, logged out")
	return true
}
