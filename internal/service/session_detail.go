package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"yogastudio/web/internal/models"
	"yogastudio/web/internal/nav"
)

const MessageSessionDeleted = "Session deleted !"

// SessionDetail shows one session with its teacher and lets the current
// user join or leave it. Admins may delete it.
type SessionDetail struct {
	sessions SessionAPI
	teachers TeacherAPI
	state    SessionState
	nav      nav.Navigator
	notify   nav.Notifier
	log      zerolog.Logger

	SessionID     string
	UserID        string
	IsAdmin       bool
	IsParticipate bool
	Session       *models.Session
	Teacher       *models.Teacher
}

func NewSessionDetail(sessions SessionAPI, teachers TeacherAPI, state SessionState, navigator nav.Navigator, notifier nav.Notifier, log zerolog.Logger) *SessionDetail {
	return &SessionDetail{
		sessions: sessions,
		teachers: teachers,
		state:    state,
		nav:      navigator,
		notify:   notifier,
		log:      log,
	}
}

func (p *SessionDetail) Init(ctx context.Context, sessionID string) error {
	p.SessionID = sessionID
	if identity, ok := p.state.Identity(); ok {
		p.UserID = strconv.FormatInt(identity.ID, 10)
		p.IsAdmin = identity.Admin
	}
	return p.fetch(ctx)
}

func (p *SessionDetail) fetch(ctx context.Context) error {
	session, err := p.sessions.GetSession(ctx, p.SessionID)
	if err != nil {
		return fmt.Errorf("load session %s: %w", p.SessionID, err)
	}
	p.Session = &session
	p.IsParticipate = false
	if userID, err := strconv.ParseInt(p.UserID, 10, 64); err == nil {
		p.IsParticipate = session.HasParticipant(userID)
	}

	teacher, err := p.teachers.GetTeacher(ctx, strconv.FormatInt(session.TeacherID, 10))
	if err != nil {
		return fmt.Errorf("load teacher %d: %w", session.TeacherID, err)
	}
	p.Teacher = &teacher
	return nil
}

func (p *SessionDetail) Participate(ctx context.Context) error {
	if err := p.sessions.Participate(ctx, p.SessionID, p.UserID); err != nil {
		return fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	return p.fetch(ctx)
}

func (p *SessionDetail) UnParticipate(ctx context.Context) error {
	if err := p.sessions.UnParticipate(ctx, p.SessionID, p.UserID); err != nil {
		return fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	return p.fetch(ctx)
}

// Delete removes the session. Non-admins are sent back to the list without
// any call being made.
func (p *SessionDetail) Delete(ctx context.Context) error {
	if !p.IsAdmin {
		p.nav.Navigate(nav.Sessions)
		return nil
	}
	if err := p.sessions.DeleteSession(ctx, p.SessionID); err != nil {
		p.log.Error().Err(err).Str("session_id", p.SessionID).Msg("delete session failed")
		return fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	p.log.Info().Str("session_id", p.SessionID).Msg("session deleted")
	p.notify.Notify(MessageSessionDeleted)
	p.nav.Navigate(nav.Sessions)
	return nil
}
