package service

import (
	"context"
	"fmt"

	"yogastudio/web/internal/models"
)

type SessionList struct {
	sessions SessionAPI
	state    SessionState

	Identity models.SessionIdentity
	Sessions []models.Session
}

func NewSessionList(sessions SessionAPI, state SessionState) *SessionList {
	return &SessionList{
		sessions: sessions,
		state:    state,
	}
}

func (p *SessionList) Load(ctx context.Context) error {
	p.Identity, _ = p.state.Identity()

	sessions, err := p.sessions.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	p.Sessions = sessions
	return nil
}
