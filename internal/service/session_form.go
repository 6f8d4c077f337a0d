package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/rs/zerolog"

	"yogastudio/web/internal/models"
	"yogastudio/web/internal/nav"
)

const (
	MessageSessionCreated = "Session created !"
	MessageSessionUpdated = "Session updated !"

	// FormDateLayout is the date format of the session form's date field.
	FormDateLayout = time.DateOnly

	maxDescriptionLength = 2000
)

// SessionFields are the editable values of a session record.
type SessionFields struct {
	Name        string `form:"name" json:"name"`
	Date        string `form:"date" json:"date"`
	TeacherID   int64  `form:"teacher_id" json:"teacher_id"`
	Description string `form:"description" json:"description"`
}

func (f SessionFields) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required),
		validation.Field(&f.Date, validation.Required, validation.Date(FormDateLayout)),
		validation.Field(&f.TeacherID, validation.Required),
		validation.Field(&f.Description, validation.Required, validation.RuneLength(0, maxDescriptionLength)),
	)
}

func (f SessionFields) session() (models.Session, error) {
	date, err := time.Parse(FormDateLayout, f.Date)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{
		Name:        f.Name,
		Date:        models.NewTimestamp(date),
		TeacherID:   f.TeacherID,
		Description: f.Description,
	}, nil
}

func fieldsFrom(s models.Session) SessionFields {
	fields := SessionFields{
		Name:        s.Name,
		TeacherID:   s.TeacherID,
		Description: s.Description,
	}
	if !s.Date.IsZero() {
		fields.Date = s.Date.UTC().Format(FormDateLayout)
	}
	return fields
}

// SessionForm serves both creation and editing of a session. The mode is
// picked once by Init from the presence of a record id and never changes.
type SessionForm struct {
	sessions SessionAPI
	teachers TeacherAPI
	state    SessionState
	nav      nav.Navigator
	notify   nav.Notifier
	log      zerolog.Logger

	initialized bool
	onUpdate    bool
	id          string

	Fields   SessionFields
	Teachers []models.Teacher
}

func NewSessionForm(sessions SessionAPI, teachers TeacherAPI, state SessionState, navigator nav.Navigator, notifier nav.Notifier, log zerolog.Logger) *SessionForm {
	return &SessionForm{
		sessions: sessions,
		teachers: teachers,
		state:    state,
		nav:      navigator,
		notify:   notifier,
		log:      log,
	}
}

// Init authorizes the caller and, in update mode, loads the record. A
// non-admin identity is sent back to the session list before anything is
// fetched; Init then reports false.
func (p *SessionForm) Init(ctx context.Context, recordID string) (bool, error) {
	identity, ok := p.state.Identity()
	if !ok || !identity.Admin {
		p.nav.Navigate(nav.Sessions)
		return false, nil
	}

	p.initialized = true
	p.onUpdate = recordID != ""
	p.id = recordID

	teachers, err := p.teachers.ListTeachers(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("teacher list unavailable")
	}
	p.Teachers = teachers

	if !p.onUpdate {
		return true, nil
	}

	session, err := p.sessions.GetSession(ctx, recordID)
	if err != nil {
		return true, fmt.Errorf("load session %s: %w", recordID, err)
	}
	p.Fields = fieldsFrom(session)
	return true, nil
}

func (p *SessionForm) OnUpdate() bool {
	return p.onUpdate
}

// RecordID is the id held in update mode.
func (p *SessionForm) RecordID() string {
	return p.id
}

// Fill replaces the current form values.
func (p *SessionForm) Fill(fields SessionFields) {
	p.Fields = fields
}

// Submit dispatches create or update with the current values, then leaves
// for the session list with a confirmation.
func (p *SessionForm) Submit(ctx context.Context) error {
	if !p.initialized {
		return errFormNotReady
	}
	if err := p.Fields.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	session, err := p.Fields.session()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	if p.onUpdate {
		if _, err := p.sessions.UpdateSession(ctx, p.id, session); err != nil {
			p.log.Error().Err(err).Str("session_id", p.id).Msg("update session failed")
			return fmt.Errorf("%w: %w", ErrSubmit, err)
		}
		p.exit(MessageSessionUpdated)
		return nil
	}

	created, err := p.sessions.CreateSession(ctx, session)
	if err != nil {
		p.log.Error().Err(err).Msg("create session failed")
		return fmt.Errorf("%w: %w", ErrSubmit, err)
	}
	p.log.Info().Str("session_id", strconv.FormatInt(created.ID, 10)).Msg("session created")
	p.exit(MessageSessionCreated)
	return nil
}

var errFormNotReady = errors.New("session form submitted before init")

func (p *SessionForm) exit(message string) {
	p.notify.Notify(message)
	p.nav.Navigate(nav.Sessions)
}
