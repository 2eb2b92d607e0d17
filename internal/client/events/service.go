// Package events exposes the volunteer-event operations available to an
// authenticated organization: listing and publishing events, and acting on
// volunteer registrations. It reads session state but never writes it.
package events

import (
	"context"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/api"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/session"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/common"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/logging"
)

// StateReader is the read-only slice of the session store this service
// needs. *session.Store satisfies it.
type StateReader interface {
	State() session.State
}

type Service struct {
	api   api.Client
	store StateReader
	log   logging.Logger
}

func NewService(client api.Client, store StateReader, log logging.Logger) *Service {
	return &Service{api: client, store: store, log: log}
}

// token returns the session credential or ErrUnauthenticated.
func (s *Service) token() (string, error) {
	st := s.store.State()
	if st.Token == "" {
		return "", common.ErrUnauthenticated
	}
	return st.Token, nil
}

func (s *Service) List(ctx context.Context) ([]models.Event, error) {
	tok, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.api.ListEvents(ctx, tok)
}

func (s *Service) Create(ctx context.Context, ev models.Event) (*models.Event, error) {
	tok, err := s.token()
	if err != nil {
		return nil, err
	}
	created, err := s.api.CreateEvent(ctx, tok, ev)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "event created", "id", created.ID, "title", created.Title)
	return created, nil
}

func (s *Service) Registrations(ctx context.Context, eventID string) ([]models.Registration, error) {
	tok, err := s.token()
	if err != nil {
		return nil, err
	}
	return s.api.ListRegistrations(ctx, tok, eventID)
}

func (s *Service) Approve(ctx context.Context, eventID, registrationID string) error {
	return s.decide(ctx, eventID, registrationID, true)
}

func (s *Service) Reject(ctx context.Context, eventID, registrationID string) error {
	return s.decide(ctx, eventID, registrationID, false)
}

func (s *Service) decide(ctx context.Context, eventID, registrationID string, approve bool) error {
	tok, err := s.token()
	if err != nil {
		return err
	}
	if err := s.api.DecideRegistration(ctx, tok, eventID, registrationID, approve); err != nil {
		return err
	}
	s.log.Info(ctx, "registration decided", "event", eventID, "registration", registrationID, "approved", approve)
	return nil
}
