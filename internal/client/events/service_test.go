package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/api"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/session"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/common"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/logging"
)

type staticState struct {
	st session.State
}

func (s staticState) State() session.State { return s.st }

// fakeAPI implements the event slice of api.Client; auth operations are
// unused here.
type fakeAPI struct {
	api.Client

	ListRet []models.Event
	ListErr error

	CreateErr error

	RegsRet []models.Registration

	DecideErr error

	LastToken   string
	LastEventID string
	LastRegID   string
	LastApprove bool
}

func (f *fakeAPI) ListEvents(ctx context.Context, token string) ([]models.Event, error) {
	f.LastToken = token
	return f.ListRet, f.ListErr
}

func (f *fakeAPI) CreateEvent(ctx context.Context, token string, ev models.Event) (*models.Event, error) {
	f.LastToken = token
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	ev.ID = "e-new"
	return &ev, nil
}

func (f *fakeAPI) ListRegistrations(ctx context.Context, token, eventID string) ([]models.Registration, error) {
	f.LastToken = token
	f.LastEventID = eventID
	return f.RegsRet, nil
}

func (f *fakeAPI) DecideRegistration(ctx context.Context, token, eventID, registrationID string, approve bool) error {
	f.LastToken = token
	f.LastEventID = eventID
	f.LastRegID = registrationID
	f.LastApprove = approve
	return f.DecideErr
}

func newService(f *fakeAPI, st session.State) *Service {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewService(f, staticState{st}, log)
}

func authedState() session.State {
	return session.State{Token: "tok-1", Authenticated: true, User: &models.UserRecord{Role: models.RoleNGO}}
}

func TestList_RequiresAuthentication(t *testing.T) {
	svc := newService(&fakeAPI{}, session.State{})
	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestList_PassesBearer(t *testing.T) {
	f := &fakeAPI{ListRet: []models.Event{{ID: "e-1", Title: "Beach Cleanup"}}}
	svc := newService(f, authedState())

	evs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, evs, 1)
	require.Equal(t, "tok-1", f.LastToken)
}

func TestCreate_ReturnsServerAssignedEvent(t *testing.T) {
	f := &fakeAPI{}
	svc := newService(f, authedState())

	ev, err := svc.Create(context.Background(), models.Event{Title: "Food Drive"})
	require.NoError(t, err)
	require.Equal(t, "e-new", ev.ID)
	require.Equal(t, "Food Drive", ev.Title)
}

func TestCreate_ErrorPropagates(t *testing.T) {
	f := &fakeAPI{CreateErr: errors.New("boom")}
	svc := newService(f, authedState())

	_, err := svc.Create(context.Background(), models.Event{Title: "x"})
	require.Error(t, err)
}

func TestApproveReject_SendDecision(t *testing.T) {
	f := &fakeAPI{}
	svc := newService(f, authedState())

	require.NoError(t, svc.Approve(context.Background(), "e-1", "r-1"))
	require.True(t, f.LastApprove)
	require.Equal(t, "e-1", f.LastEventID)
	require.Equal(t, "r-1", f.LastRegID)

	require.NoError(t, svc.Reject(context.Background(), "e-1", "r-2"))
	require.False(t, f.LastApprove)
	require.Equal(t, "r-2", f.LastRegID)
}

func TestRegistrations_RequiresAuthentication(t *testing.T) {
	svc := newService(&fakeAPI{}, session.State{})
	_, err := svc.Registrations(context.Background(), "e-1")
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}
