// Package api implements the VolunteerHub REST API client: request plumbing
// over httpx, response normalization, and the transport/business error split.
package api

import (
	"context"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
)

// Client is the remote API surface used by the session and events layers.
//
// Operations returning models.UserPayload preserve field presence so callers
// can merge partial responses without clobbering known fields. Errors are
// either *TransportError or *BusinessError.
type Client interface {
	// CurrentUser exchanges a credential for the identity it belongs to.
	CurrentUser(ctx context.Context, token string) (models.UserPayload, error)

	// Register creates an account pending email verification.
	Register(ctx context.Context, email, password string, role models.Role) error

	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string, role models.Role) (string, error)

	// UpdateProfile submits partial profile fields and returns the server's
	// view of the changed fields.
	UpdateProfile(ctx context.Context, token string, fields map[string]any) (models.UserPayload, error)

	// UpdateAddress replaces the user's postal address.
	UpdateAddress(ctx context.Context, token string, addr models.Address) error

	// VerifyOTP confirms an email verification code. The returned token is
	// empty when the server verified the account without issuing one.
	VerifyOTP(ctx context.Context, email, code string) (string, error)

	// ResendOTP asks the server to send a fresh verification code.
	ResendOTP(ctx context.Context, email string) error

	// ListEvents returns the caller's visible volunteer events.
	ListEvents(ctx context.Context, token string) ([]models.Event, error)

	// CreateEvent publishes a volunteer opportunity.
	CreateEvent(ctx context.Context, token string, ev models.Event) (*models.Event, error)

	// ListRegistrations returns the registrations for an owned event.
	ListRegistrations(ctx context.Context, token, eventID string) ([]models.Registration, error)

	// DecideRegistration approves or rejects a registration.
	DecideRegistration(ctx context.Context, token, eventID, registrationID string, approve bool) error
}
