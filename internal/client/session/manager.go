package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/api"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/common"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/logging"
)

// profileUpdateTimeout bounds the profile-update round trip; expiry surfaces
// as a transport failure.
const profileUpdateTimeout = 30 * time.Second

// Manager is the sole writer of the session Store. Mutating operations are
// serialized by a mutex so two in-flight calls cannot interleave partial
// state updates.
type Manager struct {
	store *Store
	api   api.Client
	log   logging.Logger

	mu sync.Mutex
}

func NewManager(store *Store, client api.Client, log logging.Logger) *Manager {
	return &Manager{store: store, api: client, log: log}
}

// Bootstrap reconciles the stored credential with the server at startup.
//
// No stored credential leaves the session anonymous. A stored credential is
// exchanged for a fresh identity; any failure, including retry exhaustion,
// silently discards the credential and downgrades to anonymous: an expired
// or rejected stored token is expected steady-state, not an error. Loading
// is false on every exit path.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.setLoading(true)
	defer m.store.setLoading(false)

	token, err := m.store.loadToken(ctx)
	if err != nil {
		m.log.Warn(ctx, "credential slot unreadable, starting anonymous", "error", err)
		return
	}
	if token == "" {
		return
	}

	if tokenExpired(token) {
		m.log.Info(ctx, "stored token already expired, discarding")
		m.discard(ctx)
		return
	}

	if err := m.store.setToken(ctx, token); err != nil {
		m.log.Warn(ctx, "credential slot unwritable, starting anonymous", "error", err)
		return
	}
	if err := m.confirmIdentity(ctx, token); err != nil {
		m.log.Info(ctx, "stored token rejected, discarding", "error", err)
		m.discard(ctx)
	}
}

// Login exchanges email/password/role for a credential, persists it, and
// confirms it with an identity fetch. Both calls must succeed: when the
// identity fetch fails, the just-persisted credential is rolled back and the
// session stays unauthenticated.
func (m *Manager) Login(ctx context.Context, email, password string, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.setLoading(true)
	defer m.store.setLoading(false)

	token, err := m.api.Login(ctx, email, password, role)
	if err != nil {
		return err
	}
	return m.adoptToken(ctx, token)
}

// Register creates an account pending email verification. Session state is
// untouched on success; the caller proceeds to the OTP step.
func (m *Manager) Register(ctx context.Context, email, password string, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.setLoading(true)
	defer m.store.setLoading(false)

	return m.api.Register(ctx, email, password, role)
}

// Logout clears the credential slot and resets the session. No network call
// is involved, so it cannot fail for remote reasons.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.reset(ctx)
}

// VerifyOTP confirms a verification code. When the server issues a credential
// with the confirmation, the session is logged in as in Login and true is
// returned; otherwise state is unchanged and false is returned.
func (m *Manager) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.setLoading(true)
	defer m.store.setLoading(false)

	token, err := m.api.VerifyOTP(ctx, email, code)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}
	if err := m.adoptToken(ctx, token); err != nil {
		return false, err
	}
	return true, nil
}

// ResendOTP asks for a fresh verification code. Side-effect only.
func (m *Manager) ResendOTP(ctx context.Context, email string) error {
	return m.api.ResendOTP(ctx, email)
}

// UpdateProfile submits partial profile fields and merges the response into
// the cached record: fields absent from the response keep their prior
// values. Requires an authenticated session.
func (m *Manager) UpdateProfile(ctx context.Context, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.store.State()
	if st.Token == "" {
		return common.ErrUnauthenticated
	}
	m.store.setLoading(true)
	defer m.store.setLoading(false)

	ctx, cancel := context.WithTimeout(ctx, profileUpdateTimeout)
	defer cancel()

	payload, err := m.api.UpdateProfile(ctx, st.Token, fields)
	if err != nil {
		return err
	}

	user := st.User.Clone()
	if user == nil {
		user = &models.UserRecord{}
	}
	if err := payload.Apply(user); err != nil {
		return err
	}
	m.store.setUser(user)
	return nil
}

// UpdateAddress replaces the user's postal address. Requires an
// authenticated session.
func (m *Manager) UpdateAddress(ctx context.Context, addr models.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.store.State()
	if st.Token == "" {
		return common.ErrUnauthenticated
	}
	m.store.setLoading(true)
	defer m.store.setLoading(false)

	if err := m.api.UpdateAddress(ctx, st.Token, addr); err != nil {
		return err
	}

	user := st.User.Clone()
	if user == nil {
		user = &models.UserRecord{}
	}
	a := addr
	user.Address = &a
	m.store.setUser(user)
	return nil
}

// adoptToken persists a fresh credential and confirms it with an identity
// fetch, rolling the credential back if confirmation fails.
func (m *Manager) adoptToken(ctx context.Context, token string) error {
	if err := m.store.setToken(ctx, token); err != nil {
		return err
	}
	if err := m.confirmIdentity(ctx, token); err != nil {
		m.discard(ctx)
		return err
	}
	return nil
}

func (m *Manager) confirmIdentity(ctx context.Context, token string) error {
	payload, err := m.api.CurrentUser(ctx, token)
	if err != nil {
		return err
	}
	user, err := payload.User()
	if err != nil {
		return err
	}
	m.store.setUser(user)
	return nil
}

func (m *Manager) discard(ctx context.Context) {
	if err := m.store.reset(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear credential slot", "error", err)
	}
}

// tokenExpired inspects the credential's exp claim without verifying the
// signature; the server remains the authority. Opaque (non-JWT) tokens and
// tokens without exp pass through to the identity fetch.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
