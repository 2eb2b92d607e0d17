package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/api"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/credentials"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/httpx"

	_ "modernc.org/sqlite"
)

// End-to-end: real HTTP client against a mock API, real sqlite slot.

func newE2EManager(t *testing.T, srvURL, dsn string, delay time.Duration) (*Manager, *Store) {
	t.Helper()
	db, err := credentials.OpenDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slot := credentials.NewSQLiteRepository(db)
	fetch := httpx.NewClient(httpx.WithAttempts(3), httpx.WithDelay(delay))
	store := NewStore(slot)
	return NewManager(store, api.NewHTTPClient(srvURL, fetch), testLogger()), store
}

func TestEndToEnd_LoginThenIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "org@example.com", body["email"])
			require.Equal(t, "secret123", body["password"])
			require.Equal(t, "ngo", body["role"])
			_, _ = w.Write([]byte(`{"token":"abc"}`))
		case "/api/user/me":
			require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"first":"Acme Org","role":"ngo"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	m, store := newE2EManager(t, srv.URL, "file:e2elogin?mode=memory&cache=shared", time.Millisecond)

	err := m.Login(context.Background(), "org@example.com", "secret123", models.RoleNGO)
	require.NoError(t, err)

	st := store.State()
	require.True(t, st.Authenticated)
	require.Equal(t, "Acme Org", st.User.First)
}

func TestEndToEnd_BootstrapSurvivesGatewayTimeouts(t *testing.T) {
	var meCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/user/me", r.URL.Path)
		if atomic.AddInt32(&meCalls, 1) <= 2 {
			w.WriteHeader(http.StatusGatewayTimeout)
			return
		}
		_, _ = w.Write([]byte(`{"user":{"first":"Acme Org","role":"ngo"}}`))
	}))
	defer srv.Close()

	delay := 25 * time.Millisecond
	m, store := newE2EManager(t, srv.URL, "file:e2eboot?mode=memory&cache=shared", delay)

	// seed a stored credential
	require.NoError(t, store.slot.Store(context.Background(), "tok-1"))

	start := time.Now()
	m.Bootstrap(context.Background())
	elapsed := time.Since(start)

	st := store.State()
	require.True(t, st.Authenticated)
	require.False(t, st.Loading)
	require.Equal(t, "Acme Org", st.User.First)
	require.Equal(t, int32(3), atomic.LoadInt32(&meCalls))
	// two retry pauses were observed
	require.GreaterOrEqual(t, elapsed, 2*delay)
}
