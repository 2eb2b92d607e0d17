package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Yokesh-4040/volunteer-hub-client/internal/client/models"
	"github.com/Yokesh-4040/volunteer-hub-client/internal/httpx"
)

// HTTPClient talks JSON to the VolunteerHub API through a retrying
// httpx.Client.
type HTTPClient struct {
	baseURL string
	fetch   *httpx.Client
}

func NewHTTPClient(baseURL string, fetch *httpx.Client) *HTTPClient {
	return &HTTPClient{baseURL: strings.TrimRight(baseURL, "/"), fetch: fetch}
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (models.UserPayload, error) {
	resp, err := c.call(ctx, http.MethodGet, "/api/user/me", token, nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(resp)
}

func (c *HTTPClient) Register(ctx context.Context, email, password string, role models.Role) error {
	body := map[string]any{"email": email, "password": password, "role": role}
	resp, err := c.call(ctx, http.MethodPost, "/api/auth/register", "", body)
	if err != nil {
		return err
	}
	return discard(resp)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string, role models.Role) (string, error) {
	body := map[string]any{"email": email, "password": password, "role": role}
	resp, err := c.call(ctx, http.MethodPost, "/api/auth/login", "", body)
	if err != nil {
		return "", err
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &BusinessError{Status: resp.StatusCode, Message: "login response carried no token"}
	}
	return out.Token, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, fields map[string]any) (models.UserPayload, error) {
	resp, err := c.call(ctx, http.MethodPost, "/api/user/me", token, fields)
	if err != nil {
		return nil, err
	}
	return decodeUser(resp)
}

func (c *HTTPClient) UpdateAddress(ctx context.Context, token string, addr models.Address) error {
	resp, err := c.call(ctx, http.MethodPost, "/api/user/address/update", token, addr)
	if err != nil {
		return err
	}
	return discard(resp)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string) (string, error) {
	body := map[string]any{"email": email, "otp": code}
	resp, err := c.call(ctx, http.MethodPost, "/api/auth/otp/verify", "", body)
	if err != nil {
		return "", err
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *HTTPClient) ResendOTP(ctx context.Context, email string) error {
	resp, err := c.call(ctx, http.MethodPost, "/api/auth/otp/resend", "", map[string]any{"email": email})
	if err != nil {
		return err
	}
	return discard(resp)
}

func (c *HTTPClient) ListEvents(ctx context.Context, token string) ([]models.Event, error) {
	resp, err := c.call(ctx, http.MethodGet, "/api/events", token, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Events []models.Event `json:"events"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, token string, ev models.Event) (*models.Event, error) {
	resp, err := c.call(ctx, http.MethodPost, "/api/events", token, ev)
	if err != nil {
		return nil, err
	}
	var out struct {
		Event *models.Event `json:"event"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	if out.Event == nil {
		return nil, &BusinessError{Status: resp.StatusCode, Message: "create event response carried no event"}
	}
	return out.Event, nil
}

func (c *HTTPClient) ListRegistrations(ctx context.Context, token, eventID string) ([]models.Registration, error) {
	path := fmt.Sprintf("/api/events/%s/registrations", url.PathEscape(eventID))
	resp, err := c.call(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Registrations []models.Registration `json:"registrations"`
	}
	if err := decodeInto(resp, &out); err != nil {
		return nil, err
	}
	return out.Registrations, nil
}

func (c *HTTPClient) DecideRegistration(ctx context.Context, token, eventID, registrationID string, approve bool) error {
	path := fmt.Sprintf("/api/events/%s/registrations/%s/decision",
		url.PathEscape(eventID), url.PathEscape(registrationID))
	status := models.RegistrationRejected
	if approve {
		status = models.RegistrationApproved
	}
	resp, err := c.call(ctx, http.MethodPost, path, token, map[string]any{"status": status})
	if err != nil {
		return err
	}
	return discard(resp)
}

// call performs one API exchange. A transport-level failure comes back as
// *TransportError; a completed non-2xx response as *BusinessError with the
// server's message when one is present.
func (c *HTTPClient) call(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	req := httpx.Request{Method: method, URL: c.baseURL + path}

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		req.Body = b
	}
	if token != "" {
		req.Header = http.Header{}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.fetch.Do(ctx, req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &BusinessError{Status: resp.StatusCode, Message: failureMessage(resp.Body)}
	}
	return resp, nil
}

// failureMessage extracts the user-facing message from a non-2xx body,
// falling back to a generic one.
func failureMessage(r io.Reader) string {
	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&out); err != nil || out.Message == "" {
		return genericFailureMessage
	}
	return out.Message
}

// decodeUser normalizes the two documented user-response shapes: a nested
// "user" object is preferred, a top-level object is the fallback. Anything
// else is rejected as a business error.
func decodeUser(resp *http.Response) (models.UserPayload, error) {
	defer resp.Body.Close()

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &BusinessError{Status: resp.StatusCode, Message: "malformed user payload"}
	}

	if nested, ok := raw["user"]; ok {
		obj, ok := nested.(map[string]any)
		if !ok {
			return nil, &BusinessError{Status: resp.StatusCode, Message: "malformed user payload"}
		}
		return models.UserPayload(obj), nil
	}
	return models.UserPayload(raw), nil
}

func decodeInto(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &BusinessError{Status: resp.StatusCode, Message: "malformed response payload"}
	}
	return nil
}

func discard(resp *http.Response) error {
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
