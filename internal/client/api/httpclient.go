package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/meetavet/meetavet/internal/client/credential"
	"github.com/meetavet/meetavet/internal/client/models"
	"github.com/meetavet/meetavet/internal/common"
	"github.com/meetavet/meetavet/internal/logging"
)

const (
	// DefaultTimeout bounds every request; a request exceeding it is
	// reported as ErrUnavailable.
	DefaultTimeout = 5 * time.Second

	maxBodySize = 1 << 20
)

// HTTPClient implements Client over HTTP/JSON against a fixed base endpoint.
//
// The stored credential is re-read and re-validated on every call, right
// before it is attached; a malformed or expired token is cleared from the
// store and the call fails locally without touching the network.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	store   credential.Store
	log     logging.Logger

	// now is a test seam for the expiry check clock.
	now func() time.Time
}

// NewHTTPClient builds an HTTPClient against baseURL. A non-positive timeout
// falls back to DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, store credential.Store, log logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
		now:     time.Now,
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// bearer resolves the credential to attach. Empty store means an anonymous
// request. An invalid or expired credential is deleted (idempotently) and
// the corresponding sentinel error is returned; nothing is sent.
func (c *HTTPClient) bearer(ctx context.Context) (string, error) {
	token, err := c.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("credential read error: %w", err)
	}
	if token == "" {
		return "", nil
	}
	if err := credential.Validate(token, c.now()); err != nil {
		if clearErr := c.store.Clear(ctx); clearErr != nil {
			c.log.Error(ctx, "failed to clear credential", "error", clearErr)
		}
		c.log.Warn(ctx, "stored credential rejected", "reason", err)
		return "", err
	}
	return token, nil
}

// do performs one JSON request. Statuses in [200,500) are non-exceptional:
// the status and raw body are returned for the caller to interpret. Only
// transport failures (ErrUnavailable) and statuses >= 500 (ErrServer) are
// errors here.
func (c *HTTPClient) do(ctx context.Context, method, path string, in any) (int, []byte, error) {
	token, err := c.bearer(ctx)
	if err != nil {
		return 0, nil, err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))

	if resp.StatusCode >= http.StatusInternalServerError {
		c.log.Error(ctx, "server failure", "method", method, "path", path, "status", resp.StatusCode)
		return resp.StatusCode, raw, fmt.Errorf("%w: status=%d", ErrServer, resp.StatusCode)
	}

	return resp.StatusCode, raw, nil
}

// errorPayload is the conventional error body shape of the backend.
type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// apiError turns a 4xx response into a displayable ErrServer, preferring the
// server-provided message and falling back to a generic one.
func apiError(status int, raw []byte) error {
	var p errorPayload
	_ = json.Unmarshal(raw, &p)
	msg := p.Message
	if msg == "" {
		msg = p.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return fmt.Errorf("%w: %s", ErrServer, msg)
}

// getJSON runs a GET and decodes a 2xx body into out.
func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	status, raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return apiError(status, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return nil
}

// sendJSON runs a mutating request and decodes a 2xx body into out (out may
// be nil).
func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, in, out any) error {
	status, raw, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return apiError(status, raw)
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return nil
}

// tokenResponse covers both token field spellings the backend has used.
type tokenResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

func (r tokenResponse) value() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	var resp tokenResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/login", creds, &resp); err != nil {
		return "", err
	}
	return resp.value(), nil
}

func (c *HTTPClient) AdminLogin(ctx context.Context, creds models.Credentials) (string, error) {
	var resp tokenResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/admin-login", creds, &resp); err != nil {
		return "", err
	}
	return resp.value(), nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/register", req, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.getJSON(ctx, "/api/profile", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Summary(ctx context.Context) (*models.Summary, error) {
	var s models.Summary
	if err := c.getJSON(ctx, "/api/summary", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/profile", upd, nil)
}

func (c *HTTPClient) AddAnimal(ctx context.Context, req models.AnimalRequest) (*models.Animal, error) {
	var a models.Animal
	if err := c.sendJSON(ctx, http.MethodPost, "/api/add_animal", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) CreateAppointment(ctx context.Context, req models.AppointmentRequest) (*models.Appointment, error) {
	var a models.Appointment
	if err := c.sendJSON(ctx, http.MethodPost, "/api/appointments", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *HTTPClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var s models.AdminStats
	if err := c.getJSON(ctx, "/api/admin/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) AdminFarmers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "/api/admin/farmers", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) AdminVets(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "/api/admin/surgeons", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) AdminTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.getJSON(ctx, "/api/admin/transactions", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *HTTPClient) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/admin/users/"+id, upd, nil)
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/admin/users/"+id, nil, nil)
}

func (c *HTTPClient) InitiatePayment(ctx context.Context, req models.PaymentRequest) (string, error) {
	var resp struct {
		CheckoutRequestID string `json:"checkout_request_id"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/initiate-stk-push", req, &resp); err != nil {
		return "", err
	}
	return resp.CheckoutRequestID, nil
}

func (c *HTTPClient) PaymentStatus(ctx context.Context, checkoutID string) (*models.PaymentStatus, error) {
	var s models.PaymentStatus
	if err := c.getJSON(ctx, "/api/payment-status/"+checkoutID, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
