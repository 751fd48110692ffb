package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/client/normalize"
	"github.com/dmitrijs2005/spinadmin/internal/common"
	"github.com/dmitrijs2005/spinadmin/internal/logging"
)

const maxResponseBytes = 8 << 20

// authStyle selects how the session token travels for an endpoint family.
type authStyle int

const (
	authNone authStyle = iota
	authToken
	authBearer
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
	maxBody int64
}

type Option func(*HTTPClient)

// WithSession attaches the token source consulted on every authenticated
// call.
func WithSession(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient validates baseURL (an absolute http or https URL such as
// "http://localhost:5000/api") and returns a client for it.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  TokenFunc(func() string { return "" }),
		log:     logging.Discard(),
		maxBody: maxResponseBytes,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// call performs one request and returns the decoded response envelope.
// A body without a "success" field is accepted when the status is 2xx.
func (c *HTTPClient) call(ctx context.Context, method, path string, auth authStyle, body any) (map[string]any, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if auth != authNone {
		token := c.tokens.AccessToken()
		if token == "" {
			return nil, ErrNotLoggedIn
		}
		switch auth {
		case authBearer:
			req.Header.Set("Authorization", "Bearer "+token)
		default:
			req.Header.Set(common.AuthTokenHeaderName, token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, c.mapTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, transportError(err)
	}
	if int64(len(raw)) > c.maxBody {
		c.log.Error(ctx, "response too large", "method", method, "path", path, "limit", c.maxBody)
		return nil, decodeError("%s %s: response too large (over %d bytes)", method, path, c.maxBody)
	}

	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope == nil {
		c.log.Warn(ctx, "non-JSON response", "method", method, "path", path, "status", resp.StatusCode)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, ErrUnauthorized
		}
		return nil, decodeError("%s %s: status %d", method, path, resp.StatusCode)
	}

	success, hasSuccess := envelope["success"].(bool)
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if (hasSuccess && !success) || !ok {
		return nil, rejection(resp.StatusCode, envelope)
	}
	return envelope, nil
}

func rejection(status int, envelope map[string]any) error {
	msg := firstText(envelope, "message", "error")
	if msg == "" {
		msg = fmt.Sprintf("request failed: %s", http.StatusText(status))
	}
	return &RejectedError{Status: status, Message: msg}
}

func firstText(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func (c *HTTPClient) mapTransportError(err error) error {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %w: %w", ErrTransport, ErrUnavailable, err)
	}
	return transportError(err)
}

func (c *HTTPClient) Login(ctx context.Context, role models.Role, email, password string) (string, error) {
	path := "/admin/login"
	if role == models.RoleExecutive {
		path = "/admin/executive/login"
	}

	env, err := c.call(ctx, http.MethodPost, path, authNone, map[string]string{"email": email, "password": password})
	if err != nil {
		return "", err
	}

	token, _ := env["token"].(string)
	if token == "" {
		return "", decodeError("login response carried no token")
	}
	return token, nil
}

func (c *HTTPClient) Signup(ctx context.Context, role models.Role, req models.SignupRequest) error {
	path := "/admin/signup"
	if role == models.RoleExecutive {
		path = "/admin/executive/signup"
		req.Department = "Executive"
	}
	req.Role = role.Title()

	_, err := c.call(ctx, http.MethodPost, path, authNone, req)
	return err
}

func (c *HTTPClient) Me(ctx context.Context) (models.AdminIdentity, error) {
	env, err := c.call(ctx, http.MethodGet, "/admin/me", authToken, nil)
	if err != nil {
		return models.AdminIdentity{}, err
	}
	return normalize.NewBatch("admin").AdminIdentity(normalize.Object(normalize.Object(env, "data"), "admin")), nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	env, err := c.call(ctx, http.MethodGet, "/admin/allusers", authToken, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Users(normalize.Slice(env, "users")), nil
}

func (c *HTTPClient) SetUserBlocked(ctx context.Context, id string, blocked bool) error {
	_, err := c.call(ctx, http.MethodPatch, "/admin/user/block/"+url.PathEscape(id), authToken,
		map[string]bool{"blocked": blocked})
	return err
}

func (c *HTTPClient) ListDeposits(ctx context.Context) ([]models.Deposit, error) {
	env, err := c.call(ctx, http.MethodGet, "/admin/deposithistory", authToken, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Deposits(normalize.Slice(env, "deposits")), nil
}

func (c *HTTPClient) ApproveDeposit(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodPatch, "/deposit/approve-deposit/"+url.PathEscape(id), authToken, nil)
	return err
}

func (c *HTTPClient) RandomUPI(ctx context.Context) (string, error) {
	env, err := c.call(ctx, http.MethodGet, "/upi/random", authNone, nil)
	if err != nil {
		return "", err
	}
	upi := firstText(normalize.Object(normalize.Object(env, "data"), "upi"), "upi")
	if upi == "" {
		return "", &RejectedError{Status: http.StatusOK, Message: "No UPI ID found."}
	}
	return upi, nil
}

func (c *HTTPClient) ListSpins(ctx context.Context) ([]models.Spin, error) {
	env, err := c.call(ctx, http.MethodGet, "/admin/spinhistory", authBearer, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Spins(normalize.Slice(env, "bets")), nil
}

func (c *HTTPClient) ListChats(ctx context.Context) ([]models.ChatThread, error) {
	env, err := c.call(ctx, http.MethodGet, "/admin/chat-history", authToken, nil)
	if err != nil {
		return nil, err
	}
	return normalize.ChatThreads(normalize.Slice(env, "chatHistory")), nil
}

func (c *HTTPClient) ReplyChat(ctx context.Context, threadID, text string) (models.ChatThread, error) {
	env, err := c.call(ctx, http.MethodPost, "/chat/reply/"+url.PathEscape(threadID), authBearer,
		map[string]string{"text": text})
	if err != nil {
		return models.ChatThread{}, err
	}

	raw := normalize.Object(env, "chat")
	if _, ok := raw["userId"]; !ok {
		raw["userId"] = threadID
	}
	return normalize.NewBatch("chat").ChatThread(raw), nil
}

func (c *HTTPClient) ListUPIs(ctx context.Context) ([]models.UpiEntry, error) {
	env, err := c.call(ctx, http.MethodGet, "/admin/upi", authToken, nil)
	if err != nil {
		return nil, err
	}
	return normalize.UpiEntries(normalize.Slice(env, "upis")), nil
}

func (c *HTTPClient) AddUPI(ctx context.Context, in models.NewUPI) (models.UpiEntry, error) {
	env, err := c.call(ctx, http.MethodPost, "/admin/upi", authToken, in)
	if err != nil {
		return models.UpiEntry{}, err
	}
	return normalize.NewBatch("upi").UpiEntry(normalize.Object(env, "upi")), nil
}

func (c *HTTPClient) DeleteUPI(ctx context.Context, id string) error {
	_, err := c.call(ctx, http.MethodDelete, "/admin/upi-delete/"+url.PathEscape(id), authToken, nil)
	return err
}

func (c *HTTPClient) ListExecutives(ctx context.Context) ([]models.Executive, error) {
	env, err := c.call(ctx, http.MethodGet, "/admin/executives", authToken, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Executives(normalize.Slice(env, "executives")), nil
}

func (c *HTTPClient) UpdateExecutiveStatus(ctx context.Context, id string, upd models.ExecutiveStatusUpdate) error {
	_, err := c.call(ctx, http.MethodPut, "/admin/executive/status/"+url.PathEscape(id), authToken, upd)
	return err
}
