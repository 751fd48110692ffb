package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/spinadmin/internal/client/models"
	"github.com/dmitrijs2005/spinadmin/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(srv.URL+"/api", WithSession(TokenFunc(func() string { return token })))
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewHTTPClient_RejectsBadURL(t *testing.T) {
	for _, u := range []string{"", "localhost:5000", "ftp://x/api", "http://"} {
		_, err := NewHTTPClient(u)
		assert.Error(t, err, u)
	}
}

func TestLogin_PathsPerRole(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, 200, map[string]any{"success": true, "token": "tok"})
	}, "")

	tok, err := c.Login(context.Background(), models.RoleAdmin, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.Equal(t, "/api/admin/login", gotPath)
	assert.Equal(t, map[string]string{"email": "a@b.c", "password": "pw"}, gotBody)

	_, err = c.Login(context.Background(), models.RoleExecutive, "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "/api/admin/executive/login", gotPath)
}

func TestLogin_MissingTokenIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{"success": true})
	}, "")

	_, err := c.Login(context.Background(), models.RoleAdmin, "a", "b")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestCall_RejectedCarriesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 400, map[string]any{"success": false, "message": "Invalid credentials"})
	}, "")

	_, err := c.Login(context.Background(), models.RoleAdmin, "a", "b")
	require.ErrorIs(t, err, ErrRejected)

	var rej *RejectedError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "Invalid credentials", rej.Message)
	assert.Equal(t, 400, rej.Status)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestCall_SuccessFalseWith200IsRejected(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{"success": false})
	}, "tok")

	_, err := c.ListUsers(context.Background())
	var rej *RejectedError
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "request failed: OK", rej.Message)
}

func TestCall_UnauthorizedStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 401, map[string]any{"success": false, "message": "expired"})
	}, "tok")

	_, err := c.ListDeposits(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrRejected)
}

func TestCall_NonJSONIsDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(502)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}, "tok")

	_, err := c.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestCall_NoTokenFailsBeforeNetwork(t *testing.T) {
	hits := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits++ }, "")

	_, err := c.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, hits)
}

func TestCall_ServerDownIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(url, WithSession(TokenFunc(func() string { return "tok" })))
	require.NoError(t, err)

	_, err = c.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAuthHeaders(t *testing.T) {
	headers := map[string]http.Header{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		headers[r.URL.Path] = r.Header.Clone()
		writeJSON(w, 200, map[string]any{"success": true, "chat": map[string]any{}})
	}, "tok")

	ctx := context.Background()
	_, err := c.ListSpins(ctx)
	require.NoError(t, err)
	_, err = c.ListUsers(ctx)
	require.NoError(t, err)
	_, err = c.ReplyChat(ctx, "u1", "hi")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok", headers["/api/admin/spinhistory"].Get("Authorization"))
	assert.Equal(t, "tok", headers["/api/admin/allusers"].Get(common.AuthTokenHeaderName))
	assert.Empty(t, headers["/api/admin/allusers"].Get("Authorization"))
	assert.Equal(t, "Bearer tok", headers["/api/chat/reply/u1"].Get("Authorization"))
}

func TestListDeposits_Normalizes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/deposithistory", r.URL.Path)
		writeJSON(w, 200, map[string]any{"success": true, "deposits": []any{
			map[string]any{"_id": "d1", "transectionID": "T1", "name": "Asha", "status": "approved", "amount": 500},
			map[string]any{"amount": "x"},
			"garbage",
		}})
	}, "tok")

	got, err := c.ListDeposits(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d1", got[0].ID)
	assert.Equal(t, "T1", got[0].TransactionID)
	assert.Equal(t, models.DepositApproved, got[0].Status)
	assert.Equal(t, 500.0, got[0].Amount)
	assert.NotEmpty(t, got[1].ID)
	assert.Equal(t, models.DepositPending, got[1].Status)
}

func TestApproveDeposit(t *testing.T) {
	var method, path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		writeJSON(w, 200, map[string]any{"success": true})
	}, "tok")

	require.NoError(t, c.ApproveDeposit(context.Background(), "d1"))
	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/api/deposit/approve-deposit/d1", path)
}

func TestRandomUPI(t *testing.T) {
	body := map[string]any{"success": true, "data": map[string]any{"upi": map[string]any{"upi": "pay@okaxis"}}}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(common.AuthTokenHeaderName))
		writeJSON(w, 200, body)
	}, "")

	upi, err := c.RandomUPI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pay@okaxis", upi)

	body = map[string]any{"success": true, "data": map[string]any{}}
	_, err = c.RandomUPI(context.Background())
	assert.ErrorIs(t, err, ErrRejected)
}

func TestMe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, map[string]any{"success": true, "data": map[string]any{
			"admin": map[string]any{"_id": "a1", "name": "Root", "email": "root@x.io"},
		}})
	}, "tok")

	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Root", me.Name)
	assert.Equal(t, "root@x.io", me.Email)
}

func TestReplyChat_KeepsThreadID(t *testing.T) {
	var text map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&text)
		writeJSON(w, 200, map[string]any{"success": true, "chat": map[string]any{
			"userName": "Ravi",
			"messages": []any{map[string]any{"sender": "admin", "text": "hi", "timestamp": "2024-05-01T10:00:00Z"}},
		}})
	}, "tok")

	th, err := c.ReplyChat(context.Background(), "u7", "hi")
	require.NoError(t, err)
	assert.Equal(t, "u7", th.ID)
	assert.Equal(t, "hi", text["text"])
	require.Len(t, th.Messages, 1)
}

func TestUpdateExecutiveStatus_Body(t *testing.T) {
	var got map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/admin/executive/status/e1", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, 200, map[string]any{"success": true})
	}, "tok")

	err := c.UpdateExecutiveStatus(context.Background(), "e1", models.ExecutiveStatusUpdate{
		Action: "approve", Designation: "Manager", Permission: "Write",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"action": "approve", "designation": "Manager", "permission": "Write"}, got)
}

func TestCall_ResponseSizeLimit(t *testing.T) {
	body := []byte(`{"success":true,"users":[{"_id":"u1","name":"Asha"}]}`)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}, "tok")

	c.maxBody = int64(len(body))
	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)

	c.maxBody = int64(len(body)) - 1
	_, err = c.ListUsers(context.Background())
	require.ErrorIs(t, err, ErrDecode)
	assert.ErrorContains(t, err, "response too large")
}
