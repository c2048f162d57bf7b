package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resto-backend/internal/apperror"
	"resto-backend/internal/model"
)

const secret = "test-secret"

func authApp(v Verifier) *fiber.App {
	app := fiber.New()
	app.Get("/me", Auth(v, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path, token string) (*http.Response, apperror.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	var body apperror.Response
	if resp.StatusCode >= 400 {
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		require.Contains(t, raw, "success")
		assert.Equal(t, false, raw["success"])
		require.NoError(t, json.Unmarshal(data, &body))
	}
	return resp, body
}

func TestAuth_JWT(t *testing.T) {
	app := authApp(NewJWTVerifier(secret))

	resp, body := doGet(t, app, "/me", "")
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body.Code)

	resp, body = doGet(t, app, "/me", "not-a-jwt")
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body.Code)

	wrongKey, err := SignToken("other-secret", "user-1", time.Hour)
	require.NoError(t, err)
	resp, _ = doGet(t, app, "/me", wrongKey)
	assert.Equal(t, 401, resp.StatusCode)

	expired, err := SignToken(secret, "user-1", -time.Minute)
	require.NoError(t, err)
	resp, _ = doGet(t, app, "/me", expired)
	assert.Equal(t, 401, resp.StatusCode)

	good, err := SignToken(secret, "user-1", time.Hour)
	require.NoError(t, err)
	resp, _ = doGet(t, app, "/me", good)
	require.Equal(t, 200, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "user-1", string(raw))
}

func TestIntrospectionVerifier(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" || r.Header.Get("apikey") != "anon-key" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch r.Header.Get("Authorization") {
		case "Bearer good":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"3f0c6a2e-uuid","email":"ann@resto.test"}`))
		case "Bearer broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer provider.Close()

	v := NewIntrospectionVerifier(provider.URL, "anon-key")
	ctx := context.Background()

	sub, err := v.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "3f0c6a2e-uuid", sub)

	_, err = v.Verify(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.Verify(ctx, "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)

	resp, body := doGet(t, authApp(v), "/me", "broken")
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
}

type fakePermissions map[string]*model.SchedulePermissions

func (f fakePermissions) Permissions(_ context.Context, userID string) (*model.SchedulePermissions, error) {
	if userID == "broken" {
		return nil, errors.New("store down")
	}
	p, ok := f[userID]
	if !ok {
		return nil, apperror.New(apperror.CodeProfileNotFound, "Employee record not found")
	}
	return p, nil
}

func TestPermissionAndAdmin(t *testing.T) {
	src := fakePermissions{
		"admin": {CanView: true, CanEdit: true, CanCreate: true, CanDelete: true, IsAdmin: true},
		"cook":  {CanView: true},
	}
	app := fiber.New()
	auth := Auth(NewJWTVerifier(secret), zap.NewNop())
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/view", auth, Permission(src, CanView), ok)
	app.Get("/edit", auth, Permission(src, CanEdit), ok)
	app.Get("/admin", auth, Admin(src), ok)

	token := func(sub string) string {
		tok, err := SignToken(secret, sub, time.Hour)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		path, user string
		status     int
		code       string
	}{
		{"/view", "cook", 200, ""},
		{"/edit", "cook", 403, "FORBIDDEN"},
		{"/edit", "admin", 200, ""},
		{"/admin", "cook", 403, "FORBIDDEN"},
		{"/admin", "admin", 200, ""},
		{"/view", "stranger", 403, "PROFILE_NOT_FOUND"},
		{"/view", "broken", 500, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.user, func(t *testing.T) {
			resp, body := doGet(t, app, tt.path, token(tt.user))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, body.Code)
		})
	}
}
