package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"resto-backend/internal/dbtest"
	"resto-backend/internal/middleware"
	"resto-backend/internal/model"
	"resto-backend/internal/repository"
)

const (
	secret      = "routes-secret"
	adminRoleID = 2
)

type server struct {
	app  *fiber.App
	db   *gorm.DB
	loc  *model.RestaurantLocation
	cook *model.Employee
}

// newServer seeds roles Cook(1) and Admin(2), a location, a cook and an admin.
func newServer(t *testing.T) *server {
	t.Helper()
	ctx := context.Background()
	db := dbtest.Open(t)

	roles := repository.NewRoleRepository(db)
	require.NoError(t, roles.Create(ctx, &model.Role{Name: "Cook"}))
	require.NoError(t, roles.Create(ctx, &model.Role{Name: "Admin"}))
	loc := &model.RestaurantLocation{Address: "1 Main St"}
	require.NoError(t, repository.NewRestaurantRepository(db).Create(ctx, loc))

	emps := repository.NewEmployeeRepository(db)
	mk := func(name, userID string, roleID uint) *model.Employee {
		e := &model.Employee{FullName: name, UserID: &userID, RoleID: &roleID, LocationID: &loc.ID, IsFeatured: true}
		require.NoError(t, emps.Create(ctx, e))
		return e
	}
	cook := mk("Ann Cook", "user-cook", 1)
	mk("Cid Admin", "user-admin", adminRoleID)

	app := fiber.New()
	Setup(app, &Deps{
		DB:              db,
		Log:             zap.NewNop(),
		Verifier:        middleware.NewJWTVerifier(secret),
		AdminRoleID:     adminRoleID,
		MaxScheduleDays: 62,
	})
	return &server{app: app, db: db, loc: loc, cook: cook}
}

func token(t *testing.T, subject string) string {
	t.Helper()
	tok, err := middleware.SignToken(secret, subject, time.Hour)
	require.NoError(t, err)
	return tok
}

func (s *server) do(t *testing.T, method, path, tok string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return resp, out
}

func (s *server) key(date string) map[string]any {
	return map[string]any{"employee_id": s.cook.ID, "shift_date": date, "location_id": s.loc.ID}
}

func TestSchedule_RequiresToken(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/schedule?locationId=1&startDate=2024-01-01&endDate=2024-01-07", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", body["code"])

	resp, body = s.do(t, http.MethodGet, "/api/schedule/roles", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", body["code"])
}

func TestSchedule_NonAdminCannotAssign(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/schedule/assign", token(t, "user-cook"), s.key("2024-01-01"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", body["code"])

	resp, _ = s.do(t, http.MethodGet, "/api/schedule?locationId=1&startDate=2024-01-01&endDate=2024-01-07", token(t, "user-cook"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSchedule_UnknownProfile(t *testing.T) {
	s := newServer(t)
	stranger := token(t, "user-nobody")

	resp, body := s.do(t, http.MethodGet, "/api/schedule?locationId=1&startDate=2024-01-01&endDate=2024-01-07", stranger, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "PROFILE_NOT_FOUND", body["code"])

	resp, body = s.do(t, http.MethodGet, "/api/schedule/permissions", stranger, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PROFILE_NOT_FOUND", body["code"])
}

func TestSchedule_AdminAssignAndRemove(t *testing.T) {
	s := newServer(t)
	admin := token(t, "user-admin")

	resp, _ := s.do(t, http.MethodDelete, "/api/schedule/remove", admin, s.key("2024-01-01"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := s.do(t, http.MethodPost, "/api/schedule/assign", admin, s.key("2024-01-01"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	var shifts int64
	require.NoError(t, s.db.Model(&model.Shift{}).Where("shift_date = ?", "2024-01-01").Count(&shifts).Error)
	assert.EqualValues(t, 1, shifts)

	resp, body = s.do(t, http.MethodGet, "/api/schedule/permissions", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	perms := body["data"].(map[string]any)
	assert.Equal(t, true, perms["isAdmin"])
	assert.Equal(t, "Admin", perms["roleName"])

	resp, _ = s.do(t, http.MethodDelete, "/api/schedule/remove", admin, s.key("2024-01-01"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodDelete, "/api/schedule/remove", admin, s.key("2024-01-01"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestShifts_WritesNeedAdmin(t *testing.T) {
	s := newServer(t)
	shift := map[string]any{"shift_date": "2024-02-01", "profit": 120}

	resp, _ := s.do(t, http.MethodPost, "/api/shifts", token(t, "user-cook"), shift)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := s.do(t, http.MethodPost, "/api/shifts", token(t, "user-admin"), shift)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "user-admin", data["admin_id"])

	resp, _ = s.do(t, http.MethodGet, "/api/shifts/2024-02-01", token(t, "user-cook"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = s.do(t, http.MethodGet, "/api/shifts/2024-02-02", token(t, "user-cook"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProfile(t *testing.T) {
	s := newServer(t)
	newbie := token(t, "user-new")

	resp, _ := s.do(t, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+newbie)
	raw, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
	b, err := io.ReadAll(raw.Body)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	resp, body := s.do(t, http.MethodPatch, "/api/profile", newbie, map[string]any{"full_name": "Dee New", "role_id": 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user-new", body["user_id"])
	assert.EqualValues(t, 1, body["role_id"])

	resp, body = s.do(t, http.MethodPatch, "/api/profile", newbie, map[string]any{"full_name": "Dee Renamed", "role_id": adminRoleID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dee Renamed", body["full_name"])
	assert.EqualValues(t, 1, body["role_id"])
}

func TestHealthz(t *testing.T) {
	s := newServer(t)

	resp, body := s.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, _ = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	db := dbtest.Open(t)
	app := fiber.New()
	Setup(app, &Deps{
		DB:              db,
		Log:             zap.NewNop(),
		Verifier:        middleware.NewJWTVerifier(secret),
		JWTSecret:       secret,
		AdminRoleID:     adminRoleID,
		MaxScheduleDays: 62,
	})
	s := &server{app: app, db: db}

	resp, body := s.do(t, http.MethodPost, "/api/employees", "", map[string]any{
		"full_name": "Eve", "email": "eve@resto.test", "user_id": "user-eve", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotContains(t, body, "password")

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "eve@resto.test", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", body["code"])

	resp, body = s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "eve@resto.test", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	tok := body["data"].(map[string]any)["token"].(string)

	resp, body = s.do(t, http.MethodGet, "/api/profile", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Eve", body["full_name"])
}

func TestLogin_DisabledWithoutSecret(t *testing.T) {
	s := newServer(t)

	resp, _ := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{"email": "a@b.c", "password": "pw"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
