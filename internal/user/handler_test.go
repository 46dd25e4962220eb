package user

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pos-backend/internal/auth"
	"pos-backend/internal/models"
	"pos-backend/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := testutil.NewApp()
	cfg := testutil.Config(t)

	app.Post("/api/user/register", RegisterHandler())
	app.Post("/api/user/login", LoginHandler(cfg))

	protected := app.Group("/api", auth.Middleware(cfg))
	protected.Post("/user/logout", LogoutHandler())
	protected.Get("/user/profile", ProfileHandler())
	protected.Get("/user", ListHandler())
	protected.Put("/user/:id", UpdateHandler())
	protected.Delete("/user/:id", DeleteHandler())
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRegisterValidatesFields(t *testing.T) {
	db := testutil.SetupDB(t)
	u := testutil.SeedUser(t, db)
	app := newApp(t)

	// missing phone
	resp := postJSON(t, app, "/api/user/register",
		fmt.Sprintf(`{"name":"A","email":"a@b.com","password":"pw","role":%d}`, u.RoleID))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// bad phone
	resp = postJSON(t, app, "/api/user/register",
		fmt.Sprintf(`{"name":"A","phone":"12345","email":"a@b.com","password":"pw","role":%d}`, u.RoleID))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// bad role reference
	resp = postJSON(t, app, "/api/user/register",
		`{"name":"A","phone":"0123456789","email":"a@b.com","password":"pw","role":99}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/api/user/register",
		fmt.Sprintf(`{"name":"A","phone":"0123456789","email":"a@b.com","password":"pw","role":%d}`, u.RoleID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	db := testutil.SetupDB(t)
	u := testutil.SeedUser(t, db)
	app := newApp(t)

	resp := postJSON(t, app, "/api/user/register",
		fmt.Sprintf(`{"name":"A","phone":"0123456789","email":%q,"password":"pw","role":%d}`, u.Email, u.RoleID))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoginSetsCookieAndRecordsSession(t *testing.T) {
	db := testutil.SetupDB(t)
	u := testutil.SeedUser(t, db)
	app := newApp(t)

	resp := postJSON(t, app, "/api/user/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, u.Email, testutil.UserPassword))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool        `json:"success"`
		Token   string      `json:"token"`
		Data    models.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Token)
	assert.NotNil(t, body.Data.LastLogin)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == auth.CookieName {
			cookie = c.Value
		}
	}
	assert.Equal(t, body.Token, cookie)

	// exactly one new active session
	var sessions []models.LoginSession
	require.NoError(t, db.Where("user_id = ?", u.ID).Find(&sessions).Error)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].IsActive)
	assert.Nil(t, sessions[0].LogoutTime)
}

func TestLoginBadPassword(t *testing.T) {
	db := testutil.SetupDB(t)
	u := testutil.SeedUser(t, db)
	app := newApp(t)

	resp := postJSON(t, app, "/api/user/login",
		fmt.Sprintf(`{"email":%q,"password":"wrong"}`, u.Email))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.LoginSession{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLogoutClosesActiveSession(t *testing.T) {
	db := testutil.SetupDB(t)
	u := testutil.SeedUser(t, db)
	app := newApp(t)

	resp := postJSON(t, app, "/api/user/login",
		fmt.Sprintf(`{"email":%q,"password":%q}`, u.Email, testutil.UserPassword))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	req.Header.Set("Authorization", testutil.BearerToken(t, u))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var session models.LoginSession
	require.NoError(t, db.Where("user_id = ?", u.ID).First(&session).Error)
	assert.False(t, session.IsActive)
	assert.NotNil(t, session.LogoutTime)
}

func TestUpdateUserPartialMerge(t *testing.T) {
	db := testutil.SetupDB(t)
	u := testutil.SeedUser(t, db)
	app := newApp(t)

	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/user/%d", u.ID),
		strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", testutil.BearerToken(t, u))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.User
	require.NoError(t, db.First(&stored, u.ID).Error)
	assert.Equal(t, "Renamed", stored.Name)
	// untouched fields survive the merge
	assert.Equal(t, u.Email, stored.Email)
	assert.Equal(t, u.Phone, stored.Phone)
	assert.Equal(t, u.PasswordHash, stored.PasswordHash)
}

func TestListUsersExcludesPassword(t *testing.T) {
	db := testutil.SetupDB(t)
	u := testutil.SeedUser(t, db)
	app := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", testutil.BearerToken(t, u))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	users, ok := raw["data"].([]any)
	require.True(t, ok)
	require.Len(t, users, 1)
	first, ok := users[0].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, first, "password")
	assert.NotContains(t, first, "passwordHash")
	assert.Contains(t, first, "role")
}
