package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"projecthub/config"
	"projecthub/routes"
	"projecthub/store"
	"projecthub/utils"
)

type testAPI struct {
	app   *fiber.App
	store *store.Store
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	hasher := utils.NewBcryptHasher()
	s := store.New(db, hasher)
	sessions := utils.NewMemorySessionStore(time.Hour)

	app := fiber.New()
	routes.SetupRoutes(app, s, sessions, hasher, logger)
	return &testAPI{app: app, store: s}
}

func (a *testAPI) request(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *http.Response {
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
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session_token" {
			return cookie
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func storePayload(t *testing.T, fields map[string]interface{}) store.Payload {
	t.Helper()
	p := store.NewPayload()
	for key, value := range fields {
		raw, err := json.Marshal(value)
		require.NoError(t, err)
		p.Set(key, raw)
	}
	return p
}

func seedAPIUser(t *testing.T, a *testAPI, username string) uint {
	t.Helper()
	user, err := a.store.CreateUser(storePayload(t, map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
	}))
	require.NoError(t, err)
	return user.ID
}

func TestHome(t *testing.T) {
	a := newTestAPI(t)

	resp := a.request(t, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Welcome to the Syntax Slingers RESTful API", body["message"])
}

func TestSignupLoginSessionFlow(t *testing.T) {
	a := newTestAPI(t)

	resp := a.request(t, http.MethodPost, "/signup", map[string]interface{}{
		"username": "ada",
		"email":    "ada@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	cookie := sessionCookie(t, resp)
	body := decodeBody(t, resp)
	assert.Equal(t, "ada", body["username"])

	resp = a.request(t, http.MethodGet, "/check_session", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "ada", body["username"])

	// Duplicate signup collapses to the opaque rejection.
	resp = a.request(t, http.MethodPost, "/signup", map[string]interface{}{
		"username": "ada",
		"email":    "other@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "422 Unprocessable Entity", body["error"])

	resp = a.request(t, http.MethodPost, "/login", map[string]interface{}{
		"username": "ada",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "401 Unauthorized", body["error"])

	resp = a.request(t, http.MethodPost, "/login", map[string]interface{}{
		"username": "ada",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	loginCookie := sessionCookie(t, resp)
	body = decodeBody(t, resp)
	assert.NotNil(t, body["last_login"])

	resp = a.request(t, http.MethodDelete, "/logout", nil, loginCookie)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = a.request(t, http.MethodGet, "/check_session", nil, loginCookie)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "401 Unauthorized", body["message"])

	resp = a.request(t, http.MethodDelete, "/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = a.request(t, http.MethodDelete, "/clear", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSignupEmailRuleMatchesUserEngine(t *testing.T) {
	a := newTestAPI(t)

	// The only email shape rule is "contains @"; a bare local part with a
	// trailing @ is accepted, same as on POST /users.
	resp := a.request(t, http.MethodPost, "/signup", map[string]interface{}{
		"username": "ada",
		"email":    "ada@",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ada@", body["email"])

	resp = a.request(t, http.MethodPost, "/signup", map[string]interface{}{
		"username": "grace",
		"email":    "no-at-sign",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "422 Unprocessable Entity", body["error"])
}

func TestEmptyCollectionIsAQueryFailure(t *testing.T) {
	a := newTestAPI(t)

	resp := a.request(t, http.MethodGet, "/users", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["valid"])
	assert.Equal(t, "Can't query User data", body["Reason"])
}

func TestTeamCrudRoundTrip(t *testing.T) {
	a := newTestAPI(t)
	userID := seedAPIUser(t, a, "ada")

	resp := a.request(t, http.MethodPost, "/teams", map[string]interface{}{
		"name":               "platform",
		"description":        "infra work",
		"created_by_user_id": userID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody(t, resp)
	teamID := int(created["id"].(float64))
	assert.Equal(t, "platform", created["name"])

	resp = a.request(t, http.MethodGet, "/teams", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 1)

	resp = a.request(t, http.MethodGet, fmt.Sprintf("/teams/%d", teamID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Patch answers 201, as the clients expect.
	resp = a.request(t, http.MethodPatch, fmt.Sprintf("/teams/%d", teamID), map[string]interface{}{
		"description": "renovated",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	patched := decodeBody(t, resp)
	assert.Equal(t, "renovated", patched["description"])
	assert.Equal(t, "platform", patched["name"])

	resp = a.request(t, http.MethodDelete, fmt.Sprintf("/teams/%d", teamID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Team Record successfully deleted", body["message"])

	resp = a.request(t, http.MethodGet, fmt.Sprintf("/teams/%d", teamID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Team Record not found", body["error"])
}

func TestValidationErrorsBody(t *testing.T) {
	a := newTestAPI(t)
	seedAPIUser(t, a, "ada")

	resp := a.request(t, http.MethodPost, "/teams", map[string]interface{}{
		"description":        "no name",
		"created_by_user_id": 1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody(t, resp)
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "Team must have a Name", errs[0])
}

func TestChatMessageNotFoundBody(t *testing.T) {
	a := newTestAPI(t)

	resp := a.request(t, http.MethodGet, "/chat_messages/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Chat_Message Record not found", body["error"])
}

func TestMalformedIDIsNotFound(t *testing.T) {
	a := newTestAPI(t)

	resp := a.request(t, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = a.request(t, http.MethodGet, "/users/0", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteTeamCascadesOverHTTP(t *testing.T) {
	a := newTestAPI(t)
	userID := seedAPIUser(t, a, "ada")

	team, err := a.store.CreateTeam(storePayload(t, map[string]interface{}{
		"name":               "platform",
		"description":        "infra work",
		"created_by_user_id": userID,
	}))
	require.NoError(t, err)

	project, err := a.store.CreateProject(storePayload(t, map[string]interface{}{
		"title":       "apollo",
		"description": "a project",
		"status":      "active",
		"start_date":  "2026-01-01",
		"end_date":    "2026-06-01",
		"team_id":     team.ID,
	}))
	require.NoError(t, err)

	resp := a.request(t, http.MethodDelete, fmt.Sprintf("/teams/%d", team.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.request(t, http.MethodGet, fmt.Sprintf("/projects/%d", project.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Project Record not found", body["error"])
}
