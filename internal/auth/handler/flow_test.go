package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dityarw/auth-service/internal/auth/domain"
	"github.com/dityarw/auth-service/internal/auth/dto"
	"github.com/dityarw/auth-service/internal/auth/handler"
	"github.com/dityarw/auth-service/internal/auth/middleware"
	"github.com/dityarw/auth-service/internal/auth/service"
	"github.com/dityarw/auth-service/internal/auth/store/memory"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWithRole(id, role string) *domain.User {
	return &domain.User{ID: id, Username: id, Email: id + "@x.com", Role: role}
}

// newTestApp wires real components end to end: in-memory store, HS256 codec,
// session service, guard, and routes.
func newTestApp(maxTokens, accessMinutes int) *fiber.App {
	store := memory.NewStore(maxTokens)
	tokens := service.NewTokenService("access-secret", "refresh-secret", accessMinutes, 10080)
	userService := service.NewUserService(store, tokens)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, middleware.RequireAuth(tokens, store))

	return app
}

// newAdminTestApp is newTestApp plus a seeded admin account, the same way
// startup seeds one from configuration.
func newAdminTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := memory.NewStore(5)
	tokens := service.NewTokenService("access-secret", "refresh-secret", 15, 10080)
	userService := service.NewUserService(store, tokens)
	authHandler := handler.NewAuthHandler(userService)

	err := userService.EnsureAdmin(context.Background(),
		dto.RegisterInput{Username: "root", Email: "root@x.com", Password: "rootpw1"})
	require.NoError(t, err)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, middleware.RequireAuth(tokens, store))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, raw
}

func TestTokenLifecycleFlow(t *testing.T) {
	app := newTestApp(5, 15)

	// Register alice.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/register",
		dto.RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Login.
	resp, raw := doJSON(t, app, http.MethodPost, "/api/v1/login",
		dto.LoginInput{UsernameOrEmail: "alice", Password: "secret1"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pair dto.TokenResponse
	require.NoError(t, json.Unmarshal(raw, &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// Guarded request resolves alice's identity.
	resp, raw = doJSON(t, app, http.MethodGet, "/api/v1/me", nil,
		map[string]string{"Authorization": "Bearer " + pair.AccessToken})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var identity domain.Identity
	require.NoError(t, json.Unmarshal(raw, &identity))
	assert.Equal(t, "alice", identity.Username)

	// A pre-expired access token for the same subject is rejected as expired.
	expiredCodec := service.NewTokenService("access-secret", "refresh-secret", -1, 10080)
	expiredAccess, err := expiredCodec.SignAccess(identity.ID, "user")
	require.NoError(t, err)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/v1/me", nil,
		map[string]string{"Authorization": "Bearer " + expiredAccess})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), middleware.ReasonTokenExpired)

	// Refresh mints a new, distinct access token.
	resp, raw = doJSON(t, app, http.MethodPost, "/api/v1/refresh",
		dto.RefreshInput{RefreshToken: pair.RefreshToken}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var refreshed dto.RefreshResponse
	require.NoError(t, json.Unmarshal(raw, &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)

	// No forced rotation: the same refresh token keeps working.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/refresh",
		dto.RefreshInput{RefreshToken: pair.RefreshToken}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Logout, then the identical token is revoked.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/session",
		dto.RefreshInput{RefreshToken: pair.RefreshToken}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/v1/refresh",
		dto.RefreshInput{RefreshToken: pair.RefreshToken}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "revoked")

	// Logout is idempotent.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/session",
		dto.RefreshInput{RefreshToken: pair.RefreshToken}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// A user accumulating more logins than the retention bound keeps only the
// most recent refresh tokens; the oldest stops working.
func TestRefreshTokenRetentionBound(t *testing.T) {
	app := newTestApp(5, 15)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/register",
		dto.RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	refreshTokens := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		resp, raw := doJSON(t, app, http.MethodPost, "/api/v1/login",
			dto.LoginInput{UsernameOrEmail: "alice", Password: "secret1"}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "login %d", i)

		var pair dto.TokenResponse
		require.NoError(t, json.Unmarshal(raw, &pair))
		refreshTokens = append(refreshTokens, pair.RefreshToken)
	}

	// The first token was evicted and now fails as revoked.
	resp, raw := doJSON(t, app, http.MethodPost, "/api/v1/refresh",
		dto.RefreshInput{RefreshToken: refreshTokens[0]}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "revoked")

	// The five most recent all still work.
	for i := 1; i < 6; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/refresh",
			dto.RefreshInput{RefreshToken: refreshTokens[i]}, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "refresh %d", i)
	}
}

func TestListUsersAndSessions(t *testing.T) {
	app := newTestApp(5, 15)

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/register",
			dto.RegisterInput{
				Username: fmt.Sprintf("user-%d", i),
				Email:    fmt.Sprintf("u%d@x.com", i),
				Password: "secret1",
			}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, raw := doJSON(t, app, http.MethodPost, "/api/v1/login",
		dto.LoginInput{UsernameOrEmail: "user-0", Password: "secret1"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pair dto.TokenResponse
	require.NoError(t, json.Unmarshal(raw, &pair))
	auth := map[string]string{"Authorization": "Bearer " + pair.AccessToken}

	resp, raw = doJSON(t, app, http.MethodGet, "/api/v1/users", nil, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []domain.PublicUser
	require.NoError(t, json.Unmarshal(raw, &users))
	require.Len(t, users, 3)
	assert.Equal(t, "user-0", users[0].Username)
	assert.Equal(t, "user-2", users[2].Username)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/v1/user/"+pair.User.ID+"/sessions", nil, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sessions []dto.SessionOutput
	require.NoError(t, json.Unmarshal(raw, &sessions))
	require.Len(t, sessions, 1)
	assert.NotEmpty(t, sessions[0].TokenDigest)
	assert.NotEqual(t, pair.RefreshToken, sessions[0].TokenDigest)
}

// A seeded admin can promote a regular user, and the promoted user's existing
// access token immediately gains the admin routes because the guard resolves
// the role from the store on every request.
func TestAdminRoleLifecycle(t *testing.T) {
	app := newAdminTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/register",
		dto.RegisterInput{Username: "alice", Email: "a@x.com", Password: "secret1"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/v1/login",
		dto.LoginInput{UsernameOrEmail: "alice", Password: "secret1"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var alicePair dto.TokenResponse
	require.NoError(t, json.Unmarshal(raw, &alicePair))
	aliceAuth := map[string]string{"Authorization": "Bearer " + alicePair.AccessToken}

	resp, raw = doJSON(t, app, http.MethodPost, "/api/v1/login",
		dto.LoginInput{UsernameOrEmail: "root", Password: "rootpw1"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rootPair dto.TokenResponse
	require.NoError(t, json.Unmarshal(raw, &rootPair))
	require.Equal(t, "admin", rootPair.User.Role)
	rootAuth := map[string]string{"Authorization": "Bearer " + rootPair.AccessToken}

	roleRoute := "/api/v1/user/" + alicePair.User.ID + "/role"

	// A regular user cannot reach the role-update endpoint.
	resp, _ = doJSON(t, app, http.MethodPatch, roleRoute,
		dto.UpdateRoleInput{Role: "admin"}, aliceAuth)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// The admin promotes alice.
	resp, raw = doJSON(t, app, http.MethodPatch, roleRoute,
		dto.UpdateRoleInput{Role: "admin"}, rootAuth)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var promoted domain.PublicUser
	require.NoError(t, json.Unmarshal(raw, &promoted))
	assert.Equal(t, "admin", promoted.Role)

	// Alice's pre-promotion access token now passes the admin gate: she
	// force-revokes her own sessions.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/user/"+alicePair.User.ID+"/sessions",
		nil, aliceAuth)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/refresh",
		dto.RefreshInput{RefreshToken: alicePair.RefreshToken}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Unknown roles are rejected at the boundary without touching the store.
func TestAdminRoleUpdate_UnknownRole(t *testing.T) {
	app := newAdminTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/v1/login",
		dto.LoginInput{UsernameOrEmail: "root", Password: "rootpw1"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rootPair dto.TokenResponse
	require.NoError(t, json.Unmarshal(raw, &rootPair))

	resp, _ = doJSON(t, app, http.MethodPatch, "/api/v1/user/"+rootPair.User.ID+"/role",
		dto.UpdateRoleInput{Role: "superuser"},
		map[string]string{"Authorization": "Bearer " + rootPair.AccessToken})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
