package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/MyeongsupWorkSpace/sepnp/internal/config"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/MyeongsupWorkSpace/sepnp/internal/testutil"
)

func setupAuthTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:            testutil.JWTSecret,
			AccessTokenExpire: time.Hour,
			Issuer:            "sepnp-erp",
		},
	}

	repos := repository.NewRepositories(db)
	svc := service.NewAuthService(repos.Employee, cfg)
	handler := NewAuthHandler(svc)

	router := testutil.SetupRouter()
	router.POST("/api/auth/login", handler.Login)
	api := testutil.AuthGroup(router, "/api")
	api.GET("/auth/me", handler.Me)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestLoginSuccess verifies a seeded employee can log in with either
// username or employee number and receives a usable token.
func TestLoginSuccess(t *testing.T) {
	env := setupAuthTest(t)
	testutil.SeedTestEmployee(t, env.DB, "emp-001", "S2401", "hong.gd", "secret1234", "manager")

	for _, loginID := range []string{"hong.gd", "S2401"} {
		body := map[string]interface{}{"loginId": loginID, "password": "secret1234"}
		w := testutil.DoRequest(env.Router, http.MethodPost, "/api/auth/login", body, "")
		if w.Code != http.StatusOK {
			t.Fatalf("login with %s: expected 200, got %d: %s", loginID, w.Code, w.Body.String())
		}

		resp := testutil.ParseResponse(w)
		tokenStr, _ := resp["token"].(string)
		if tokenStr == "" {
			t.Fatal("expected token in login response")
		}

		// The issued token must pass the auth middleware
		w = testutil.DoRequest(env.Router, http.MethodGet, "/api/auth/me", nil, tokenStr)
		if w.Code != http.StatusOK {
			t.Fatalf("me with issued token: expected 200, got %d: %s", w.Code, w.Body.String())
		}
	}
}

// TestLoginWrongPassword returns 401 without leaking which part of the
// credentials was wrong.
func TestLoginWrongPassword(t *testing.T) {
	env := setupAuthTest(t)
	testutil.SeedTestEmployee(t, env.DB, "emp-002", "S2402", "kim.ms", "secret1234", "staff")

	body := map[string]interface{}{"loginId": "kim.ms", "password": "wrong"}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/auth/login", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

// TestLoginUnknownUser also returns 401, same as a bad password.
func TestLoginUnknownUser(t *testing.T) {
	env := setupAuthTest(t)

	body := map[string]interface{}{"loginId": "nobody", "password": "whatever"}
	w := testutil.DoRequest(env.Router, http.MethodPost, "/api/auth/login", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}
