// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: hoang.nv.dev@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvhoang/cinelog/internal/platform/middleware"
	"github.com/nvhoang/cinelog/internal/platform/sec"
	"github.com/nvhoang/cinelog/internal/users/auth"
)

// newAuthRouter wires the handler behind the real JWT middleware, mirroring
// the production chain for this route group.
func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()

	tokenService, err := sec.NewTokenService("handler-test-secret", "cinelog.app")
	require.NoError(t, err)

	service := auth.NewService(
		newFakeUserRepository(),
		newFakeSessionRepository(),
		tokenService,
		time.Hour,
		24*time.Hour,
	)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokenService))
	router.Mount("/auth", auth.NewHandler(service).Routes())
	return router
}

func doJSON(router http.Handler, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	for key, values := range header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Register creates an account, refuses the duplicate email, and
never leaks the password hash in the response.
*/
func TestHandler_Register(t *testing.T) {
	router := newAuthRouter(t)

	body := `{"name": "Grace", "email": "grace@example.com", "password": "hopper-mk1"}`
	recorder := doJSON(router, http.MethodPost, "/auth/register", body, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Data struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.ID)
	assert.Equal(t, "grace@example.com", envelope.Data.Email)
	assert.NotContains(t, recorder.Body.String(), "passwordHash")
	assert.NotContains(t, recorder.Body.String(), "$2")

	recorder = doJSON(router, http.MethodPost, "/auth/register", body, nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

/*
TestHandler_Register_Validation rejects structurally invalid payloads.
*/
func TestHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing_name", `{"email": "a@b.com", "password": "longenough"}`},
		{"bad_email", `{"name": "A", "email": "not-an-email", "password": "longenough"}`},
		{"short_password", `{"name": "A", "email": "a@b.com", "password": "abc"}`},
		{"invalid_json", `{"name": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(t)
			recorder := doJSON(router, http.MethodPost, "/auth/register", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}

/*
TestHandler_LoginFlow walks register, login, and the authenticated profile
read with the issued bearer token.
*/
func TestHandler_LoginFlow(t *testing.T) {
	router := newAuthRouter(t)

	registerBody := `{"name": "Grace", "email": "grace@example.com", "password": "hopper-mk1"}`
	recorder := doJSON(router, http.MethodPost, "/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	loginBody := `{"email": "grace@example.com", "password": "hopper-mk1"}`
	recorder = doJSON(router, http.MethodPost, "/auth/login", loginBody, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				Name string `json:"name"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)
	assert.Equal(t, "Grace", envelope.Data.User.Name)

	// The refresh token travels only as an HttpOnly cookie.
	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].HttpOnly)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+envelope.Data.Token)
	recorder = doJSON(router, http.MethodGet, "/auth/me", "", header)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "grace@example.com")
}

/*
TestHandler_Login_Unauthorized returns the same 401 for unknown email and
wrong password.
*/
func TestHandler_Login_Unauthorized(t *testing.T) {
	router := newAuthRouter(t)

	registerBody := `{"name": "Grace", "email": "grace@example.com", "password": "hopper-mk1"}`
	recorder := doJSON(router, http.MethodPost, "/auth/register", registerBody, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)

	for _, body := range []string{
		`{"email": "nobody@example.com", "password": "hopper-mk1"}`,
		`{"email": "grace@example.com", "password": "wrong"}`,
	} {
		recorder = doJSON(router, http.MethodPost, "/auth/login", body, nil)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid email or password")
	}
}

/*
TestHandler_Me_RequiresAuth rejects missing and malformed bearer tokens.
*/
func TestHandler_Me_RequiresAuth(t *testing.T) {
	router := newAuthRouter(t)

	recorder := doJSON(router, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	header := http.Header{}
	header.Set("Authorization", "Bearer not-a-real-token")
	recorder = doJSON(router, http.MethodGet, "/auth/me", "", header)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
