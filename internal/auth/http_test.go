// Copyright (c) 2026 Melody. All rights reserved.

package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorogi/melody/internal/auth"
)

func newTestHandler() (*auth.Handler, *fakeUserRepository) {
	repo := newFakeUserRepository()
	service := auth.NewService(repo, &fakeTokenProvider{})
	return auth.NewHandler(service), repo
}

func postJSON(t *testing.T, handler *auth.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)
	return recorder
}

/*
TestHandler_Register_Validation rejects bad payloads before the service runs.
*/
func TestHandler_Register_Validation(t *testing.T) {
	handler, repo := newTestHandler()

	tests := []struct {
		name string
		body string
	}{
		{"invalid_json", `{"email": `},
		{"missing_email", `{"password": "longenough", "display_name": "A"}`},
		{"bad_email", `{"email": "nope", "password": "longenough", "display_name": "A"}`},
		{"short_password", `{"email": "a@b.com", "password": "short", "display_name": "A"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postJSON(t, handler, "/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}

	assert.Empty(t, repo.users, "no account may be created from rejected input")
}

/*
TestHandler_Register_Created verifies the 201 response never leaks the hash.
*/
func TestHandler_Register_Created(t *testing.T) {
	handler, _ := newTestHandler()

	recorder := postJSON(t, handler, "/register",
		`{"email": "listener@example.com", "password": "correct-horse", "display_name": "Listener"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	var user map[string]any
	require.NoError(t, json.Unmarshal(envelope["data"], &user))
	assert.Equal(t, "listener@example.com", user["email"])
	assert.NotContains(t, user, "password_hash")
	assert.NotContains(t, string(recorder.Body.Bytes()), "correct-horse")
}

/*
TestHandler_Login_Envelope verifies the {token, user} success payload and the
401 on bad credentials.
*/
func TestHandler_Login_Envelope(t *testing.T) {
	handler, _ := newTestHandler()

	recorder := postJSON(t, handler, "/register",
		`{"email": "listener@example.com", "password": "correct-horse", "display_name": "Listener"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = postJSON(t, handler, "/login",
		`{"email": "listener@example.com", "password": "correct-horse"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			Token string         `json:"token"`
			User  map[string]any `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "signed-token", envelope.Data.Token)
	assert.Equal(t, "listener@example.com", envelope.Data.User["email"])

	recorder = postJSON(t, handler, "/login",
		`{"email": "listener@example.com", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
