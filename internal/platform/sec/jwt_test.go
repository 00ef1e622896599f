// Copyright (c) 2026 Melody. All rights reserved.

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorogi/melody/internal/platform/sec"
)

const testSessionSecret = "unit-test-session-secret"

/*
TestSessionTokenService_RoundTrip verifies that a generated credential can be
verified and carries the original identity claims.
*/
func TestSessionTokenService_RoundTrip(t *testing.T) {
	service := sec.NewSessionTokenService(testSessionSecret, "melody.test")

	token, err := service.Generate(42, "listener@example.com", "user", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "listener@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "melody.test", claims.Issuer)
	assert.False(t, claims.IsAdmin())
}

/*
TestSessionTokenService_AdminRole checks the role claim drives IsAdmin.
*/
func TestSessionTokenService_AdminRole(t *testing.T) {
	service := sec.NewSessionTokenService(testSessionSecret, "melody.test")

	token, err := service.Generate(1, "root@example.com", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

/*
TestSessionTokenService_Expired verifies that an elapsed credential is rejected.
*/
func TestSessionTokenService_Expired(t *testing.T) {
	service := sec.NewSessionTokenService(testSessionSecret, "melody.test")

	token, err := service.Generate(42, "listener@example.com", "user", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestSessionTokenService_WrongSecret verifies that a credential signed with a
different secret never verifies.
*/
func TestSessionTokenService_WrongSecret(t *testing.T) {
	issuing := sec.NewSessionTokenService(testSessionSecret, "melody.test")
	verifying := sec.NewSessionTokenService("another-secret-entirely", "melody.test")

	token, err := issuing.Generate(42, "listener@example.com", "user", time.Hour)
	require.NoError(t, err)

	_, err = verifying.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestSessionTokenService_Garbage verifies structural corruption is rejected.
*/
func TestSessionTokenService_Garbage(t *testing.T) {
	service := sec.NewSessionTokenService(testSessionSecret, "melody.test")

	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := service.VerifyToken(tokenString)
		assert.Error(t, err, "token %q must not verify", tokenString)
	}
}
