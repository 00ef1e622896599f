// Copyright (c) 2026 Melody. All rights reserved.

package sec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// StreamClaims is the payload of a playback capability token.
//
// A capability token scopes access to exactly one track. The subject (the
// standard "sub" claim, holding the user id) is optional: it is recorded for
// playback-log attribution only and its absence never blocks issuance.
type StreamClaims struct {
	jwt.RegisteredClaims

	TrackID int64 `json:"tid"`
}

// SubjectUserID returns the user id carried in the "sub" claim, or nil when
// the token was issued without one.
func (claims *StreamClaims) SubjectUserID() *int64 {
	if claims.Subject == "" {
		return nil
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// StreamTokenService mints and verifies playback capability tokens.
//
// # Decoupling
//
// The service is deliberately independent of session state: verification
// needs only the token and the shared stream secret — no live session, no
// database lookup of the issuing identity. The delivery endpoint is thereby
// a pure function of the token and could be served by a separate process or
// cached at an edge layer.
type StreamTokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewStreamTokenService creates a new StreamTokenService.
//
// The secret must differ from the session secret so that rotating either one
// leaves the other's outstanding tokens intact.
func NewStreamTokenService(secret, issuer string, ttl time.Duration) *StreamTokenService {
	return &StreamTokenService{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// TTL returns the configured token lifetime.
func (service *StreamTokenService) TTL() time.Duration {
	return service.ttl
}

// Issue mints a capability token for a single track.
//
// subjectID may be nil. Issuance always succeeds for well-formed input; the
// absolute expiry is fixed at issuance time.
func (service *StreamTokenService) Issue(trackID int64, subjectID *int64) (string, error) {
	currentTime := time.Now()
	claims := StreamClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		TrackID: trackID,
	}
	if subjectID != nil {
		claims.Subject = strconv.FormatInt(*subjectID, 10)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign stream token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of a capability token.
//
// Verification is all-or-nothing: signature mismatch, structural corruption,
// and elapsed expiry all collapse into a single error so that callers cannot
// distinguish them (and clients learn nothing).
func (service *StreamTokenService) Verify(tokenString string) (*StreamClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StreamClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid or expired stream token: %w", err)
	}

	claims, ok := token.Claims.(*StreamClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid stream token claims")
	}

	return claims, nil
}
