// Copyright (c) 2026 Melody. All rights reserved.

/*
Package stream implements token-gated media delivery.

Playback is a two-step handshake. A logged-in client first exchanges its
session for a short-lived, single-track capability token. The delivery
endpoint then accepts only that token — it never consults session state, so
a playback URL works wherever the token is still fresh and nowhere after.

The delivery pipeline is terminal on first failure: missing token, invalid
token, unresolvable media, unreachable file. Once headers are written the
playback log insert is dispatched in the background and can no longer affect
the response.
*/
package stream

import "time"

// PlaybackGrant is the response to a successful token request.
//
// ExpiresIn is the token lifetime in whole seconds, for clients that want to
// refresh proactively.
type PlaybackGrant struct {
	URL       string `json:"url"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// PlaybackSource describes an authorized, resolved media file ready to be
// streamed.
type PlaybackSource struct {
	TrackID   int64
	SubjectID *int64

	// AbsolutePath points at the file on disk; Size and MIMEType feed the
	// Content-Length and Content-Type headers.
	AbsolutePath string
	Size         int64
	MIMEType     string
}

// PlaybackLog is one row of the playback audit trail.
//
// UserID is nil for tokens issued without a subject. PlayedMs is recorded as
// zero at delivery time; actual listening duration is a client-side concern.
type PlaybackLog struct {
	ID        int64
	UserID    *int64
	TrackID   int64
	PlayedMs  int
	ClientIP  string
	CreatedAt time.Time
}

const (
	FieldTrackID = "track_id"
	FieldToken   = "token"
)
