// Copyright (c) 2026 Melody. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire service.

It defines default timeouts, token lifetimes, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Idle timeouts for the HTTP server.
  - Security: JWT issuer, token lifetimes, client IP retention.
  - Streaming: defaults for the media delivery path.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "melody-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Generous because admin track uploads send whole audio files in one
	// multipart body.
	DefaultReadTimeout = 120 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// The server intentionally sets no WriteTimeout: media delivery streams an
	// entire audio file in one response and must not be cut mid-transfer.
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "melody.chorogi.app"

	// SessionTokenTTL is the lifetime of a login session credential.
	SessionTokenTTL = 7 * 24 * time.Hour

	// StreamTokenTTL is the lifetime of a single-track playback token.
	// Strictly shorter than SessionTokenTTL: a leaked playback URL goes
	// stale in minutes.
	StreamTokenTTL = 5 * time.Minute
)

// # Streaming

const (
	// DefaultStreamMIMEType is used when a media file has no recorded MIME type.
	DefaultStreamMIMEType = "audio/mpeg"

	// ClientIPMaxLength is the number of characters of the client IP retained
	// in playback log rows (fits an IPv6 address, column is VARCHAR(45)).
	ClientIPMaxLength = 45

	// MediaCacheTTL bounds how long a resolved media file stays in Redis.
	MediaCacheTTL = 10 * time.Minute
)

// # Request Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixMediaFile = "stream:media_file:"
)
