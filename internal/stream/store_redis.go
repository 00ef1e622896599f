// Copyright (c) 2026 Melody. All rights reserved.

package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/chorogi/melody/internal/catalog/track"
	"github.com/chorogi/melody/internal/platform/constants"
)

// CachedMediaResolver fronts a [MediaResolver] with a Redis read-through
// cache.
//
// The cache is best-effort: any Redis failure (connection, corrupt payload)
// falls back to the underlying resolver and is logged, never surfaced. Only
// positive resolutions are cached — a track gaining its first media file
// becomes playable without waiting out a negative entry.
type CachedMediaResolver struct {
	next   MediaResolver
	client *redis.Client
	logger *slog.Logger
}

func NewCachedMediaResolver(next MediaResolver, client *redis.Client, logger *slog.Logger) *CachedMediaResolver {
	return &CachedMediaResolver{
		next:   next,
		client: client,
		logger: logger,
	}
}

func (resolver *CachedMediaResolver) ResolveMedia(context context.Context, trackID int64) (*track.MediaFile, error) {
	key := fmt.Sprintf("%s%d", constants.RedisPrefixMediaFile, trackID)

	cached, err := resolver.client.Get(context, key).Bytes()
	if err == nil {
		media := &track.MediaFile{}
		if err := json.Unmarshal(cached, media); err == nil {
			return media, nil
		}
		// Corrupt entry: drop it and fall through to the resolver.
		resolver.client.Del(context, key)
	} else if err != redis.Nil {
		resolver.logger.Warn("media_cache_read_failed",
			slog.Int64("track_id", trackID),
			slog.Any("error", err),
		)
	}

	media, err := resolver.next.ResolveMedia(context, trackID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(media); err == nil {
		if err := resolver.client.Set(context, key, payload, constants.MediaCacheTTL).Err(); err != nil {
			resolver.logger.Warn("media_cache_write_failed",
				slog.Int64("track_id", trackID),
				slog.Any("error", err),
			)
		}
	}

	return media, nil
}
