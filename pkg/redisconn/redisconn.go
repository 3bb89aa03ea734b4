// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

// Package redisconn connects the optional Redis backing for the
// brief-parse cache and the NLP rate limiter. Redis is entirely optional:
// callers treat a connection failure as "run without it" rather than a
// fatal startup error, since scheduling itself never depends on Redis.
package redisconn

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Connect parses url and pings the resulting client. An empty url fails
// to parse and is returned as an error; since an empty url simply means
// Redis was not configured, callers check for it before calling Connect.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// Close closes client, tolerating a nil client so callers can defer
// unconditionally.
func Close(client *redis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
