// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package cache

import (
	"context"
	"time"
)

// TTLBrief is the default expiry for cached brief-parse results.
const TTLBrief = 10 * time.Minute

// GetWithFallback tries to get a value from cache, and if not found or cache is
// disabled, calls the fallback function and populates the cache for next time.
func GetWithFallback[T any](ctx context.Context, c Cache, key string, ttl time.Duration, fallbackFn func() (T, error)) (T, error) {
	var result T

	if !c.IsEnabled() {
		return fallbackFn()
	}

	if err := c.Get(ctx, key, &result); err == nil {
		return result, nil
	}

	result, err := fallbackFn()
	if err != nil {
		return result, err
	}

	_ = c.Set(ctx, key, result, ttl)

	return result, nil
}
