// WhenTo - Collaborative event calendar for self-hosted environments
// Copyright (C) 2025 WhenTo Contributors
// SPDX-License-Identifier: BSL-1.1

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Cache key prefixes
const (
	PrefixBrief = "brief"
)

// BriefKey returns the cache key for a parsed-brief lookup, keyed by a
// content hash of the input text so identical briefs share a cache entry
// regardless of length.
func BriefKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s:%s", PrefixBrief, hex.EncodeToString(sum[:]))
}
