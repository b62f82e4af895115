package iocache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/devlens/devlens/internal/contract"
	"github.com/devlens/devlens/internal/logging"
	"github.com/devlens/devlens/schema"
	"go.uber.org/zap"
)

// LookupResult attempts to retrieve and validate a cached scoring result.
// Returns nil on any miss: absent key, stale entry, version mismatch or a
// payload that no longer unmarshals.
func LookupResult(store contract.CacheStore, username string) *schema.ScoringResult {
	if store == nil {
		return nil
	}

	data, version, ts, err := store.Get(resultCacheKey(username))
	if err != nil {
		return nil // Cache miss
	}

	if version != schema.ResultVersion {
		return nil
	}
	if time.Since(time.Unix(ts, 0)) > contract.CacheTTL {
		return nil
	}

	var result schema.ScoringResult
	if err := json.Unmarshal(data, &result); err != nil {
		logging.Warn("discarding unreadable cache entry",
			zap.String("username", username), zap.Error(err))
		return nil
	}
	return &result
}

// StoreResult writes a scoring result to the cache. Failures are logged
// and swallowed; caching is best effort.
func StoreResult(store contract.CacheStore, username string, result *schema.ScoringResult) {
	if store == nil || result == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		logging.Warn("failed to serialize result for caching",
			zap.String("username", username), zap.Error(err))
		return
	}
	if err := store.Set(resultCacheKey(username), data, schema.ResultVersion, time.Now().Unix()); err != nil {
		logging.Warn("failed to cache result",
			zap.String("username", username), zap.Error(err))
	}
}

// resultCacheKey creates a stable key per user. Usernames are
// case-insensitive on GitHub, so the key is normalized first.
func resultCacheKey(username string) string {
	key := "profile-score:" + strings.ToLower(strings.TrimSpace(username))
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
