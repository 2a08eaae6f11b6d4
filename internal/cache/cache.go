// Package cache provides an in-memory, content-addressed result cache for
// matching scores. Scoring is deterministic, so identical (cv, job) input
// pairs can safely reuse a previous result.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jonathan/cv-matcher/internal/types"
)

const (
	// DefaultMaxEntries bounds the cache; eviction is LRU.
	DefaultMaxEntries = 512
	// DefaultTTL keeps entries fresh enough that upstream taxonomy or
	// profile changes across deploys cannot serve stale scores for long.
	DefaultTTL = 20 * time.Minute
)

// ScoreCache is a bounded TTL+LRU cache keyed by a content hash of the two
// input records. Safe for concurrent use.
type ScoreCache struct {
	entries *lru.Cache[string, entry]
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	storedAt time.Time
	score    *types.MatchingScore
}

// New creates a ScoreCache. maxEntries must be positive; a zero ttl falls
// back to DefaultTTL.
func New(maxEntries int, ttl time.Duration) (*ScoreCache, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("cache size must be positive, got %d", maxEntries)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	entries, err := lru.New[string, entry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}

	return &ScoreCache{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Key derives the cache key for a (cv, job) pair: the SHA-256 of both
// records' canonical JSON. Deterministic because struct field order fixes the
// marshaled form.
func Key(cv *types.CVAnalysis, job *types.JobRequirements) (string, error) {
	cvJSON, err := json.Marshal(cv)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cv analysis: %w", err)
	}
	jobJSON, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	digest := sha256.New()
	digest.Write(cvJSON)
	digest.Write([]byte{0})
	digest.Write(jobJSON)
	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Get returns the cached score for key, treating expired entries as misses.
func (c *ScoreCache) Get(key string) (*types.MatchingScore, bool) {
	cached, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if c.now().Sub(cached.storedAt) > c.ttl {
		c.entries.Remove(key)
		return nil, false
	}
	return cached.score, true
}

// Set stores a score under key.
func (c *ScoreCache) Set(key string, score *types.MatchingScore) {
	c.entries.Add(key, entry{storedAt: c.now(), score: score})
}

// Len returns the number of entries currently held, including any not yet
// expired-on-read.
func (c *ScoreCache) Len() int {
	return c.entries.Len()
}
