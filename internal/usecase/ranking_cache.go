package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// RankingCache stores ranked results. Implementations degrade to misses when
// the backing store is down.
type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	AcquireLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, token string) error
}

const rankingKeyPrefix = "ranking:"

// RankingCacheKey scopes a cached ranking to one candidate, algorithm and
// weight table so a weights change never serves stale scores.
func RankingCacheKey(candidateID int, algorithm, weightsFingerprint string) string {
	return rankingKeyPrefix + strings.Join([]string{
		strconv.Itoa(candidateID),
		strings.ToLower(strings.TrimSpace(algorithm)),
		weightsFingerprint,
	}, ":")
}

func RankingLockKey(cacheKey string) string {
	return "ranking:lock:" + strings.TrimPrefix(cacheKey, rankingKeyPrefix)
}

// RankingPurger drops cached entries by key pattern.
type RankingPurger interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// PurgeRankings drops every cached ranking and fill lock. Run it after the
// catalog changes; cached keys do not track catalog contents.
func PurgeRankings(ctx context.Context, p RankingPurger) error {
	if p == nil {
		return nil
	}
	return p.DeleteByPattern(ctx, rankingKeyPrefix+"*")
}
