package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/matching"
	"grad-match/internal/domain/posting"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const rankingLockTTL = 10 * time.Second

type RankInput struct {
	CandidateID int
	// Algorithm is the raw query value; empty selects the configured default.
	Algorithm string
}

type RankingResult struct {
	Candidate candidate.Candidate
	Algorithm matching.Algorithm
	Jobs      []posting.Scored
	Cached    bool
}

type RankingUsecase interface {
	Rank(ctx context.Context, in RankInput) (RankingResult, error)
}

type Ranking struct {
	candidates candidate.Repository
	postings   posting.Repository
	engine     *matching.Engine
	cache      RankingCache
	defaultAlg matching.Algorithm
	log        *zap.Logger
}

func NewRankingUsecase(
	candidates candidate.Repository,
	postings posting.Repository,
	engine *matching.Engine,
	cache RankingCache,
	defaultAlg matching.Algorithm,
	log *zap.Logger,
) *Ranking {
	if log == nil {
		log = zap.NewNop()
	}
	if defaultAlg == "" {
		defaultAlg = matching.AlgorithmHierarchical
	}
	return &Ranking{
		candidates: candidates,
		postings:   postings,
		engine:     engine,
		cache:      cache,
		defaultAlg: defaultAlg,
		log:        log.Named("ranking"),
	}
}

func (u *Ranking) Rank(ctx context.Context, in RankInput) (RankingResult, error) {
	if in.CandidateID <= 0 {
		return RankingResult{}, ErrUnauthorized
	}

	alg := u.defaultAlg
	if raw := strings.TrimSpace(in.Algorithm); raw != "" {
		parsed, err := matching.ParseAlgorithm(raw)
		if err != nil {
			return RankingResult{}, ErrInvalidInput
		}
		alg = parsed
	}

	c, err := u.candidates.GetByID(ctx, in.CandidateID)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return RankingResult{}, ErrCandidateNotFound
		}
		u.log.Error("load candidate", zap.Int("candidate_id", in.CandidateID), zap.Error(err))
		return RankingResult{}, ErrInternal
	}
	c.RecordHash = ""

	res := RankingResult{Candidate: c, Algorithm: alg}

	cacheKey := RankingCacheKey(c.ID, string(alg), u.engine.Weights().Fingerprint())
	if jobs, ok := u.cached(ctx, cacheKey); ok {
		res.Jobs = jobs
		res.Cached = true
		return res, nil
	}

	lockKey := RankingLockKey(cacheKey)
	token := uuid.NewString()
	locked := false
	if u.cache != nil {
		ok, err := u.cache.AcquireLock(ctx, lockKey, token, rankingLockTTL)
		locked = err == nil && ok
		if err == nil && !ok {
			// Another request may have just filled the entry.
			if jobs, hit := u.cached(ctx, cacheKey); hit {
				res.Jobs = jobs
				res.Cached = true
				return res, nil
			}
		}
	}

	postings, err := u.postings.List(ctx)
	if err != nil {
		u.log.Error("list postings", zap.Error(err))
		if locked {
			_ = u.cache.ReleaseLock(ctx, lockKey, token)
		}
		return RankingResult{}, ErrInternal
	}

	jobs, err := u.engine.Rank(c, alg, postings)
	if err != nil {
		if locked {
			_ = u.cache.ReleaseLock(ctx, lockKey, token)
		}
		return RankingResult{}, ErrInvalidInput
	}
	res.Jobs = jobs

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, jobs, 0); err != nil {
			u.log.Warn("cache ranking", zap.String("key", cacheKey), zap.Error(err))
		}
		if locked {
			_ = u.cache.ReleaseLock(ctx, lockKey, token)
		}
	}

	return res, nil
}

func (u *Ranking) cached(ctx context.Context, key string) ([]posting.Scored, bool) {
	if u.cache == nil {
		return nil, false
	}
	var jobs []posting.Scored
	hit, err := u.cache.GetJSON(ctx, key, &jobs)
	if err != nil || !hit {
		return nil, false
	}
	if jobs == nil {
		jobs = []posting.Scored{}
	}
	u.log.Debug("cache hit", zap.String("key", key))
	return jobs, true
}
