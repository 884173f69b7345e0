package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// ErrCacheMiss is returned for absent keys and whenever the cache is
// unavailable (no client configured, breaker open, Redis down). Callers
// treat every miss the same way: recompute.
var ErrCacheMiss = errors.New("cache miss")

// CacheService is a thin JSON cache over Redis. A nil client makes
// every operation a clean miss, and a circuit breaker keeps a dead
// Redis from slowing requests down: analysis results are always
// recomputable, so the cache is allowed to fail.
type CacheService struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	logger  *logrus.Logger
}

func NewCacheService(client *redis.Client, logger *logrus.Logger) *CacheService {
	settings := gobreaker.Settings{
		Name:    "redis-cache",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "cache",
				"breaker":   name,
				"from":      from.String(),
				"to":        to.String(),
			}).Warn("Cache circuit breaker state changed")
		},
	}
	return &CacheService{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Enabled reports whether a Redis client is configured at all.
func (s *CacheService) Enabled() bool {
	return s != nil && s.client != nil
}

// Get unmarshals the cached value for key into dest. Absent keys,
// disabled cache and Redis failures all surface as ErrCacheMiss. An
// absent key is a healthy answer, not a Redis failure, so only
// transport errors count against the breaker.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	if !s.Enabled() {
		return ErrCacheMiss
	}
	data, err := s.breaker.Execute(func() (interface{}, error) {
		b, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return b, err
	})
	if err != nil {
		s.logger.WithField("component", "cache").WithError(err).Debug("Cache get failed")
		return ErrCacheMiss
	}
	b, ok := data.([]byte)
	if !ok {
		return ErrCacheMiss
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return ErrCacheMiss
	}
	return nil
}

// Set stores value under key for the given TTL. Failures are logged
// and swallowed: losing a cache write never fails a request.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if !s.Enabled() {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.WithField("component", "cache").WithError(err).Warn("Cache marshal failed")
		return
	}
	if _, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.client.Set(ctx, key, data, ttl).Err()
	}); err != nil {
		s.logger.WithField("component", "cache").WithError(err).Debug("Cache set failed")
	}
}

// SquadCacheKey fingerprints a squad selection by everything that can
// change its output: dataset version, threshold and the requirement
// table (rendered in fixed order).
func SquadCacheKey(datasetVersion string, threshold float64, requirements models.PositionRequirements) string {
	return fmt.Sprintf("squad:%s:%.4f:%s", datasetVersion, threshold, requirements)
}
