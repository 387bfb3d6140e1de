package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/peds-emergency-server/internal/domain"
)

const keyPrefix = "assessment:"

// RedisAssessmentCache is the hot cache over completed assessments. All
// Redis calls run through a circuit breaker so a failing cache degrades to
// a miss instead of stalling the assessment path.
type RedisAssessmentCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker
	log     *logrus.Logger
}

// cachedResult wraps the stored result with its write time for diagnostics
type cachedResult struct {
	Result   *domain.AnalysisResult `json:"result"`
	CachedAt time.Time              `json:"cached_at"`
}

// NewRedisAssessmentCache creates the cache from a Redis URL
func NewRedisAssessmentCache(cfg *domain.CacheConfig, logger *logrus.Logger) (*RedisAssessmentCache, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	opts.MaxRetries = cfg.MaxRetries
	opts.PoolSize = cfg.PoolSize
	opts.PoolTimeout = cfg.PoolTimeout

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "assessment-cache",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Cache circuit breaker state changed")
		},
	})

	return &RedisAssessmentCache{
		client:  redis.NewClient(opts),
		breaker: breaker,
		log:     logger,
	}, nil
}

// Get retrieves a cached assessment. A miss, an open breaker, and a Redis
// error all report found=false; only unexpected failures return an error.
func (c *RedisAssessmentCache) Get(ctx context.Context, id string) (*domain.AnalysisResult, bool, error) {
	raw, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.Get(ctx, keyPrefix+id).Bytes()
	})
	if err != nil {
		if errors.Is(err, redis.Nil) || errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, false, nil
		}
		c.log.WithError(err).WithField("assessment_id", id).Warn("Cache read failed")
		return nil, false, nil
	}

	wrapper := &cachedResult{}
	if err := json.Unmarshal(raw.([]byte), wrapper); err != nil {
		return nil, false, fmt.Errorf("unmarshaling cached assessment: %w", err)
	}
	return wrapper.Result, true, nil
}

// Set stores an assessment with the given TTL
func (c *RedisAssessmentCache) Set(ctx context.Context, id string, result *domain.AnalysisResult, ttl time.Duration) error {
	payload, err := json.Marshal(&cachedResult{
		Result:   result,
		CachedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshaling assessment for cache: %w", err)
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, c.client.Set(ctx, keyPrefix+id, payload, ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("writing assessment to cache: %w", err)
	}
	return nil
}

// Health pings Redis through the breaker
func (c *RedisAssessmentCache) Health(ctx context.Context) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.client.Ping(ctx).Err()
	})
	return err
}

// Close releases the Redis client
func (c *RedisAssessmentCache) Close() error {
	return c.client.Close()
}
