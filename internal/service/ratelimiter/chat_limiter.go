// Package ratelimiter implements a Redis-backed token bucket used to bound
// per-user LLM chat traffic. State lives in Redis so the limit holds across
// replicas; a nil limiter allows everything, which keeps dev setups simple.
package ratelimiter

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// BucketConfig describes one token bucket: burst capacity plus steady refill.
type BucketConfig struct {
	Capacity   int64
	RefillRate float64
}

// PerMinute derives a bucket allowing perMinute requests with equal burst.
func PerMinute(perMinute int) BucketConfig {
	if perMinute <= 0 {
		return BucketConfig{}
	}
	return BucketConfig{
		Capacity:   int64(perMinute),
		RefillRate: float64(perMinute) / 60.0,
	}
}

// ChatLimiter applies one shared BucketConfig to every logical key, so each
// user gets an independent bucket with identical limits.
type ChatLimiter struct {
	redis  *redis.Client
	cfg    BucketConfig
	script *redis.Script
}

// NewChatLimiter builds a limiter over rdb. Returns nil when rdb is nil or
// the bucket is unbounded; callers treat a nil limiter as allow-all.
func NewChatLimiter(rdb *redis.Client, cfg BucketConfig) *ChatLimiter {
	if rdb == nil || cfg.Capacity <= 0 || cfg.RefillRate <= 0 {
		return nil
	}
	return &ChatLimiter{
		redis:  rdb,
		cfg:    cfg,
		script: redis.NewScript(luaTokenBucketScript),
	}
}

// The script refills lazily on each call, so idle buckets cost nothing.
const luaTokenBucketScript = `
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local refill_rate = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local cost = tonumber(ARGV[4])

local tokens = capacity
local last_refill = now

local data = redis.call("HMGET", key, "tokens", "last_refill")
if data[1] ~= false and data[1] ~= nil then
  tokens = tonumber(data[1])
end
if data[2] ~= false and data[2] ~= nil then
  last_refill = tonumber(data[2])
end

if last_refill == nil then
  last_refill = now
end

local delta = now - last_refill
if delta < 0 then
  delta = 0
end

tokens = math.min(capacity, tokens + delta * refill_rate)
last_refill = now

local allowed = 0
local retry_after = 0

if tokens >= cost then
  tokens = tokens - cost
  allowed = 1
else
  local shortage = cost - tokens
  if refill_rate > 0 then
    retry_after = shortage / refill_rate
  end
end

redis.call("HMSET", key, "tokens", tokens, "last_refill", last_refill)
redis.call("EXPIRE", key, 3600)

return { allowed, tokens, last_refill, retry_after }
`

// Allow consumes cost tokens from the bucket identified by key. When the
// bucket is exhausted it reports how long until the request would fit.
// Redis errors fail open so a cache outage never blocks chat entirely.
func (l *ChatLimiter) Allow(ctx context.Context, key string, cost int64) (bool, time.Duration, error) {
	if l == nil || l.redis == nil {
		return true, 0, nil
	}
	if cost <= 0 {
		cost = 1
	}

	nowSec := float64(time.Now().UnixNano()) / 1e9
	redisKey := "chat:rate:" + key
	res, err := l.script.Run(ctx, l.redis, []string{redisKey}, l.cfg.Capacity, l.cfg.RefillRate, nowSec, cost).Result()
	if err != nil {
		slog.Error("rate limiter script error", slog.String("key", key), slog.Any("error", err))
		return true, 0, err
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) < 4 {
		slog.Error("rate limiter unexpected script result", slog.String("key", key), slog.Any("result", res))
		return true, 0, nil
	}

	allowed := toInt64(vals[0]) == 1
	retryAfter := time.Duration(toFloat64(vals[3]) * float64(time.Second))
	return allowed, retryAfter, nil
}

func toInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	default:
		return 0
	}
}

func toFloat64(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int64:
		return float64(t)
	case int:
		return float64(t)
	default:
		return math.NaN()
	}
}
