package app

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"

	"github.com/Chudy3122/doradca-ai/internal/config"
)

// Pinger is the minimal interface for a database pool capable of Ping.
type Pinger interface{ Ping(ctx context.Context) error }

// RedisPingResult is the minimal return type of a Redis client's Ping.
type RedisPingResult interface{ Err() error }

// RedisClient is the minimal interface for a Redis client needed for readiness.
type RedisClient interface {
	Ping(ctx context.Context) RedisPingResult
}

// BuildReadinessChecks returns four readiness checks: db, redis, the PDF
// renderer binary, and the AI endpoint configuration.
func BuildReadinessChecks(cfg config.Config, pool Pinger, rdb RedisClient) (
	func(ctx context.Context) error,
	func(ctx context.Context) error,
	func(ctx context.Context) error,
	func(ctx context.Context) error,
) {
	dbCheck := func(ctx context.Context) error {
		if pool == nil {
			return fmt.Errorf("db not configured")
		}
		return pool.Ping(ctx)
	}
	redisCheck := func(ctx context.Context) error {
		if rdb == nil {
			return fmt.Errorf("redis not configured")
		}
		return rdb.Ping(ctx).Err()
	}
	pdfCheck := func(ctx context.Context) error {
		if cfg.ChromiumPath == "" {
			return fmt.Errorf("chromium path not configured")
		}
		// Version probe only; a full render is too heavy for readiness.
		return exec.CommandContext(ctx, cfg.ChromiumPath, "--version").Run()
	}
	aiCheck := func(_ context.Context) error {
		// Config probe only; a live completion call would burn quota.
		u, err := url.Parse(cfg.OpenRouterBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid AI base URL %q", cfg.OpenRouterBaseURL)
		}
		return nil
	}
	return dbCheck, redisCheck, pdfCheck, aiCheck
}
