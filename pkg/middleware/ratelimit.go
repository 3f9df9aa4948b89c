package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"store-rating/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit enforces a fixed request quota per source address per time
// window, backed by a Redis counter (INCR + EXPIRE). Applied to the auth
// route family. Fails open when Redis is unavailable so the limiter never
// takes the API down with it.
func RateLimit(cfg utils.RateLimitConfig, rdb *redis.Client, logger *zap.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled || rdb == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	window := time.Duration(cfg.WindowMinutes) * time.Minute

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("ratelimit:auth:%s", clientIP(r))
			ctx := r.Context()

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("Rate limiter redis error", zap.Error(err), zap.String("key", key))
				next.ServeHTTP(w, r)
				return
			}

			// First hit in this window starts the clock
			if count == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					logger.Warn("Rate limiter expire error", zap.Error(err), zap.String("key", key))
				}
			}

			remaining := int64(cfg.MaxRequests) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.MaxRequests) {
				ttl, err := rdb.TTL(ctx, key).Result()
				if err != nil || ttl < 0 {
					ttl = window
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))

				logger.Warn("Rate limit exceeded",
					zap.String("ip", clientIP(r)),
					zap.Int64("count", count),
					zap.String("path", r.URL.Path))
				utils.ResponseTooManyRequests(w, "Too many requests, please try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
