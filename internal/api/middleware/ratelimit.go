package middleware

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// AnalyzeRateLimiter throttles analysis requests per user. Each user gets
// an independent token bucket; limiters for idle users stay in the map for
// the process lifetime, which is acceptable at this user scale.
type AnalyzeRateLimiter struct {
	mu       sync.Mutex
	limiters map[uuid.UUID]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewAnalyzeRateLimiter allows perMinute analyses per user with a burst of
// the same size
func NewAnalyzeRateLimiter(perMinute int) *AnalyzeRateLimiter {
	if perMinute <= 0 {
		perMinute = 3
	}
	return &AnalyzeRateLimiter{
		limiters: make(map[uuid.UUID]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

func (l *AnalyzeRateLimiter) limiterFor(userID uuid.UUID) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = lim
	}
	return lim
}

// Handler returns the fiber middleware enforcing the limit
func (l *AnalyzeRateLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uuid.UUID)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized, user information missing",
			})
		}

		if !l.limiterFor(userID).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "분석 요청이 너무 잦습니다. 잠시 후 다시 시도해주세요.",
			})
		}
		return c.Next()
	}
}
