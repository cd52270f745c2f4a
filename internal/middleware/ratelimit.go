package middleware

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"translation-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

// DefaultSweepInterval is how often Run drops idle limiters.
const DefaultSweepInterval = 5 * time.Minute

// LoginLimiter throttles login attempts per email address.
type LoginLimiter struct {
	limiters sync.Map
	every    rate.Limit
	burst    int
	now      func() time.Time
}

func NewLoginLimiter(burst int, interval time.Duration) *LoginLimiter {
	if burst < 1 {
		burst = 1
	}
	return &LoginLimiter{
		every: rate.Every(interval),
		burst: burst,
		now:   time.Now,
	}
}

func (l *LoginLimiter) Allow(email string) bool {
	v, _ := l.limiters.LoadOrStore(email, rate.NewLimiter(l.every, l.burst))
	return v.(*rate.Limiter).AllowN(l.now(), 1)
}

// Sweep removes limiters whose bucket has refilled, returning how many were
// dropped. A full bucket behaves exactly like a fresh limiter.
func (l *LoginLimiter) Sweep() int {
	now := l.now()
	removed := 0
	l.limiters.Range(func(key, value any) bool {
		limiter := value.(*rate.Limiter)
		if limiter.TokensAt(now) >= float64(limiter.Burst()) {
			l.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Len reports how many emails currently have a limiter.
func (l *LoginLimiter) Len() int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// Run sweeps on every tick until ctx is done.
func (l *LoginLimiter) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}

// Handler peeks at the JSON body's email field. Bodies it cannot read are
// passed through for the handler to reject.
func (l *LoginLimiter) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(c.Body(), &body); err != nil || body.Email == "" {
			return c.Next()
		}
		if !l.Allow(body.Email) {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "Too many login attempts, try again later")
		}
		return c.Next()
	}
}
