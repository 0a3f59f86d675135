package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 3}

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("session-1|WRITE", rule)
		if !allowed {
			t.Fatalf("request %d: expected allowed within burst", i+1)
		}
	}

	allowed, retryAfter := limiter.Allow("session-1|WRITE", rule)
	if allowed {
		t.Fatal("expected request beyond burst to be rejected")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", retryAfter)
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("session-1|WRITE", rule); !allowed {
		t.Fatal("expected first request allowed")
	}
	if allowed, _ := limiter.Allow("session-1|WRITE", rule); allowed {
		t.Fatal("expected second request rejected")
	}

	now = now.Add(2 * time.Second)
	if allowed, _ := limiter.Allow("session-1|WRITE", rule); !allowed {
		t.Fatal("expected request allowed after refill")
	}
}

func TestRateLimiterIsolatesPrincipals(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("session-1|WRITE", rule); !allowed {
		t.Fatal("expected session-1 allowed")
	}
	if allowed, _ := limiter.Allow("session-1|WRITE", rule); allowed {
		t.Fatal("expected session-1 exhausted")
	}
	if allowed, _ := limiter.Allow("session-2|WRITE", rule); !allowed {
		t.Fatal("expected session-2 unaffected by session-1's bucket")
	}
}

func TestRateLimiterZeroRuleIsUnlimited(t *testing.T) {
	limiter := NewRateLimiter(nil)

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("session-1|READ", RateLimitRule{}); !allowed {
			t.Fatalf("request %d: expected unlimited with zero rule", i+1)
		}
	}
}
