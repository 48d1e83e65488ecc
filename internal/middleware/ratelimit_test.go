package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request over the limit should be rejected")
	}

	// A different IP has its own window.
	if !rl.Allow("10.0.0.2") {
		t.Error("different IP should not share the window")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second request should be rejected")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("request after the window should be allowed again")
	}
}

func TestRateLimiter_RejectedRetriesDoNotExtendWindow(t *testing.T) {
	rl := NewRateLimiter(1, 100*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	for i := 0; i < 3; i++ {
		time.Sleep(20 * time.Millisecond)
		if rl.Allow("10.0.0.1") {
			t.Fatalf("retry %d inside the window should be rejected", i+1)
		}
	}

	// 120ms after the last allowed request the window has expired, even
	// though rejected retries kept arriving inside it.
	time.Sleep(60 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Error("request after the window should be allowed despite earlier retries")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, time.Minute)

	router := gin.New()
	router.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/login", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/login", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}
