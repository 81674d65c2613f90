package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("burst is allowed then limited", func(t *testing.T) {
		rl := NewRateLimiter(1, 2)

		r := gin.New()
		r.POST("/v1/nfts", rl.Handle(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		for i := 0; i < 2; i++ {
			req := httptest.NewRequest(http.MethodPost, "/v1/nfts", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: expected 200, got %d", i, w.Code)
			}
		}

		req := httptest.NewRequest(http.MethodPost, "/v1/nfts", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "RATE_LIMITED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		rl := NewRateLimiter(1, 1)

		r := gin.New()
		r.POST("/v1/nfts", rl.Handle(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		first := httptest.NewRequest(http.MethodPost, "/v1/nfts", nil)
		first.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, first)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for first client, got %d", w.Code)
		}

		exhausted := httptest.NewRequest(http.MethodPost, "/v1/nfts", nil)
		exhausted.RemoteAddr = "10.0.0.1:1234"
		w = httptest.NewRecorder()
		r.ServeHTTP(w, exhausted)
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 for exhausted client, got %d", w.Code)
		}

		other := httptest.NewRequest(http.MethodPost, "/v1/nfts", nil)
		other.RemoteAddr = "10.0.0.2:1234"
		w = httptest.NewRecorder()
		r.ServeHTTP(w, other)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for other client, got %d", w.Code)
		}
	})
}
