package middlewares

import (
	"net/http"
	"net/http/httptest"
	"sutra-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		var seenID interface{}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
		})

		req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
		rec := httptest.NewRecorder()
		m.RequestIDMiddleware(next).ServeHTTP(rec, req)

		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("propagates a client supplied id", func(t *testing.T) {
		var seenID interface{}
		var fromClient interface{}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenID = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
			fromClient = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY)
		})

		req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
		req.Header.Set(constvars.HeaderXRequestID, "req-123")
		rec := httptest.NewRecorder()
		m.RequestIDMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, "req-123", seenID)
		assert.Equal(t, true, fromClient)
	})
}

func TestRateLimiterLimit(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/sessions/abc/document", nil)
		req.RemoteAddr = "10.0.0.1:51000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])

	t.Run("independent buckets per ip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/sessions/abc/document", nil)
		req.RemoteAddr = "10.0.0.2:51000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
