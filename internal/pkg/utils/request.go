package utils

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// QueryLimit reads a bounded ?limit= query parameter with a default.
func QueryLimit(r *http.Request, defaultLimit, maxLimit int) int {
	raw := r.URL.Query().Get("limit")
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
