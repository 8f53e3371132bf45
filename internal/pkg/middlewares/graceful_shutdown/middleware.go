package graceful_shutdown

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync/atomic"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/handlers/rest/response"
)

// Middleware answers 503 once shutdown has started and in-flight requests are being drained.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Connection", "close")
					w.Header().Set("Retry-After", strconv.Itoa(response.RetryAfterSeconds))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusServiceUnavailable)
					_ = json.NewEncoder(w).Encode(dto.Error{
						Error: "service is shutting down",
						Kind:  "shutting_down",
					})
					return
				}
			default:
			}
			next.ServeHTTP(w, r)
		})
	}
}
