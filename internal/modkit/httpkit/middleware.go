package httpkit

import (
	"net/http"
	"time"

	"tzdetect/internal/platform/net/middleware"
)

// CommonStack returns the baseline per module middleware slice
// server wide concerns (request id, recovery, timeout) live in middleware.Defaults
func CommonStack(slow time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.NoCache(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: slow}),
	}
}
