package middleware

import (
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "tzdetect/internal/platform/errors"
	"tzdetect/internal/platform/logger"
	pnet "tzdetect/internal/platform/net"
	phttp "tzdetect/internal/platform/net/http"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs the stack with the request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			// http.ErrAbortHandler is how handlers abort on purpose
			if v == stdhttp.ErrAbortHandler {
				panic(v)
			}

			stack := strings.Join(strings.Split(string(debug.Stack()), "\n"), "\n\t")
			logger.C(r.Context(), logger.Named("http")).Error().
				Interface("panic", v).
				Msgf("panic recovered\n%s", stack)

			if reqID := pnet.RequestID(r.Context()); reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			phttp.RespondError(w, r, perr.New(perr.ErrorCodeUnknown, "panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
