package middleware

import (
	"net/http"
	"runtime/debug"

	"newsapi/internal/apperr"
	"newsapi/internal/logger"

	"go.uber.org/zap"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.WithCtx(r.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				writeError(w, http.StatusInternalServerError, apperr.MsgInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
