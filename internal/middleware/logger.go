package middleware

import (
	"context"
	"net/http"
	"time"

	"newsapi/internal/logger"
	"newsapi/internal/metrics"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ctxKey string

const ctxRoute ctxKey = "route"

const unmatchedRoute = "unmatched"

type routeInfo struct{ template string }

// Logging logs one line per request and feeds the request metrics. It wraps the
// router from outside, so the route template is filled in later by Route.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		info := &routeInfo{template: unmatchedRoute}
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r.WithContext(context.WithValue(r.Context(), ctxRoute, info)))

		metrics.ObserveRequest(r.Method, info.template, lrw.statusCode, start)

		logger.WithCtx(r.Context()).Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("route", info.template),
			zap.Int("status", lrw.statusCode),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Route records the matched mux path template for Logging. Register it with router.Use.
func Route(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if info, ok := r.Context().Value(ctxRoute).(*routeInfo); ok {
			if cur := mux.CurrentRoute(r); cur != nil {
				if tpl, err := cur.GetPathTemplate(); err == nil {
					info.template = tpl
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
