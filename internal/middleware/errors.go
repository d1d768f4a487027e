package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"newsapi/internal/apperr"
	"newsapi/internal/logger"
	"newsapi/internal/metrics"
	"newsapi/internal/utils/helpers"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrorHandlerFunc writes a response for err and reports true, or reports false
// so the next handler in the chain gets a try.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error) bool

// ErrorChain runs its handlers in order until one of them claims the error.
type ErrorChain []ErrorHandlerFunc

// DefaultChain classifies storage rejections first, then application errors,
// and finally answers 500 for anything left.
var DefaultChain = ErrorChain{PgErrorHandler, AppErrorHandler, InternalErrorHandler}

func (c ErrorChain) Handle(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range c {
		if h(w, r, err) {
			return
		}
	}
	InternalErrorHandler(w, r, err)
}

// HandleError renders err through DefaultChain.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	DefaultChain.Handle(w, r, err)
}

// SQLSTATE codes caused by client input.
var badRequestCodes = map[string]string{
	"22P02": "invalid_text_representation",
	"22003": "numeric_value_out_of_range",
	"23502": "not_null_violation",
	"23503": "foreign_key_violation",
	"42P18": "indeterminate_datatype",
	"08P01": "protocol_violation",
}

func PgErrorHandler(w http.ResponseWriter, r *http.Request, err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	name, ok := badRequestCodes[pgErr.Code]
	if !ok {
		return false
	}

	logger.WithCtx(r.Context()).Warn("storage rejected input",
		zap.String("sqlstate", pgErr.Code),
		zap.String("condition", name),
		zap.String("detail", pgErr.Message),
	)
	writeError(w, http.StatusBadRequest, apperr.MsgBadRequest)
	return true
}

func AppErrorHandler(w http.ResponseWriter, r *http.Request, err error) bool {
	e, ok := apperr.As(err)
	if !ok {
		return false
	}
	if e.Kind == apperr.KindInternal {
		logger.WithCtx(r.Context()).Error("internal error", zap.Error(err))
	} else {
		logger.WithCtx(r.Context()).Debug("client error", zap.Int("status", e.Status()), zap.Error(err))
	}
	writeError(w, e.Status(), e.Msg())
	return true
}

func InternalErrorHandler(w http.ResponseWriter, r *http.Request, err error) bool {
	logger.WithCtx(r.Context()).Error("unhandled error",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, apperr.MsgInternal)
	return true
}

// NotFound answers every request no route claimed, whatever its method.
func NotFound(w http.ResponseWriter, r *http.Request) {
	HandleError(w, r, apperr.NotFound(fmt.Errorf("no route for %s %s", r.Method, r.URL.Path)))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	metrics.ObserveError(status)
	helpers.Error(w, status, msg)
}
