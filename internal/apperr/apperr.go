// Package apperr defines the closed set of failures the API reports to clients.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
)

// Client-visible messages.
const (
	MsgBadRequest = "bad request"
	MsgNotFound   = "not found"
	MsgInternal   = "Internal Server Error"
)

// Error carries a Kind and the underlying cause. The cause is for logs only.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg() + ": " + e.Err.Error()
	}
	return e.Msg()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNotFound) works on wrapped values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Err == nil
}

func (e *Error) Status() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (e *Error) Msg() string {
	switch e.Kind {
	case KindBadRequest:
		return MsgBadRequest
	case KindNotFound:
		return MsgNotFound
	default:
		return MsgInternal
	}
}

var (
	ErrBadRequest = &Error{Kind: KindBadRequest}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrInternal   = &Error{Kind: KindInternal}
)

func BadRequest(err error) error { return &Error{Kind: KindBadRequest, Err: err} }

func NotFound(err error) error { return &Error{Kind: KindNotFound, Err: err} }

func Internal(err error) error { return &Error{Kind: KindInternal, Err: err} }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsBadRequest(err error) bool { return errors.Is(err, ErrBadRequest) }

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
