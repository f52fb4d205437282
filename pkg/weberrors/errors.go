// Package weberrors holds the error taxonomy shared by the workflows and
// the HTTP layer. Handlers map these to status codes in one place instead
// of re-deciding per route.
package weberrors

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated          = errors.New("not authorized")
	ErrForbidden                = errors.New("forbidden: insufficient role")
	ErrNotFound                 = errors.New("not found")
	ErrDuplicateAccount         = errors.New("user already exists")
	ErrValidation               = errors.New("missing required field")
	ErrStorageUnavailable       = errors.New("storage not ready")
	ErrStorageWriteFailed       = errors.New("file upload failed")
	ErrParse                    = errors.New("error parsing file")
	ErrSummarizationUnavailable = errors.New("failed to generate summary")
)

func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateAccount), errors.Is(err, ErrValidation), errors.Is(err, ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, ErrSummarizationUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
