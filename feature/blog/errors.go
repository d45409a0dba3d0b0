package blog

import (
	"errors"
	"net/http"

	"blog-sync/core/remote"
	"blog-sync/feature/blog/bootstrap"
	"blog-sync/feature/blog/models"
)

var (
	// ErrArchiveDisabled is returned when reports are requested without a storage archive.
	ErrArchiveDisabled = errors.New("report archive is disabled")
	// ErrUnknownRun is returned for a run name other than bootstrap or synchronize.
	ErrUnknownRun = errors.New("unknown run")
)

// StatusFor maps a run error to the HTTP status of the trigger API.
func StatusFor(err error) int {
	var te *remote.TransportError
	var mfe *models.MissingFieldError

	switch {
	case errors.Is(err, bootstrap.ErrPrecondition):
		return http.StatusConflict
	case errors.As(err, &te), errors.As(err, &mfe):
		return http.StatusBadGateway
	case errors.Is(err, ErrArchiveDisabled):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownRun):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
