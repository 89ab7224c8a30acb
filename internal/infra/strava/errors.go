package strava

import (
	"context"
	"net"
	"net/http"
	"os"

	domainerrors "bpaml/internal/domain/errors"
	"bpaml/internal/errors"
)

// transientError marks failures worth another attempt: timeouts, connection errors, 429 and 5xx.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (e *transientError) Unwrap() error { return e.err }

func transient(err error) error {
	return &transientError{err: err}
}

func isTransient(err error) bool {
	var t *transientError

	return errors.As(err, &t)
}

// classifyStatus maps a non-2xx status of the activity endpoints to a domain error.
func classifyStatus(status int, notFound error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domainerrors.ErrProviderAuthInvalid.WrapMessage("strava rejected the access token")
	case status == http.StatusNotFound && notFound != nil:
		return notFound
	case status == http.StatusTooManyRequests:
		return transient(domainerrors.ErrProviderUnavailable.WrapMessage("strava rate limit exceeded"))
	case status >= http.StatusInternalServerError:
		return transient(errors.Wrapf(domainerrors.ErrProviderUnavailable, "strava returned status %d", status))
	default:
		return errors.Wrapf(domainerrors.ErrProviderUnavailable, "strava returned unexpected status %d", status)
	}
}

// classifyTransportError maps a failed round trip. Timeouts of the request's own deadline
// are transient; cancellation by the caller is returned as is.
func classifyTransportError(parent context.Context, err error) error {
	if parent.Err() != nil {
		return errors.WithStack(parent.Err())
	}

	var netErr net.Error
	if errors.IsAny(err, context.DeadlineExceeded, os.ErrDeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return transient(errors.Wrap(domainerrors.ErrProviderUnavailable, "strava request timed out"))
	}

	return transient(errors.Wrapf(domainerrors.ErrProviderUnavailable, "strava request failed: %v", err))
}
