package errutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/breedsense/breedsense/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// HandleHTTP logs the error and writes an HTTP error response carrying the
// error message. Use it for 4xx-class failures where the reason is meant for
// the caller.
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	logHTTPError(ctx, err, statusCode)
	http.Error(w, err.Error(), statusCode)
}

// HandleHTTPOpaque logs the full error server-side but writes only the given
// message to the client. Use it for 5xx-class failures so internal detail is
// never leaked.
func HandleHTTPOpaque(ctx context.Context, w http.ResponseWriter, err error, message string, statusCode int) {
	if err == nil {
		return
	}

	logHTTPError(ctx, err, statusCode)
	http.Error(w, message, statusCode)
}

func logHTTPError(ctx context.Context, err error, statusCode int) {
	logger := logging.From(ctx)

	// Always log errors, especially 5xx errors, with goerr context when present
	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
		)
	}

	if statusCode >= http.StatusInternalServerError {
		sentry.CaptureException(err)
	}
}
