package usecase

import "errors"

// Sentinel errors for the prediction pipeline. Both are expected, user-facing
// outcomes and never indicate a system fault; the HTTP layer maps them to
// 4xx responses with their message as the reason.
var (
	ErrMissingContentType = errors.New("please upload an image file")
	ErrNotCow             = errors.New("uploaded image does not appear to be a cow (mock heuristic)")
)

// IsInvalidUpload reports whether err is a user-facing upload rejection
// rather than an internal failure
func IsInvalidUpload(err error) bool {
	return errors.Is(err, ErrMissingContentType) || errors.Is(err, ErrNotCow)
}
