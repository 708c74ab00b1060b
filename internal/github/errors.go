package github

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v60/github"
)

// APIError wraps a failed GitHub call with the HTTP status and the
// logical endpoint it hit.
type APIError struct {
	StatusCode int
	Endpoint   string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github: %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("github: %s: %v", e.Endpoint, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// apiError wraps err as an *APIError, extracting the HTTP status when
// the underlying library exposes one.
func apiError(endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		StatusCode: statusCode(err),
		Endpoint:   endpoint,
		Err:        err,
	}
}

func statusCode(err error) int {
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode
	}
	return 0
}

// IsPermanent reports whether err is a permanent API error (missing
// resource or insufficient scope). Permanent errors are logged per item
// and the run continues with the remaining items.
func IsPermanent(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 403, 404, 410:
			return true
		}
	}
	return false
}

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
