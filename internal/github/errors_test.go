package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-github/v60/github"
)

func respErr(status int) *github.ErrorResponse {
	return &github.ErrorResponse{Response: &http.Response{StatusCode: status}}
}

func TestAPIErrorMessage(t *testing.T) {
	err := apiError("GET /orgs/example-org/members", respErr(404))
	msg := err.Error()
	if !strings.Contains(msg, "GET /orgs/example-org/members") {
		t.Fatalf("expected endpoint in message, got %q", msg)
	}
	if !strings.Contains(msg, "404") {
		t.Fatalf("expected status in message, got %q", msg)
	}
}

func TestAPIErrorNil(t *testing.T) {
	if err := apiError("GET /x", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	inner := respErr(500)
	err := apiError("GET /x", inner)
	var unwrapped *github.ErrorResponse
	if !errors.As(err, &unwrapped) {
		t.Fatalf("expected original error reachable, got %v", err)
	}
}

func TestAPIErrorWrappedStatus(t *testing.T) {
	// The status is still extracted when the library error is wrapped.
	err := apiError("GET /x", fmt.Errorf("listing: %w", respErr(403)))
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != 403 {
		t.Fatalf("expected status 403, got %v", err)
	}
}

func TestIsPermanent(t *testing.T) {
	cases := []struct {
		status    int
		permanent bool
	}{
		{403, true},
		{404, true},
		{410, true},
		{401, false},
		{422, false},
		{500, false},
		{0, false},
	}
	for _, tc := range cases {
		err := apiError("GET /x", respErr(tc.status))
		if got := IsPermanent(err); got != tc.permanent {
			t.Fatalf("status %d: expected permanent=%v, got %v", tc.status, tc.permanent, got)
		}
	}
	if IsPermanent(errors.New("plain")) {
		t.Fatal("expected plain errors to be non-permanent")
	}
	if IsPermanent(nil) {
		t.Fatal("expected nil to be non-permanent")
	}
}
