package client

import (
	"errors"
	"fmt"
)

// ErrRefreshFailed reports that the refresh endpoint rejected the refresh
// token. Every request waiting on the refresh receives it; the stored pair is
// cleared and the session must re-authenticate.
var ErrRefreshFailed = errors.New("token refresh failed")

// ErrNoRefreshToken reports a 401 with no stored refresh token to recover with.
var ErrNoRefreshToken = fmt.Errorf("%w: no refresh token available", ErrRefreshFailed)

// APIError is a non-2xx response from the upstream API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream api error (%d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is an upstream 401. A 401 surfacing from
// the login or refresh endpoints is a terminal authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 401
}
