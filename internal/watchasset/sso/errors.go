package sso

import (
	"errors"
	"fmt"
)

// ErrAuthenticationFailed covers every token-endpoint rejection. The provider
// error body is logged at the call site; callers only see this sentinel.
var ErrAuthenticationFailed = errors.New("sso: authentication failed")

// StatusError carries a provider HTTP status that should propagate unchanged
// to our own caller, e.g. a 401 from the userinfo endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sso: provider returned status %d", e.StatusCode)
}
