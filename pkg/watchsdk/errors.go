package watchsdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error codes shared by the API and this SDK.
const (
	ErrorCodeMissingCode         = "missing_code"
	ErrorCodeAuthFailed          = "auth_failed"
	ErrorCodeInvalidToken        = "invalid_token"
	ErrorCodeValidationFailed    = "validation_failed"
	ErrorCodeAlreadyInCollection = "already_in_collection"
	ErrorCodeNotFound            = "not_found"
	ErrorCodeServerError         = "server_error"
)

// APIError is the JSON error shape the backend writes and this SDK parses.
// It implements the error interface so typed errors flow through both sides.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer. Used by the
// backend handlers so both sides agree on the wire shape.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

// WithDescription returns a copy carrying a field-level message.
func (e *APIError) WithDescription(desc string) *APIError {
	clone := *e
	clone.Description = desc
	return &clone
}

var (
	// ErrMissingCode is returned when the OAuth2 callback is invoked without
	// an authorization code.
	ErrMissingCode = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeMissingCode,
		Description: "authorization code is missing",
	}

	// ErrUnauthorized is returned when a protected call carries no usable
	// bearer token.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "missing or invalid access token",
	}

	// ErrValidation is returned for malformed input; use WithDescription for
	// the field-level message.
	ErrValidation = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidationFailed,
		Description: "invalid request",
	}

	// ErrAlreadyInCollection is returned when the user already tracks the
	// watch they are adding.
	ErrAlreadyInCollection = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeAlreadyInCollection,
		Description: "watch is already in your collection",
	}

	// ErrNotFound is returned when the referenced entity does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}

	// ErrRefreshFailed is returned when the provider rejects a refresh token.
	ErrRefreshFailed = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeAuthFailed,
		Description: "refresh token rejected",
	}

	// ErrServerError is the generic 500; details stay in the server logs.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response body into an *APIError. Bodies
// that aren't our JSON shape still produce a usable error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Code != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("unexpected status %d", resp.StatusCode),
	}
}

// decodeJSON decodes a JSON response into target, converting non-expected
// statuses into typed errors.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp, bodyBytes)
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
