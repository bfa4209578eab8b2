package mediawiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is an error reported by the MediaWiki API, either as an HTTP
// error status or as an {"error": {...}} body.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Info       string `json:"info"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("mediawiki: %d %s: %s", e.StatusCode, e.Code, e.Info)
	}
	return fmt.Sprintf("mediawiki: %s: %s", e.Code, e.Info)
}

// retryableCodes are API error codes that signal server-side back pressure.
var retryableCodes = map[string]bool{
	"maxlag":      true,
	"ratelimited": true,
	"readonly":    true,
}

// transportError marks a failure below the HTTP layer.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "mediawiki: request failed: " + e.err.Error() }

func (e *transportError) Unwrap() error { return e.err }

// IsRetryable reports whether err is worth another attempt: transport
// failures, HTTP 429 and 5xx, and back-pressure API codes.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var te *transportError
	if errors.As(err, &te) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500 {
			return true
		}
		return retryableCodes[apiErr.Code]
	}

	return false
}

// IsRateLimited returns true if the error is an HTTP 429 or a ratelimited API error.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.Code == "ratelimited"
	}
	return false
}

// parseHTTPError decodes an error body if present; falls back to raw text.
func parseHTTPError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Info = envelope.Error.Info
		return apiErr
	}

	apiErr.Code = "http_error"
	apiErr.Info = strings.TrimSpace(string(body))
	if len(apiErr.Info) > 200 {
		apiErr.Info = apiErr.Info[:200]
	}
	return apiErr
}
