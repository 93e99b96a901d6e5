package apperror

import (
	"fmt"
	"net/http"
)

// Kind classifies every failure the billing core can surface. Handlers and
// use cases share this vocabulary instead of duck-typed error shapes.
type Kind string

const (
	KindValidation          Kind = "VALIDATION"
	KindStateConflict       Kind = "STATE_CONFLICT"
	KindConcurrencyConflict Kind = "CONCURRENCY_CONFLICT"
	KindNotFound            Kind = "NOT_FOUND"
	KindInvalidAccessToken  Kind = "INVALID_ACCESS_TOKEN"
	KindPolicyDenied        Kind = "POLICY_DENIED"
	KindInternal            Kind = "INTERNAL"
)

// AppError is the single error currency between use cases and HTTP handlers.
//
// Details carries machine-readable context (current status, allowed
// transitions, blocking invoices, current version) so callers can act without
// parsing the message.
type AppError struct {
	Kind       Kind
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	cause      error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.cause }

// WithDetail returns the error with one more detail entry set.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[key] = value
	return e
}

// HTTPError is the wire shape rendered by handlers.
type HTTPError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

func New(kind Kind, code, message string, status int) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message, HTTPStatus: status}
}

func Validation(code, message string) *AppError {
	return New(KindValidation, code, message, http.StatusBadRequest)
}

// StateConflict reports a denied document transition. currentStatus and
// allowed go into Details so the caller can see what would be accepted.
func StateConflict(code, message, currentStatus string, allowed []string) *AppError {
	e := New(KindStateConflict, code, message, http.StatusConflict)
	e.WithDetail("current_status", currentStatus)
	e.WithDetail("allowed_transitions", allowed)
	return e
}

// ConcurrencyConflict reports an optimistic-version mismatch. The caller must
// re-fetch at currentVersion and retry; this is not a user-facing failure.
func ConcurrencyConflict(currentVersion int64) *AppError {
	e := New(KindConcurrencyConflict, "VERSION_CONFLICT",
		"Document was modified concurrently; re-fetch and retry", http.StatusConflict)
	e.WithDetail("current_version", currentVersion)
	return e
}

func NotFound(code, message string) *AppError {
	return New(KindNotFound, code, message, http.StatusNotFound)
}

func PolicyDenied(code, message string) *AppError {
	return New(KindPolicyDenied, code, message, http.StatusUnprocessableEntity)
}

func Internal(err error) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Code:       "INTERNAL_ERROR",
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		cause:      err,
	}
}

// InvalidAccessToken is deliberately information-poor: every token-validation
// failure (unknown hash, expired, already used, wrong document status) renders
// this exact response. The real cause goes to the audit ledger only.
func InvalidAccessToken() *AppError {
	return New(KindInvalidAccessToken, "INVALID_LINK",
		"This link is no longer valid", http.StatusNotFound)
}
