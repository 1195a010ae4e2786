// Package apperr defines the closed set of domain error kinds used across
// the prompt generator. Expected failures (unknown format, budget exceeded,
// rate limiting) travel as *Error values; panics are reserved for
// programmer errors such as an internally inconsistent cache.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a stable, machine-readable error code surfaced to clients.
type Kind string

// The closed kind set. Handlers map these to HTTP statuses; nothing else
// is allowed to cross the request boundary.
const (
	KindInvalidInput       Kind = "invalid_input"
	KindRulePackNotFound   Kind = "rulepack_not_found"
	KindRulePackMalformed  Kind = "rulepack_malformed"
	KindRateLimitExceeded  Kind = "rate_limit_exceeded"
	KindTokenLimitExceeded Kind = "token_limit_exceeded"
	KindUpstreamTimeout    Kind = "upstream_timeout"
	KindUpstreamRateLimit  Kind = "upstream_rate_limited"
	KindUpstreamError      Kind = "upstream_error"
	KindInternal           Kind = "internal_error"
)

// Error is a discriminated domain error. Message is user-facing (Korean in
// the reference deployment); Details carries structured context such as a
// token estimate or retry-after seconds.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	cause   error
}

// New creates an Error with the given kind and user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error that preserves the underlying cause for logs.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// WithDetail returns the same error with one detail entry added.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches two Errors by kind, so errors.Is(err, apperr.New(kind, ""))
// works without comparing messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// NewInternal returns the generic internal error with the user-safe
// message; detail belongs in logs, not in the response.
func NewInternal() *Error {
	return New(KindInternal, "내부 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.")
}

// KindOf extracts the kind from any error, defaulting to KindInternal for
// errors that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// AsError extracts the *Error from a chain, or wraps an arbitrary error as
// an internal one with a generic user-safe message.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(KindInternal, "내부 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.", err)
}
