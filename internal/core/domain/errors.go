package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Kind is the closed set of failure classes surfaced by the engine.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindRateLimited         Kind = "rate_limited"
	KindPlatformThrottled   Kind = "platform_throttled"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindPlatformRejected    Kind = "platform_rejected"
	KindNotFound            Kind = "not_found"
	KindUnauthorized        Kind = "unauthorized"
	KindTimeout             Kind = "timeout"
	KindCanceled            Kind = "canceled"
	KindInternal            Kind = "internal"
)

// Error is the tagged error type returned across the engine. Platform
// adapters classify remote failures into a Kind once, at the boundary.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	// Code and Subcode carry the platform's native error identifiers.
	Code    int
	Subcode int
	// Transient marks timeouts the platform itself reported as temporary.
	Transient bool
	// RetryAfter is set on KindRateLimited errors.
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the retry executor may attempt the call again.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindPlatformThrottled:
		return true
	case KindTimeout:
		return e.Transient
	default:
		return false
	}
}

// NewError builds an Error of the given kind.
func NewError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Validation returns a KindValidation error.
func Validation(op, format string, args ...any) *Error {
	return NewError(KindValidation, op, format, args...)
}

// RateLimited returns a KindRateLimited error carrying the retry hint.
func RateLimited(op, tenantID string, retryAfter time.Duration) *Error {
	return &Error{
		Kind:       KindRateLimited,
		Op:         op,
		Message:    fmt.Sprintf("hourly quota exhausted for tenant %q", tenantID),
		RetryAfter: retryAfter,
	}
}

// KindOf extracts the Kind of err. Context errors map to KindCanceled and
// KindTimeout; anything unclassified is KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, context.Canceled):
		return KindCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	}
	return KindInternal
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// RetryAfterOf returns the retry hint of a rate-limited error.
func RetryAfterOf(err error) time.Duration {
	var e *Error
	if errors.As(err, &e) {
		return e.RetryAfter
	}
	return 0
}
