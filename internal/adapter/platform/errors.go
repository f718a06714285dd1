package platform

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"mesa-campaigns/internal/core/domain"
)

type codePair struct {
	code, subcode int
}

// throttleCodes are the platform's request-limit signatures. A zero subcode
// matches any subcode.
var throttleCodes = map[codePair]struct{}{
	{40100, 0}:       {},
	{40133, 0}:       {},
	{51021, 0}:       {},
	{17, 2446079}:    {},
	{613, 1487742}:   {},
	{80004, 2446079}: {},
}

var throttleMessages = []string{
	"request limit reached",
	"too many requests",
	"too frequent",
	"rate limit",
}

var unauthorizedCodes = map[int]struct{}{
	40001: {},
	40104: {},
	40105: {},
	190:   {},
}

var notFoundCodes = map[int]struct{}{
	40006: {},
	40007: {},
	100:   {},
}

var transientCodes = map[int]struct{}{
	50002: {},
	2:     {},
}

// classify maps the platform's native error into a domain kind. This is the
// only place that looks at codes and messages.
func classify(op string, status, code, subcode int, message string) *domain.Error {
	e := &domain.Error{Op: op, Code: code, Subcode: subcode, Message: message}
	lower := strings.ToLower(message)

	_, exact := throttleCodes[codePair{code, subcode}]
	_, wildcard := throttleCodes[codePair{code, 0}]
	switch {
	case exact || wildcard || status == http.StatusTooManyRequests || containsAny(lower, throttleMessages):
		e.Kind = domain.KindPlatformThrottled
	case status == http.StatusUnauthorized || status == http.StatusForbidden || in(unauthorizedCodes, code):
		e.Kind = domain.KindUnauthorized
	case status == http.StatusNotFound || in(notFoundCodes, code) ||
		strings.Contains(lower, "does not exist") || strings.Contains(lower, "not found"):
		e.Kind = domain.KindNotFound
	case status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout || in(transientCodes, code):
		e.Kind = domain.KindTimeout
		e.Transient = true
	case status >= 500:
		e.Kind = domain.KindUpstreamUnavailable
	default:
		e.Kind = domain.KindPlatformRejected
	}
	if e.Message == "" {
		e.Message = http.StatusText(status)
	}
	return e
}

// transportError classifies failures that never produced a response.
func transportError(op string, err error) *domain.Error {
	switch {
	case errors.Is(err, context.Canceled):
		return &domain.Error{Kind: domain.KindCanceled, Op: op, Err: err}
	case errors.Is(err, context.DeadlineExceeded):
		return &domain.Error{Kind: domain.KindTimeout, Op: op, Message: "deadline exceeded", Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &domain.Error{Kind: domain.KindTimeout, Op: op, Message: "network timeout", Err: err}
	}
	return &domain.Error{Kind: domain.KindUpstreamUnavailable, Op: op, Message: "transport failure", Err: err}
}

// pacingError classifies a failed wait for an outbound slot. The limiter
// gives up early when the slot lies past the deadline, before ctx is done.
func pacingError(ctx context.Context, op string, err error) *domain.Error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return &domain.Error{Kind: domain.KindCanceled, Op: op, Err: err}
	}
	return &domain.Error{Kind: domain.KindTimeout, Op: op, Message: "no request slot before deadline", Err: err}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func in(set map[int]struct{}, code int) bool {
	_, ok := set[code]
	return ok
}
