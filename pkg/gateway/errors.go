package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport matches calculation errors caused by a non-2xx status.
	ErrTransport = errors.New("gateway: transport error")
	// ErrRejected matches calculation errors reported by the service.
	ErrRejected = errors.New("gateway: calculation rejected")
	// ErrUnreachable matches network, timeout, and decoding failures.
	ErrUnreachable = errors.New("gateway: service unreachable")
)

// Kind classifies a CalculationError.
type Kind int

const (
	KindTransport Kind = iota + 1
	KindRejected
	KindUnreachable
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRejected:
		return "rejected"
	case KindUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindRejected:
		return ErrRejected
	case KindUnreachable:
		return ErrUnreachable
	default:
		return nil
	}
}

// CalculationError describes a failed calculation attempt.
type CalculationError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

// Transport builds a KindTransport error for an HTTP status code.
func Transport(statusCode int) *CalculationError {
	return &CalculationError{Kind: KindTransport, StatusCode: statusCode}
}

// Rejected builds a KindRejected error carrying the service message.
func Rejected(message string) *CalculationError {
	return &CalculationError{Kind: KindRejected, Message: message}
}

// Unreachable builds a KindUnreachable error wrapping cause.
func Unreachable(cause error) *CalculationError {
	return &CalculationError{Kind: KindUnreachable, Err: cause}
}

func (e *CalculationError) Error() string {
	switch e.Kind {
	case KindTransport:
		return fmt.Sprintf("gateway: unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	case KindRejected:
		if e.Message == "" {
			return "gateway: calculation rejected"
		}
		return "gateway: calculation rejected: " + e.Message
	case KindUnreachable:
		if e.Err == nil {
			return "gateway: service unreachable"
		}
		return "gateway: service unreachable: " + e.Err.Error()
	default:
		return "gateway: calculation failed"
	}
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *CalculationError) Is(target error) bool {
	sentinel := e.Kind.sentinel()
	return sentinel != nil && target == sentinel
}
