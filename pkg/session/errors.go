package session

import "errors"

var (
	// ErrNoGateway is returned when a session is built without a gateway.
	ErrNoGateway = errors.New("session: gateway is required")
	// ErrNotReady is returned when a calculation is requested outside the
	// specification step.
	ErrNotReady = errors.New("session: calculation requires a category and sub-type")
)

// FailureNotice is the user-facing message shown for any calculation error.
const FailureNotice = "Calculation failed. Please check your inputs and try again."
