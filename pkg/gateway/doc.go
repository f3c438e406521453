// Package gateway sends calculation requests to the vessel calculation
// service. The HTTP gateway speaks the JSON wire contract; the local gateway
// is an in-process implementation of the same contract using simplified
// formulas, useful offline and as the bundled service engine.
//
// Failures are reported as *CalculationError with one of three kinds:
// transport (non-2xx status), rejected (the service answered with a non
// "success" status), and unreachable (network failure, timeout, or a payload
// that could not be decoded). Use errors.Is with ErrTransport, ErrRejected,
// or ErrUnreachable to tell them apart.
package gateway
