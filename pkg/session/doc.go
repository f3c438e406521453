// Package session composes the wizard machine, the specification form, a
// calculation gateway and the result presenter into one wizard instance.
//
// All mutations are serialised through the session. Calculations run
// asynchronously; every transition, accepted field edit, and submission bumps
// a request generation, and a calculation outcome is applied only when its
// generation is still current. Late responses are discarded.
package session
