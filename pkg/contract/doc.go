// Package contract embeds the OpenAPI description of the calculation service
// and validates request and response payloads against it. The gateway uses it
// to reject malformed responses; the bundled service uses it to reject
// malformed requests.
package contract
