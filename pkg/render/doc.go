// Package render defines the renderer contract for wizard screens and a
// name-keyed registry of implementations.
package render
