// Package validation holds the keystroke-level grammar for numeric
// specification fields. Values are unsigned decimals that may be incomplete
// while the user is typing ("", ".", "12.").
package validation
