// Package tui runs the vessel wizard interactively in a terminal using
// survey prompts. The PromptDriver seam lets tests script the flow.
package tui
