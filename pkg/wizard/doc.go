// Package wizard implements the selection state machine: category, then
// sub-type, then the specification form. Back navigation unwinds one step at a
// time; from the first step it is a no-op because the host shell owns leaving
// the wizard. There is no terminal step.
package wizard
