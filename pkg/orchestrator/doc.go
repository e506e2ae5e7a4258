// Package orchestrator wires validation, theming and the renderer registry
// into a single Generate call.
package orchestrator
