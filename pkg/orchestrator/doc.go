// Package orchestrator wires the layout store, theme selection, grid
// resolution and renderer registry behind a single Generate call.
package orchestrator
