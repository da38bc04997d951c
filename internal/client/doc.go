// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows and client services into a single process
// lifecycle: session restore, auth flow when needed, then the ordering
// screens.
package client
