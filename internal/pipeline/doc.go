// Package pipeline wires loading, transformation, rendering and verification
// into a single run used by the command line tool.
package pipeline
