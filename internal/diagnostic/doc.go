// Package diagnostic provides structured errors and warnings for the
// unionfrom generator.
//
// Key capabilities:
//   - Stable codes for every rejected declaration or alternative
//   - Conversion of derive errors into positioned diagnostics
//   - Colored terminal output
package diagnostic
