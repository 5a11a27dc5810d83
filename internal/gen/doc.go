// Package gen renders union conversions into Go source files.
//
// Generation uses text/template + go/format. Each package with marked
// unions gets one file, guarded by "//go:build !unionfrom" so the generator
// never reads its own output:
//
//	// MyErrorFromA wraps v into MyError as A.
//	func MyErrorFromA(v int8) MyError {
//		return A{v}
//	}
//
// Per union an optional dispatcher type-switches over the payload types:
//
//	func MyErrorFrom(v any) (MyError, bool)
//
// Payload types are never inspected. They are printed with import-aware
// qualifiers and the result is type-checked by Verify together with the
// rest of the package.
package gen
