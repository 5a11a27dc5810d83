// Package derive turns a tagged-union declaration into the list of
// conversions the generator emits for it.
//
// A tagged union is a sealed interface. Its alternatives are named struct
// types that implement it and embed exactly one payload type:
//
//	//unionfrom:generate
//	type MyError interface{ isMyError() }
//
//	type A struct{ int8 }
//	type B struct{ string }
//
// For every alternative, Transform yields a Conversion from the payload type
// into the union that wraps the value with the alternative's constructor
// (A{v}, or &A{v} when only *A implements the union).
//
// Transform is pure. Finding the alternatives of a union needs type
// information and is done by package analyze; rendering is done by package gen.
package derive
