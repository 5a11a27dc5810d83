package derive

import (
	"go/ast"
)

//go:generate go tool stringer -type=DeclKind -trimprefix=Decl -output=declkind_string.go
//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go

// DeclKind classifies a type declaration.
type DeclKind int

const (
	DeclOther  DeclKind = iota // anything that is neither a union nor a record
	DeclUnion                  // non-generic interface with at least one method or embedded interface
	DeclRecord                 // struct type
)

// Shape classifies the payload of a union alternative.
type Shape int

const (
	ShapeOther      Shape = iota // non-struct, generic or alias declaration
	ShapePositional              // struct with embedded fields only
	ShapeNamed                   // struct with at least one named field
	ShapeUnit                    // struct{}
)

// Kind classifies spec. Generic declarations and aliases are never unions,
// and neither are interfaces that carry type-set terms (constraints) or list
// nothing at all.
func Kind(spec *ast.TypeSpec) DeclKind {
	if spec == nil {
		return DeclOther
	}

	switch t := spec.Type.(type) {
	case *ast.InterfaceType:
		if spec.Assign.IsValid() || spec.TypeParams != nil {
			return DeclOther
		}

		if isSealedInterface(t) {
			return DeclUnion
		}

		return DeclOther

	case *ast.StructType:
		return DeclRecord

	default:
		return DeclOther
	}
}

// isSealedInterface reports whether every element of the interface is a
// method or an embedded interface name, and there is at least one.
func isSealedInterface(t *ast.InterfaceType) bool {
	if t.Methods == nil || len(t.Methods.List) == 0 {
		return false
	}

	for _, field := range t.Methods.List {
		if len(field.Names) > 0 {
			// method
			continue
		}

		switch field.Type.(type) {
		case *ast.Ident, *ast.SelectorExpr:
			// embedded interface
		default:
			// A | B, ~T, and friends
			return false
		}
	}

	return true
}

// ShapeOf classifies the payload of an alternative declaration and returns
// its struct fields, if any.
func ShapeOf(spec *ast.TypeSpec) (Shape, []*ast.Field) {
	if spec == nil || spec.Assign.IsValid() || spec.TypeParams != nil {
		return ShapeOther, nil
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return ShapeOther, nil
	}

	if st.Fields == nil || len(st.Fields.List) == 0 {
		return ShapeUnit, nil
	}

	for _, field := range st.Fields.List {
		if len(field.Names) > 0 {
			return ShapeNamed, st.Fields.List
		}
	}

	return ShapePositional, st.Fields.List
}
