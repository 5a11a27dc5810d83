package analyze

import (
	"go/ast"
	"go/types"
	"strings"

	"unionfrom-generator/internal/derive"
)

// TargetStringer renders targets in a compact, readable form for listings.
// Examples:
//   - "MyError = A(int8) | B(string) | C(thing.Thing)"
//   - "Event = *Created(*Record)"
//   - "Config: record"
type TargetStringer struct{}

// NewTargetStringer creates a new TargetStringer.
func NewTargetStringer() *TargetStringer {
	return &TargetStringer{}
}

// TargetString returns a one-line description of t.
func (s *TargetStringer) TargetString(t Target) string {
	name := t.Decl.Name()

	if kind := derive.Kind(t.Decl.Spec); kind != derive.DeclUnion {
		return name + ": " + strings.ToLower(kind.String())
	}

	if len(t.Decl.Alternatives) == 0 {
		return name + " = <no alternatives>"
	}

	parts := make([]string, 0, len(t.Decl.Alternatives))
	for _, alt := range t.Decl.Alternatives {
		parts = append(parts, s.AlternativeString(alt))
	}

	return name + " = " + strings.Join(parts, " | ")
}

// AlternativeString describes one alternative with its payload shape.
func (s *TargetStringer) AlternativeString(alt derive.Alternative) string {
	tag := alt.Tag()
	if alt.Pointer {
		tag = "*" + tag
	}

	shape, fields := derive.ShapeOf(alt.Spec)
	switch shape {
	case derive.ShapePositional:
		return tag + "(" + fieldTypes(fields) + ")"
	case derive.ShapeNamed:
		return tag + "{" + fieldTypes(fields) + "}"
	case derive.ShapeUnit:
		return tag
	default:
		return tag + " <" + strings.ToLower(shape.String()) + ">"
	}
}

func fieldTypes(fields []*ast.Field) string {
	var parts []string
	for _, f := range fields {
		typ := types.ExprString(f.Type)
		if len(f.Names) == 0 {
			parts = append(parts, typ)
			continue
		}

		for _, n := range f.Names {
			parts = append(parts, n.Name+" "+typ)
		}
	}

	return strings.Join(parts, ", ")
}
