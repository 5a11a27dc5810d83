package derive

import (
	"go/ast"
	"go/token"
)

// Declaration is a marked type declaration together with the alternatives
// the host found for it.
type Declaration struct {
	Spec         *ast.TypeSpec
	Alternatives []Alternative
}

// Name returns the declared type name.
func (d Declaration) Name() string {
	if d.Spec == nil || d.Spec.Name == nil {
		return ""
	}

	return d.Spec.Name.Name
}

// Alternative is one case of a union.
type Alternative struct {
	Spec *ast.TypeSpec
	// Pointer is set when only *T implements the union.
	Pointer bool
}

// Tag returns the alternative's type name, which doubles as its constructor.
func (a Alternative) Tag() string {
	if a.Spec == nil || a.Spec.Name == nil {
		return ""
	}

	return a.Spec.Name.Name
}

// Conversion describes a generated function that wraps a Payload value into
// Union using the Tag constructor.
type Conversion struct {
	Union   string
	Tag     string
	Payload ast.Expr
	Pointer bool
	Pos     token.Pos
}

// Transform validates decl and returns one conversion per alternative, in
// declaration order. Validation stops at the first failure, and no
// conversions are returned alongside an error.
func Transform(decl Declaration) ([]Conversion, error) {
	name := decl.Name()

	if kind := Kind(decl.Spec); kind != DeclUnion {
		return nil, &Error{
			Err:  ErrUnsupportedDeclarationKind,
			Decl: name,
			Kind: kind,
			Pos:  specPos(decl.Spec),
		}
	}

	payloads := make([]ast.Expr, len(decl.Alternatives))
	for i, alt := range decl.Alternatives {
		payload, err := validate(name, alt)
		if err != nil {
			return nil, err
		}

		payloads[i] = payload
	}

	convs := make([]Conversion, len(decl.Alternatives))
	for i, alt := range decl.Alternatives {
		convs[i] = Conversion{
			Union:   name,
			Tag:     alt.Tag(),
			Payload: payloads[i],
			Pointer: alt.Pointer,
			Pos:     specPos(alt.Spec),
		}
	}

	return convs, nil
}

// validate checks that alt has a single positional slot and returns the
// slot's type.
func validate(union string, alt Alternative) (ast.Expr, error) {
	shape, fields := ShapeOf(alt.Spec)
	if shape != ShapePositional {
		return nil, &Error{
			Err:         ErrUnsupportedAlternativeShape,
			Decl:        union,
			Alternative: alt.Tag(),
			Kind:        DeclUnion,
			Shape:       shape,
			Pos:         specPos(alt.Spec),
		}
	}

	if len(fields) != 1 {
		return nil, &Error{
			Err:         ErrWrongSlotCount,
			Decl:        union,
			Alternative: alt.Tag(),
			Kind:        DeclUnion,
			Shape:       shape,
			Slots:       len(fields),
			Pos:         specPos(alt.Spec),
		}
	}

	return fields[0].Type, nil
}

func specPos(spec *ast.TypeSpec) token.Pos {
	if spec == nil {
		return token.NoPos
	}

	return spec.Pos()
}
