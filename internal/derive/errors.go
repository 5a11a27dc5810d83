package derive

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

var (
	ErrUnsupportedDeclarationKind  = errors.New("unsupported declaration kind: only tagged unions are supported")
	ErrUnsupportedAlternativeShape = errors.New("unsupported alternative shape: only a single positional slot is supported")
	ErrWrongSlotCount              = errors.New("expected exactly one field")
)

// Error is returned by [Transform]. Err is one of the sentinel errors above,
// so errors.Is can tell the failures apart.
type Error struct {
	Err error

	// Decl is the name of the rejected declaration.
	Decl string
	// Alternative is the tag of the offending alternative. It is empty when
	// the declaration itself is rejected.
	Alternative string

	Kind  DeclKind
	Shape Shape
	Slots int

	// Pos points at the offending declaration or alternative.
	Pos token.Pos
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnsupportedDeclarationKind):
		return fmt.Sprintf("%s: %v (got %s)", e.Decl, e.Err, strings.ToLower(e.Kind.String()))
	case errors.Is(e.Err, ErrUnsupportedAlternativeShape):
		return fmt.Sprintf("%s: alternative %s: %v (got %s)", e.Decl, e.Alternative, e.Err, shapeNoun(e.Shape))
	case errors.Is(e.Err, ErrWrongSlotCount):
		return fmt.Sprintf("%s: alternative %s: %v, found %d", e.Decl, e.Alternative, e.Err, e.Slots)
	default:
		return fmt.Sprintf("%s: %v", e.Decl, e.Err)
	}
}

func shapeNoun(s Shape) string {
	switch s {
	case ShapeNamed:
		return "named fields"
	case ShapeUnit:
		return "no payload"
	case ShapePositional:
		return "positional fields"
	default:
		return "non-struct type"
	}
}
