package analyze

import (
	"go/ast"
	"strings"
)

// Marker is the directive that opts a type declaration into generation:
//
//	//unionfrom:generate
//	type MyError interface{ isMyError() }
const Marker = "//unionfrom:generate"

// HasMarker reports whether any of the comment groups carries Marker on a line
// of its own.
func HasMarker(groups ...*ast.CommentGroup) bool {
	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, c := range group.List {
			text := strings.TrimRight(c.Text, " \t\r")
			if text == Marker || strings.HasPrefix(text, Marker+" ") {
				return true
			}
		}
	}

	return false
}

// specMarked reports whether spec is marked, either directly or through the
// doc comment of an ungrouped declaration.
func specMarked(gen *ast.GenDecl, spec *ast.TypeSpec) bool {
	if HasMarker(spec.Doc) {
		return true
	}

	return !gen.Lparen.IsValid() && HasMarker(gen.Doc)
}
