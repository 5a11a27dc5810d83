package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"

	"unionfrom-generator/internal/derive"
)

// Diagnostic codes.
const (
	CodeUnsupportedDeclarationKind  = "unsupported_declaration_kind"
	CodeUnsupportedAlternativeShape = "unsupported_alternative_shape"
	CodeWrongSlotCount              = "wrong_slot_count"
	CodeDuplicatePayload            = "duplicate_payload"
	CodeNoAlternatives              = "no_alternatives"
	CodeOrphanedFile                = "orphaned_file"
	CodeLoad                        = "load"
	CodeTypeCheck                   = "typecheck"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Position is where the problem was found, if known.
	Position token.Position
	// Decl names the declaration this relates to (if any).
	Decl string
	// Alternative names the offending alternative (if any).
	Alternative string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message string, pos token.Position) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Position: pos})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, pos token.Position) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Position: pos})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, pos token.Position) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, Position: pos})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Sort orders every list by position, then by message, so output does not
// depend on package load order.
func (d *Diagnostics) Sort() {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		slices.SortStableFunc(list, compare)
	}
}

func compare(a, b Diagnostic) int {
	if c := strings.Compare(a.Position.Filename, b.Position.Filename); c != 0 {
		return c
	}

	if a.Position.Line != b.Position.Line {
		return a.Position.Line - b.Position.Line
	}

	if a.Position.Column != b.Position.Column {
		return a.Position.Column - b.Position.Column
	}

	return strings.Compare(a.Message, b.Message)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}

// String returns a formatted diagnostic string:
//
//	myerror.go:12:6: [wrong_slot_count] X: alternative Pair: expected exactly one field, found 2
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Position.IsValid() {
		return d.Position.String() + ": " + msg
	}

	return msg
}

// FromError converts an error returned by the pipeline into a diagnostic.
// Transform errors keep their code and position; anything else is reported
// under fallback.
func FromError(fset *token.FileSet, err error, fallback string) Diagnostic {
	diag := Diagnostic{
		Severity: SeverityError,
		Code:     fallback,
		Message:  err.Error(),
	}

	var derr *derive.Error
	if !errors.As(err, &derr) {
		return diag
	}

	diag.Code = Code(derr)
	diag.Decl = derr.Decl
	diag.Alternative = derr.Alternative

	if fset != nil && derr.Pos.IsValid() {
		diag.Position = fset.Position(derr.Pos)
	}

	return diag
}

// Code returns the diagnostic code of a Transform error.
func Code(err error) string {
	switch {
	case errors.Is(err, derive.ErrUnsupportedDeclarationKind):
		return CodeUnsupportedDeclarationKind
	case errors.Is(err, derive.ErrUnsupportedAlternativeShape):
		return CodeUnsupportedAlternativeShape
	case errors.Is(err, derive.ErrWrongSlotCount):
		return CodeWrongSlotCount
	default:
		return ""
	}
}
