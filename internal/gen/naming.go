package gen

import (
	"bytes"
	"fmt"
	"go/token"
	"text/template"
)

// Default name templates.
const (
	DefaultConversionName = "{{.Union}}From{{.Tag}}"
	DefaultDispatchName   = "{{.Union}}From"
)

// Namer computes generated function names from text/template patterns over
// {{.Union}} and {{.Tag}}.
type Namer struct {
	conversion *template.Template
	dispatch   *template.Template
}

type nameData struct {
	Union string
	Tag   string
}

// NewNamer parses the conversion and dispatch patterns. An empty dispatch
// pattern disables the dispatcher.
func NewNamer(conversion, dispatch string) (*Namer, error) {
	if conversion == "" {
		return nil, fmt.Errorf("conversion name pattern is empty")
	}

	n := &Namer{}

	var err error
	n.conversion, err = template.New("conversion").Option("missingkey=error").Parse(conversion)
	if err != nil {
		return nil, fmt.Errorf("parsing conversion name pattern: %w", err)
	}

	if dispatch != "" {
		n.dispatch, err = template.New("dispatch").Option("missingkey=error").Parse(dispatch)
		if err != nil {
			return nil, fmt.Errorf("parsing dispatch name pattern: %w", err)
		}
	}

	// Catch patterns that render invalid identifiers before any package is
	// loaded.
	a, err := n.Conversion("Union", "A")
	if err != nil {
		return nil, err
	}

	if b, _ := n.Conversion("Union", "B"); a == b {
		return nil, fmt.Errorf("conversion name pattern %q does not depend on the tag", conversion)
	}

	if _, err := n.Dispatch("Union"); err != nil {
		return nil, err
	}

	if n.dispatch != nil {
		disp, _ := n.Dispatch("Union")
		if disp == a {
			return nil, fmt.Errorf("conversion and dispatch name patterns collide: %q", disp)
		}
	}

	return n, nil
}

// Conversion returns the name of the conversion from tag's payload to union.
func (n *Namer) Conversion(union, tag string) (string, error) {
	return render(n.conversion, nameData{Union: union, Tag: tag})
}

// Dispatch returns the name of the dispatcher of union, or "" when the
// dispatcher is disabled.
func (n *Namer) Dispatch(union string) (string, error) {
	if n.dispatch == nil {
		return "", nil
	}

	return render(n.dispatch, nameData{Union: union})
}

// HasDispatch reports whether dispatchers are generated.
func (n *Namer) HasDispatch() bool {
	return n.dispatch != nil
}

func render(t *template.Template, data nameData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s name: %w", t.Name(), err)
	}

	name := buf.String()
	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("%s name %q is not a valid identifier", t.Name(), name)
	}

	return name, nil
}
