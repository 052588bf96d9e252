package decl

import (
	"strings"

	"github.com/dhamidi/scribe/code"
)

// Decl is anything the Writer can format: a member, a type, a namespace or
// a whole file.
type Decl interface {
	DeclName() string
	emit(w *Writer) error
}

// Format renders d with a fresh writer.
func Format(d Decl, unit code.IndentUnit, newline string) (string, error) {
	return NewWriter(unit, newline).Render(d)
}

func required(op, arg, value string) error {
	if value == "" {
		return &code.ArgumentError{Op: op, Arg: arg}
	}
	return nil
}

func (w *Writer) modifiers(m Modifiers) *Writer {
	for _, x := range m {
		w.Token(string(x))
	}
	return w
}

func (w *Writer) doc(text string) {
	if text == "" {
		return
	}
	w.Line("/// <summary>")
	for _, l := range strings.Split(strings.TrimSpace(text), "\n") {
		w.Line(strings.TrimRight("/// "+strings.TrimSpace(l), " "))
	}
	w.Line("/// </summary>")
}

// members writes decls one after another, separating them with a blank
// line except between consecutive fields.
func (w *Writer) members(decls []Decl) error {
	for i, d := range decls {
		if i > 0 {
			_, prevField := decls[i-1].(*Field)
			_, isField := d.(*Field)
			if !prevField || !isField {
				w.BlankLine()
			}
		}
		if err := d.emit(w); err != nil {
			return err
		}
	}
	return nil
}

type Parameter struct {
	// Modifier is one of "ref", "out", "in", "params" or "this".
	Modifier string
	Type     string
	Name     string
	Default  string
}

func (p Parameter) String() string {
	var parts []string
	if p.Modifier != "" {
		parts = append(parts, p.Modifier)
	}
	parts = append(parts, p.Type, p.Name)
	if p.Default != "" {
		parts = append(parts, "=", p.Default)
	}
	return strings.Join(parts, " ")
}

func parameterList(op string, params []Parameter) (string, error) {
	parts := make([]string, len(params))
	for i, p := range params {
		if err := required(op, "parameter type", p.Type); err != nil {
			return "", err
		}
		if err := required(op, "parameter name", p.Name); err != nil {
			return "", err
		}
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")", nil
}

func typeParameterList(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "<" + strings.Join(params, ", ") + ">"
}
