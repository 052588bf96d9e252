package decl

import (
	"github.com/dhamidi/scribe/code"
)

type Field struct {
	Name      string
	Type      string
	Modifiers Modifiers
	Value     string
	Doc       string
}

func (f *Field) DeclName() string { return f.Name }

func (f *Field) emit(w *Writer) error {
	if err := required("Field", "name", f.Name); err != nil {
		return err
	}
	if err := required("Field", "type", f.Type); err != nil {
		return err
	}
	if err := f.Modifiers.Validate(KindField, f.Name); err != nil {
		return err
	}
	if f.Modifiers.Has(Const) && f.Value == "" {
		return &ValidationError{Kind: KindField, Name: f.Name, Conflicts: Modifiers{Const}, Reason: "const field needs a value"}
	}

	w.doc(f.Doc)
	w.Clear()
	w.modifiers(f.Modifiers).Tokens(f.Type, f.Name)
	if f.Value != "" {
		w.Tokens("=", f.Value)
	}
	w.Append(";").EndLine()
	return nil
}

// Property renders as an expression-bodied property when Expr is set, as
// an auto-property when neither accessor body is given, and otherwise with
// explicit get/set blocks.
type Property struct {
	Name      string
	Type      string
	Modifiers Modifiers
	Doc       string
	Expr      string
	Getter    *code.Code
	Setter    *code.Code
	ReadOnly  bool
	Init      string
}

func (p *Property) DeclName() string { return p.Name }

func (p *Property) emit(w *Writer) error {
	if err := required("Property", "name", p.Name); err != nil {
		return err
	}
	if err := required("Property", "type", p.Type); err != nil {
		return err
	}
	if err := p.Modifiers.Validate(KindProperty, p.Name); err != nil {
		return err
	}

	w.doc(p.Doc)
	w.Clear()
	w.modifiers(p.Modifiers).Tokens(p.Type, p.Name)

	switch {
	case p.Expr != "":
		w.Tokens("=>", p.Expr).Append(";").EndLine()
	case p.Getter == nil && p.Setter == nil:
		w.Tokens("{", "get;")
		if !p.ReadOnly {
			w.Token("set;")
		}
		w.Token("}")
		if p.Init != "" {
			w.Tokens("=", p.Init).Append(";")
		}
		w.EndLine()
	default:
		w.EndLine()
		w.Line("{")
		w.Indent()
		if p.Getter != nil {
			w.Line("get")
			if err := w.Block(p.Getter); err != nil {
				return err
			}
		}
		if p.Setter != nil {
			w.Line("set")
			if err := w.Block(p.Setter); err != nil {
				return err
			}
		}
		w.Dedent()
		w.Line("}")
	}
	return nil
}

// Method without a Body or Expr renders as a signature when it is
// abstract, extern, partial or declared in an interface, and with an empty
// body otherwise.
type Method struct {
	Name       string
	ReturnType string
	Modifiers  Modifiers
	TypeParams []string
	Params     []Parameter
	Body       *code.Code
	Expr       string
	Doc        string
}

func (m *Method) DeclName() string { return m.Name }

func (m *Method) signatureOnly(w *Writer) bool {
	return w.inInterface || m.Modifiers.Has(Abstract) || m.Modifiers.Has(Extern) || m.Modifiers.Has(Partial)
}

func (m *Method) emit(w *Writer) error {
	if err := required("Method", "name", m.Name); err != nil {
		return err
	}
	if err := m.Modifiers.Validate(KindMethod, m.Name); err != nil {
		return err
	}
	if (m.Modifiers.Has(Abstract) || m.Modifiers.Has(Extern)) && (m.Body != nil || m.Expr != "") {
		return &ValidationError{Kind: KindMethod, Name: m.Name, Conflicts: m.bodylessModifiers(), Reason: "method cannot have a body"}
	}
	params, err := parameterList("Method", m.Params)
	if err != nil {
		return err
	}
	returnType := m.ReturnType
	if returnType == "" {
		returnType = "void"
	}

	w.doc(m.Doc)
	w.Clear()
	w.modifiers(m.Modifiers).Tokens(returnType, m.Name+typeParameterList(m.TypeParams)+params)

	switch {
	case m.Expr != "":
		w.Tokens("=>", m.Expr).Append(";").EndLine()
	case m.Body == nil && m.signatureOnly(w):
		w.Append(";").EndLine()
	default:
		w.EndLine()
		return w.Block(m.Body)
	}
	return nil
}

func (m *Method) bodylessModifiers() Modifiers {
	var out Modifiers
	for _, x := range m.Modifiers {
		if x == Abstract || x == Extern {
			out = append(out, x)
		}
	}
	return out
}

// Constructor takes its name from the enclosing class unless Name is set.
type Constructor struct {
	Name        string
	Modifiers   Modifiers
	Params      []Parameter
	Initializer string
	Body        *code.Code
	Doc         string
}

func (c *Constructor) DeclName() string { return c.Name }

func (c *Constructor) emit(w *Writer) error {
	name := c.Name
	if name == "" {
		name = w.className
	}
	if err := required("Constructor", "name", name); err != nil {
		return err
	}
	if err := c.Modifiers.Validate(KindConstructor, name); err != nil {
		return err
	}
	if c.Modifiers.Has(Static) && (len(c.Params) > 0 || len(c.Modifiers.Access()) > 0) {
		return &ValidationError{Kind: KindConstructor, Name: name, Conflicts: append(Modifiers{Static}, c.Modifiers.Access()...), Reason: "static constructor takes no access modifier or parameters"}
	}
	params, err := parameterList("Constructor", c.Params)
	if err != nil {
		return err
	}

	w.doc(c.Doc)
	w.Clear()
	w.modifiers(c.Modifiers).Token(name + params)
	w.EndLine()
	if c.Initializer != "" {
		w.Indent().Line(": " + c.Initializer).Dedent()
	}
	return w.Block(c.Body)
}
