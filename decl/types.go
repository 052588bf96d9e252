package decl

import "strings"

type Class struct {
	Name       string
	Modifiers  Modifiers
	TypeParams []string
	Bases      []string
	Members    []Decl
	Doc        string
}

func (c *Class) DeclName() string { return c.Name }

func (c *Class) emit(w *Writer) error {
	if err := required("Class", "name", c.Name); err != nil {
		return err
	}
	if err := c.Modifiers.Validate(KindClass, c.Name); err != nil {
		return err
	}
	if c.Modifiers.Has(Static) && len(c.Bases) > 0 {
		return &ValidationError{Kind: KindClass, Name: c.Name, Conflicts: Modifiers{Static}, Reason: "static class cannot have a base list"}
	}

	outerClass, outerInterface := w.className, w.inInterface
	w.className, w.inInterface = c.Name, false
	defer func() { w.className, w.inInterface = outerClass, outerInterface }()

	return typeBody(w, c.Doc, c.Modifiers, "class", c.Name+typeParameterList(c.TypeParams), c.Bases, c.Members)
}

type Interface struct {
	Name       string
	Modifiers  Modifiers
	TypeParams []string
	Bases      []string
	Members    []Decl
	Doc        string
}

func (i *Interface) DeclName() string { return i.Name }

func (i *Interface) emit(w *Writer) error {
	if err := required("Interface", "name", i.Name); err != nil {
		return err
	}
	if err := i.Modifiers.Validate(KindInterface, i.Name); err != nil {
		return err
	}
	for _, m := range i.Members {
		switch m.(type) {
		case *Field, *Constructor:
			return &ValidationError{Kind: KindInterface, Name: i.Name, Reason: "interface cannot declare " + m.DeclName()}
		}
	}

	outerClass, outerInterface := w.className, w.inInterface
	w.className, w.inInterface = i.Name, true
	defer func() { w.className, w.inInterface = outerClass, outerInterface }()

	return typeBody(w, i.Doc, i.Modifiers, "interface", i.Name+typeParameterList(i.TypeParams), i.Bases, i.Members)
}

func typeBody(w *Writer, doc string, mods Modifiers, keyword, name string, bases []string, members []Decl) error {
	w.doc(doc)
	w.Clear()
	w.modifiers(mods).Tokens(keyword, name)
	if len(bases) > 0 {
		w.Tokens(":", strings.Join(bases, ", "))
	}
	w.EndLine()
	w.Line("{")
	w.Indent()
	if err := w.members(members); err != nil {
		return err
	}
	w.Dedent()
	w.Line("}")
	return nil
}

type Namespace struct {
	Name  string
	Types []Decl
}

func (n *Namespace) DeclName() string { return n.Name }

func (n *Namespace) emit(w *Writer) error {
	if err := required("Namespace", "name", n.Name); err != nil {
		return err
	}
	w.Line("namespace " + n.Name)
	w.Line("{")
	w.Indent()
	if err := w.members(n.Types); err != nil {
		return err
	}
	w.Dedent()
	w.Line("}")
	return nil
}

// File is one generated source file: a header comment, using directives
// and top-level declarations.
type File struct {
	Name   string
	Header string
	Usings []string
	Decls  []Decl
}

func (f *File) DeclName() string { return f.Name }

func (f *File) emit(w *Writer) error {
	if f.Header != "" {
		for _, l := range strings.Split(strings.TrimSpace(f.Header), "\n") {
			w.Line(strings.TrimRight("// "+l, " "))
		}
		w.BlankLine()
	}
	for _, u := range f.Usings {
		w.Line("using " + u + ";")
	}
	if len(f.Usings) > 0 && len(f.Decls) > 0 {
		w.BlankLine()
	}
	return w.members(f.Decls)
}
