package markup

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/dhamidi/scribe/code"
	"github.com/dhamidi/scribe/decl"
)

const generatedHeader = "Code generated by scribe. DO NOT EDIT."

// nodeInterface is the type every generated builder implements.
const nodeInterface = "IMarkupNode"

// Output is one generated source file.
type Output struct {
	Name   string
	Source string
}

// Generator turns a Table into one C# builder class per tag, plus the
// shared node interface and text node.
type Generator struct {
	Namespace string
	Indent    code.IndentUnit
	Newline   string
}

func NewGenerator() *Generator {
	return &Generator{Indent: code.TwoSpaces, Newline: "\n"}
}

// ClassName is the builder class generated for tag.
func ClassName(tag string) string {
	return strcase.ToCamel(tag) + "Builder"
}

func attributeMethodName(attr string) string {
	return "With" + strcase.ToCamel(attr)
}

func (g *Generator) namespace(t *Table) string {
	switch {
	case g.Namespace != "":
		return g.Namespace
	case t.Namespace != "":
		return t.Namespace
	}
	return "Markup"
}

// Generate validates t and returns the generated files sorted by name.
func (g *Generator) Generate(t *Table) ([]Output, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	closure := t.Closure()
	ns := g.namespace(t)

	var outputs []Output
	emit := func(name string, d decl.Decl, usings ...string) error {
		f := &decl.File{
			Name:   name,
			Header: generatedHeader,
			Usings: usings,
			Decls:  []decl.Decl{&decl.Namespace{Name: ns, Types: []decl.Decl{d}}},
		}
		src, err := decl.Format(f, g.Indent, g.Newline)
		if err != nil {
			return fmt.Errorf("generate %s: %w", name, err)
		}
		outputs = append(outputs, Output{Name: name, Source: src})
		log.Debugf("generated %s", name)
		return nil
	}

	if err := emit(nodeInterface+".cs", g.nodeInterface(), "System.Text"); err != nil {
		return nil, err
	}
	text, err := g.textNode()
	if err != nil {
		return nil, err
	}
	if err := emit("TextNode.cs", text, "System.Text"); err != nil {
		return nil, err
	}

	for _, tag := range t.Tags {
		cls, err := g.builder(t, tag, closure[tag.Name])
		if err != nil {
			return nil, err
		}
		if err := emit(ClassName(tag.Name)+".cs", cls, "System", "System.Collections.Generic", "System.Text"); err != nil {
			return nil, err
		}
	}

	sort.Slice(outputs, func(i, j int) bool { return outputs[i].Name < outputs[j].Name })
	log.Infof("generated %d builders into namespace %s", len(t.Tags), ns)
	return outputs, nil
}

func (g *Generator) newCode() *code.Code {
	return code.New(code.WithIndent(g.Indent), code.WithNewline(g.Newline))
}

func (g *Generator) nodeInterface() decl.Decl {
	return &decl.Interface{
		Name:      nodeInterface,
		Modifiers: decl.Modifiers{decl.Public},
		Members: []decl.Decl{
			&decl.Method{Name: "Render", Params: []decl.Parameter{{Type: "StringBuilder", Name: "sb"}}},
		},
	}
}

func (g *Generator) textNode() (decl.Decl, error) {
	render := g.newCode()
	render.Foreach("var c in text").
		Switch("c").
		Case("'<'").AddLine(`sb.Append("&lt;");`).Break().
		Case("'>'").AddLine(`sb.Append("&gt;");`).Break().
		Case("'&'").AddLine(`sb.Append("&amp;");`).Break().
		Case(`'"'`).AddLine(`sb.Append("&quot;");`).Break().
		Default().AddLine("sb.Append(c);").Break().
		EndSwitch().
		EndCycle()
	if err := render.Err(); err != nil {
		return nil, err
	}

	return &decl.Class{
		Name:      "TextNode",
		Modifiers: decl.Modifiers{decl.Public, decl.Sealed},
		Bases:     []string{nodeInterface},
		Members: []decl.Decl{
			&decl.Field{Name: "text", Type: "string", Modifiers: decl.Modifiers{decl.Private, decl.Readonly}},
			&decl.Constructor{
				Modifiers: decl.Modifiers{decl.Public},
				Params:    []decl.Parameter{{Type: "string", Name: "text"}},
				Body:      g.lines("this.text = text ?? string.Empty;"),
			},
			&decl.Method{
				Name:      "Render",
				Modifiers: decl.Modifiers{decl.Public},
				Params:    []decl.Parameter{{Type: "StringBuilder", Name: "sb"}},
				Body:      render,
			},
		},
	}, nil
}

func (g *Generator) lines(lines ...string) *code.Code {
	c := g.newCode()
	c.AddLines(lines...)
	return c
}

func (g *Generator) builder(t *Table, tag Tag, children []string) (decl.Decl, error) {
	class := ClassName(tag.Name)
	attrs := t.AttributesOf(tag)

	members := []decl.Decl{
		&decl.Field{
			Name:      "attributes",
			Type:      "List<KeyValuePair<string, string>>",
			Modifiers: decl.Modifiers{decl.Private, decl.Readonly},
			Value:     "new List<KeyValuePair<string, string>>()",
		},
	}
	if !tag.Void {
		members = append(members, &decl.Field{
			Name:      "children",
			Type:      "List<" + nodeInterface + ">",
			Modifiers: decl.Modifiers{decl.Private, decl.Readonly},
			Value:     "new List<" + nodeInterface + ">()",
		})
	}
	members = append(members, &decl.Property{
		Name:      "TagName",
		Type:      "string",
		Modifiers: decl.Modifiers{decl.Public},
		Expr:      strconv.Quote(tag.Name),
	})

	for _, a := range attrs {
		members = append(members, &decl.Method{
			Name:       attributeMethodName(a),
			ReturnType: class,
			Modifiers:  decl.Modifiers{decl.Public},
			Params:     []decl.Parameter{{Type: "string", Name: "value"}},
			Body:       g.lines(fmt.Sprintf("return Attribute(%s, value);", strconv.Quote(a))),
		})
	}

	attribute, err := g.attributeMethod(tag, class, attrs)
	if err != nil {
		return nil, err
	}
	members = append(members, attribute)

	if !tag.Void {
		for _, c := range children {
			child := ClassName(c)
			members = append(members, &decl.Method{
				Name:       "Add" + strcase.ToCamel(c),
				ReturnType: child,
				Modifiers:  decl.Modifiers{decl.Public},
				Body: g.lines(
					"var child = new "+child+"();",
					"children.Add(child);",
					"return child;",
				),
			})
		}
		if tag.Text {
			members = append(members, &decl.Method{
				Name:       "AddText",
				ReturnType: class,
				Modifiers:  decl.Modifiers{decl.Public},
				Params:     []decl.Parameter{{Type: "string", Name: "text"}},
				Body:       g.lines("children.Add(new TextNode(text));", "return this;"),
			})
		}
	}

	render, err := g.renderMethod(tag)
	if err != nil {
		return nil, err
	}
	members = append(members, render, &decl.Method{
		Name:       "ToString",
		ReturnType: "string",
		Modifiers:  decl.Modifiers{decl.Public, decl.Override},
		Body: g.lines(
			"var sb = new StringBuilder();",
			"Render(sb);",
			"return sb.ToString();",
		),
	})

	return &decl.Class{
		Name:      class,
		Modifiers: decl.Modifiers{decl.Public, decl.Partial},
		Bases:     []string{nodeInterface},
		Doc:       g.doc(tag, children),
		Members:   members,
	}, nil
}

func (g *Generator) doc(tag Tag, children []string) string {
	switch {
	case tag.Void:
		return fmt.Sprintf("Builds a void %s element.", tag.Name)
	case len(children) == 0:
		return fmt.Sprintf("Builds a %s element.", tag.Name)
	}
	return fmt.Sprintf("Builds a %s element.\nAllowed children: %s.", tag.Name, strings.Join(children, ", "))
}

// attributeMethod emits Attribute(name, value), which accepts only the
// attributes declared for the tag.
func (g *Generator) attributeMethod(tag Tag, class string, attrs []string) (decl.Decl, error) {
	body := g.newCode()
	body.If("string.IsNullOrEmpty(name)").Then().
		AddLine(`throw new ArgumentException("attribute name is required", nameof(name));`).
		EndIf()

	if len(attrs) > 0 {
		sw := body.Switch("name")
		label := sw.Case(strconv.Quote(attrs[0]))
		for _, a := range attrs[1:] {
			label = label.Case(strconv.Quote(a))
		}
		label.AddLine("attributes.Add(new KeyValuePair<string, string>(name, value));").
			Break().
			Default().
			AddLine(fmt.Sprintf(`throw new ArgumentException("attribute " + name + " is not allowed on <%s>", nameof(name));`, tag.Name)).
			EndSwitch()
	} else {
		body.AddLine(fmt.Sprintf(`throw new ArgumentException("<%s> takes no attributes", nameof(name));`, tag.Name))
	}
	body.Return("this")
	if err := body.Err(); err != nil {
		return nil, err
	}

	return &decl.Method{
		Name:       "Attribute",
		ReturnType: class,
		Modifiers:  decl.Modifiers{decl.Public},
		Params:     []decl.Parameter{{Type: "string", Name: "name"}, {Type: "string", Name: "value"}},
		Body:       body,
	}, nil
}

func (g *Generator) renderMethod(tag Tag) (decl.Decl, error) {
	open := strconv.Quote("<" + tag.Name)
	closing := strconv.Quote("</" + tag.Name + ">")

	body := g.newCode()
	body.AddLine(fmt.Sprintf("sb.Append(%s);", open))
	body.ForeachIn("var", "attribute", "attributes").
		AddLine(`sb.Append(' ').Append(attribute.Key).Append("=\"");`).
		AddLine("new TextNode(attribute.Value).Render(sb);").
		AddLine(`sb.Append('"');`).
		EndCycle()

	if tag.Void {
		body.AddLine(`sb.Append(" />");`)
	} else {
		body.If("children.Count == 0").Then().
			AddLine(`sb.Append(" />");`).
			Return("").
			EndIf()
		body.AddLine("sb.Append('>');")
		body.ForeachIn("var", "child", "children").
			AddLine("child.Render(sb);").
			EndCycle()
		body.AddLine(fmt.Sprintf("sb.Append(%s);", closing))
	}
	if err := body.Err(); err != nil {
		return nil, err
	}

	return &decl.Method{
		Name:      "Render",
		Modifiers: decl.Modifiers{decl.Public},
		Params:    []decl.Parameter{{Type: "StringBuilder", Name: "sb"}},
		Body:      body,
	}, nil
}
