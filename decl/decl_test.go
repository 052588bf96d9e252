package decl

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/scribe/code"
)

func format(t *testing.T, d Decl) string {
	t.Helper()
	out, err := Format(d, code.FourSpaces, "\n")
	require.NoError(t, err)
	return out
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestClassWithMethodBody(t *testing.T) {
	body := code.New()
	body.If("items != null").Then().
		Foreach("var item in items").AddLine("Console.WriteLine(item);").EndCycle().
		EndIf()

	cls := &Class{
		Name:      "Printer",
		Modifiers: Modifiers{Public},
		Members: []Decl{
			&Field{Name: "count", Type: "int", Modifiers: Modifiers{Private}},
			&Field{Name: "Max", Type: "int", Modifiers: Modifiers{Public, Const}, Value: "10"},
			&Method{
				Name:      "Print",
				Modifiers: Modifiers{Public},
				Params:    []Parameter{{Type: "List<string>", Name: "items"}},
				Body:      body,
			},
		},
	}

	assert.Equal(t, lines(
		"public class Printer",
		"{",
		"    private int count;",
		"    public const int Max = 10;",
		"",
		"    public void Print(List<string> items)",
		"    {",
		"        if (items != null)",
		"        {",
		"            foreach (var item in items)",
		"            {",
		"                Console.WriteLine(item);",
		"            }",
		"        }",
		"    }",
		"}",
	), format(t, cls))
}

func TestIndentGrowsOneUnitPerLevel(t *testing.T) {
	body := code.New()
	body.If("a").Then().While("b").AddLine("step();").EndCycle().EndIf()
	ns := &Namespace{Name: "App", Types: []Decl{
		&Class{Name: "C", Members: []Decl{&Method{Name: "Run", Body: body}}},
	}}

	out := format(t, ns)
	want := map[string]int{
		"namespace App": 0,
		"class C":       1,
		"void Run()":    2,
		"if (a)":        3,
		"while (b)":     4,
		"step();":       5,
	}
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if depth, ok := want[trimmed]; ok {
			assert.Equal(t, depth, (len(line)-len(trimmed))/4, "indent of %q", trimmed)
		}
	}
}

func TestProperty(t *testing.T) {
	getter := code.New()
	getter.Return("value")
	setter := code.New()
	setter.AddLine("this.value = value;")

	tests := []struct {
		name     string
		prop     *Property
		expected string
	}{
		{
			name:     "auto",
			prop:     &Property{Name: "Count", Type: "int", Modifiers: Modifiers{Public}},
			expected: lines("public int Count { get; set; }"),
		},
		{
			name:     "read-only with initializer",
			prop:     &Property{Name: "Name", Type: "string", Modifiers: Modifiers{Public}, ReadOnly: true, Init: `"x"`},
			expected: lines(`public string Name { get; } = "x";`),
		},
		{
			name:     "expression bodied",
			prop:     &Property{Name: "Double", Type: "int", Modifiers: Modifiers{Public}, Expr: "x * 2"},
			expected: lines("public int Double => x * 2;"),
		},
		{
			name: "accessor bodies",
			prop: &Property{Name: "Value", Type: "int", Modifiers: Modifiers{Public, Virtual}, Getter: getter, Setter: setter},
			expected: lines(
				"public virtual int Value",
				"{",
				"    get",
				"    {",
				"        return value;",
				"    }",
				"    set",
				"    {",
				"        this.value = value;",
				"    }",
				"}",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, format(t, tt.prop))
		})
	}
}

func TestInterfaceAndConstructor(t *testing.T) {
	iface := &Interface{
		Name:      "IShape",
		Modifiers: Modifiers{Public},
		Members: []Decl{
			&Method{Name: "Area", ReturnType: "double"},
			&Property{Name: "Name", Type: "string", ReadOnly: true},
		},
	}
	assert.Equal(t, lines(
		"public interface IShape",
		"{",
		"    double Area();",
		"",
		"    string Name { get; }",
		"}",
	), format(t, iface))

	cls := &Class{
		Name:      "Child",
		Modifiers: Modifiers{Public},
		Bases:     []string{"Base", "IShape"},
		Members: []Decl{
			&Constructor{Modifiers: Modifiers{Public}, Params: []Parameter{{Type: "int", Name: "x"}}, Initializer: "base(x)"},
			&Method{Name: "Area", ReturnType: "double", Modifiers: Modifiers{Public, Override}, Expr: "0"},
		},
	}
	assert.Equal(t, lines(
		"public class Child : Base, IShape",
		"{",
		"    public Child(int x)",
		"        : base(x)",
		"    {",
		"    }",
		"",
		"    public override double Area() => 0;",
		"}",
	), format(t, cls))
}

func TestFile(t *testing.T) {
	f := &File{
		Name:   "Point.cs",
		Header: "Code generated by scribe. DO NOT EDIT.",
		Usings: []string{"System"},
		Decls: []Decl{&Namespace{Name: "Geo", Types: []Decl{
			&Class{Name: "Point", Modifiers: Modifiers{Public, Sealed}, Doc: "A point.", Members: []Decl{
				&Field{Name: "X", Type: "int", Modifiers: Modifiers{Public, Readonly}},
			}},
		}}},
	}
	assert.Equal(t, lines(
		"// Code generated by scribe. DO NOT EDIT.",
		"",
		"using System;",
		"",
		"namespace Geo",
		"{",
		"    /// <summary>",
		"    /// A point.",
		"    /// </summary>",
		"    public sealed class Point",
		"    {",
		"        public readonly int X;",
		"    }",
		"}",
	), format(t, f))
}

func TestModifierValidation(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		mods  Modifiers
		valid bool
	}{
		{"single access", KindField, Modifiers{Private}, true},
		{"two access levels", KindField, Modifiers{Public, Private}, false},
		{"protected internal", KindMethod, Modifiers{Protected, Internal}, true},
		{"private protected", KindMethod, Modifiers{Private, Protected}, true},
		{"abstract sealed class", KindClass, Modifiers{Abstract, Sealed}, false},
		{"static virtual", KindMethod, Modifiers{Static, Virtual}, false},
		{"virtual override", KindMethod, Modifiers{Virtual, Override}, false},
		{"readonly method", KindMethod, Modifiers{Readonly}, false},
		{"const static field", KindField, Modifiers{Const, Static}, false},
		{"duplicate", KindClass, Modifiers{Public, Public}, false},
		{"sealed method without override", KindMethod, Modifiers{Public, Sealed}, false},
		{"sealed override", KindMethod, Modifiers{Public, Sealed, Override}, true},
		{"private virtual", KindProperty, Modifiers{Private, Virtual}, false},
		{"async method", KindMethod, Modifiers{Public, Async}, true},
		{"async field", KindField, Modifiers{Async}, false},
		{"static class", KindClass, Modifiers{Public, Static, Partial}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mods.Validate(tt.kind, "X")
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.kind, ve.Kind)
			assert.NotEmpty(t, ve.Conflicts)
		})
	}
}

func TestDeclarationErrors(t *testing.T) {
	t.Run("empty field name", func(t *testing.T) {
		_, err := Format(&Field{Type: "int"}, code.FourSpaces, "\n")
		var ae *code.ArgumentError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "name", ae.Arg)
	})
	t.Run("const without value", func(t *testing.T) {
		_, err := Format(&Field{Name: "X", Type: "int", Modifiers: Modifiers{Const}}, code.FourSpaces, "\n")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
	t.Run("abstract method with body", func(t *testing.T) {
		body := code.New()
		body.Return("1")
		_, err := Format(&Method{Name: "F", Modifiers: Modifiers{Public, Abstract}, Body: body}, code.FourSpaces, "\n")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, Modifiers{Abstract}, ve.Conflicts)
	})
	t.Run("broken body", func(t *testing.T) {
		body := code.New()
		body.EndIf()
		_, err := Format(&Method{Name: "F", Body: body}, code.FourSpaces, "\n")
		var se *code.StateError
		require.ErrorAs(t, err, &se)
	})
	t.Run("field in interface", func(t *testing.T) {
		_, err := Format(&Interface{Name: "I", Members: []Decl{&Field{Name: "x", Type: "int"}}}, code.FourSpaces, "\n")
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestWriterTokens(t *testing.T) {
	w := NewWriter(code.FourSpaces, "\n")
	w.Indent()
	w.Tokens("public", "int", "x").EndLine()
	w.Token("a").Token("b")
	w.Clear()
	w.Token("c")
	assert.Equal(t, "    public int x\n    a b    c", w.String())

	w = NewWriter(code.TwoSpaces, "\n")
	w.Indent().Write("a\n  b\n")
	assert.Equal(t, "  a\n    b\n", w.String())
}

func TestWriterRenderIsSerialised(t *testing.T) {
	w := NewWriter(code.FourSpaces, "\n")
	cls := &Class{Name: "A", Members: []Decl{&Field{Name: "x", Type: "int"}}}
	want := format(t, cls)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = w.Render(cls)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParseModifiers(t *testing.T) {
	assert.Equal(t, Modifiers{Public, Static}, ParseModifiers("  public static "))
	assert.Equal(t, "public static", Modifiers{Public, Static}.String())
}
