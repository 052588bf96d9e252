package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, table *Table) map[string]string {
	t.Helper()
	outputs, err := NewGenerator().Generate(table)
	require.NoError(t, err)
	files := make(map[string]string, len(outputs))
	for _, o := range outputs {
		files[o.Name] = o.Source
	}
	return files
}

func TestGenerateFiles(t *testing.T) {
	table, err := Parse([]byte(listTOML), FormatTOML)
	require.NoError(t, err)

	outputs, err := NewGenerator().Generate(table)
	require.NoError(t, err)

	var names []string
	for _, o := range outputs {
		names = append(names, o.Name)
		assert.True(t, strings.HasPrefix(o.Source, "// Code generated by scribe. DO NOT EDIT.\n"), o.Name)
	}
	assert.Equal(t, []string{"BBuilder.cs", "IMarkupNode.cs", "LiBuilder.cs", "TextNode.cs", "UlBuilder.cs"}, names)
}

func TestGenerateBuilder(t *testing.T) {
	table := &Table{
		Namespace:  "Test",
		Attributes: []string{"id"},
		Tags: []Tag{
			{Name: "p", Children: []string{"a"}, Text: true},
			{Name: "a", Attributes: []string{"data-target"}},
		},
	}
	files := generate(t, table)

	p := files["PBuilder.cs"]
	for _, snippet := range []string{
		"namespace Test\n{\n",
		"  /// <summary>\n  /// Builds a p element.\n  /// Allowed children: a.\n  /// </summary>\n  public partial class PBuilder : IMarkupNode\n  {\n",
		"    private readonly List<KeyValuePair<string, string>> attributes = new List<KeyValuePair<string, string>>();\n" +
			"    private readonly List<IMarkupNode> children = new List<IMarkupNode>();\n\n",
		"    public string TagName => \"p\";\n",
		"    public PBuilder WithId(string value)\n    {\n      return Attribute(\"id\", value);\n    }\n",
		"      switch (name)\n" +
			"      {\n" +
			"        case \"id\":\n" +
			"          attributes.Add(new KeyValuePair<string, string>(name, value));\n" +
			"          break;\n" +
			"\n" +
			"        default:\n",
		"    public ABuilder AddA()\n    {\n      var child = new ABuilder();\n      children.Add(child);\n      return child;\n    }\n",
		"    public PBuilder AddText(string text)\n",
		"      if (children.Count == 0)\n      {\n        sb.Append(\" />\");\n        return;\n      }\n",
		"      foreach (var child in children)\n      {\n        child.Render(sb);\n      }\n      sb.Append(\"</p>\");\n",
		"    public override string ToString()\n",
	} {
		assert.Contains(t, p, snippet)
	}

	a := files["ABuilder.cs"]
	assert.Contains(t, a, "    public ABuilder WithDataTarget(string value)\n")
	assert.Contains(t, a, "        case \"id\":\n        case \"data-target\":\n          attributes.Add(")
	assert.NotContains(t, a, "AddText")
}

func TestGenerateVoidTag(t *testing.T) {
	files := generate(t, &Table{Tags: []Tag{{Name: "br", Void: true}}})

	br := files["BrBuilder.cs"]
	assert.Contains(t, br, "namespace Markup\n")
	assert.NotContains(t, br, "children")
	assert.Contains(t, br, "throw new ArgumentException(\"<br> takes no attributes\", nameof(name));")
	assert.Contains(t, br, "      sb.Append(\" />\");\n    }\n")
}

func TestGenerateTextNode(t *testing.T) {
	files := generate(t, &Table{Tags: []Tag{{Name: "b", Text: true}}})

	assert.Contains(t, files["TextNode.cs"], "      foreach (var c in text)\n"+
		"      {\n"+
		"        switch (c)\n"+
		"        {\n"+
		"          case '<':\n"+
		"            sb.Append(\"&lt;\");\n"+
		"            break;\n")
	assert.Contains(t, files["TextNode.cs"], "          case '\"':\n"+
		"            sb.Append(\"&quot;\");\n"+
		"            break;\n")
	assert.Contains(t, files["IMarkupNode.cs"], "  public interface IMarkupNode\n  {\n    void Render(StringBuilder sb);\n  }\n")
}

func TestGenerateNamespaceOverride(t *testing.T) {
	g := NewGenerator()
	g.Namespace = "Override"
	outputs, err := g.Generate(&Table{Namespace: "Ignored", Tags: []Tag{{Name: "x"}}})
	require.NoError(t, err)
	for _, o := range outputs {
		assert.Contains(t, o.Source, "namespace Override\n")
	}
}

func TestGenerateRejectsInvalidTable(t *testing.T) {
	_, err := NewGenerator().Generate(&Table{Tags: []Tag{{Name: "a", Children: []string{"b"}}}})
	var te *TableError
	assert.ErrorAs(t, err, &te)
}

func TestGenerateBuiltin(t *testing.T) {
	outputs, err := NewGenerator().Generate(Builtin())
	require.NoError(t, err)
	assert.Len(t, outputs, len(Builtin().Tags)+2)
}

func TestClassName(t *testing.T) {
	assert.Equal(t, "H1Builder", ClassName("h1"))
	assert.Equal(t, "DataListBuilder", ClassName("data-list"))
}
