package markup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listTOML = `namespace = "Lists"
attributes = ["id"]

[[tag]]
name = "ul"
children = ["li"]

[[tag]]
name = "li"
text = true

[[tag]]
name = "b"
text = true
parents = ["li"]
`

const listYAML = `namespace: Lists
attributes: [id]
tags:
  - name: ul
    children: [li]
  - name: li
    text: true
  - name: b
    text: true
    parents: [li]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		file    string
		content string
	}{
		{"tags.toml", listTOML},
		{"tags.yaml", listYAML},
		{"tags.yml", listYAML},
	} {
		t.Run(tc.file, func(t *testing.T) {
			table, err := Load(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)
			assert.Equal(t, "Lists", table.Namespace)
			assert.Equal(t, []string{"id"}, table.Attributes)
			require.Len(t, table.Tags, 3)
			assert.Equal(t, Tag{Name: "ul", Children: []string{"li"}}, table.Tags[0])
			assert.Equal(t, []string{"li"}, table.Tags[2].Parents)
			assert.NoError(t, table.Validate())
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "tags.toml", "[[tag]]\nname = \"a\"\nchildern = [\"b\"]\n"))
	assert.ErrorContains(t, err, "childern")

	_, err = Load(writeFile(t, "tags.yaml", "tags:\n  - name: a\n    childern: [b]\n"))
	assert.ErrorContains(t, err, "childern")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load(writeFile(t, "tags.json", "{}"))
	assert.ErrorContains(t, err, "unsupported")
}

func TestValidate(t *testing.T) {
	table := &Table{
		Attributes: []string{"id"},
		Tags: []Tag{
			{Name: "a", Children: []string{"missing"}},
			{Name: "a"},
			{Name: "br", Void: true, Children: []string{"a"}},
			{Name: "c", Parents: []string{"br", "nowhere"}, Attributes: []string{"id"}},
			{},
		},
	}

	var te *TableError
	require.ErrorAs(t, table.Validate(), &te)

	var messages []string
	for _, p := range te.Problems {
		messages = append(messages, p.String())
	}
	assert.ElementsMatch(t, []string{
		"tag without a name",
		"<a>: declared more than once",
		`<a>: unknown child tag "missing"`,
		"<br>: void tag cannot have content",
		`<c>: parent "br" is a void tag`,
		`<c>: unknown parent tag "nowhere"`,
		`<c>: attribute "id" declared more than once`,
	}, messages)
}

func TestClosure(t *testing.T) {
	table, err := Parse([]byte(listTOML), FormatTOML)
	require.NoError(t, err)

	closure := table.Closure()
	assert.Equal(t, []string{"li"}, closure["ul"])
	assert.Equal(t, []string{"b"}, closure["li"])
	assert.Empty(t, closure["b"])
}

func TestBuiltin(t *testing.T) {
	table := Builtin()
	require.NoError(t, table.Validate())
	assert.Equal(t, "Scribe.Html", table.Namespace)

	closure := table.Closure()
	assert.Equal(t, []string{"a", "img", "span"}, closure["p"])
	assert.Equal(t, []string{"img"}, closure["a"])

	img, ok := table.Lookup("img")
	require.True(t, ok)
	assert.True(t, img.Void)
	assert.Equal(t, []string{"id", "class", "style", "title", "src", "alt"}, table.AttributesOf(img))
}

func TestValidateGeneratedNameCollisions(t *testing.T) {
	table := &Table{
		Attributes: []string{"data-id"},
		Tags: []Tag{
			{Name: "h1"},
			{Name: "h-1"},
			{Name: "p", Attributes: []string{"data_id"}},
		},
	}

	var te *TableError
	require.ErrorAs(t, table.Validate(), &te)

	var messages []string
	for _, p := range te.Problems {
		messages = append(messages, p.String())
	}
	assert.ElementsMatch(t, []string{
		"<h-1>: builder H1Builder is also generated for <h1>",
		`<p>: attributes "data-id" and "data_id" both generate WithDataId`,
	}, messages)
}
