package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnose(t *testing.T) {
	t.Run("unknown child", func(t *testing.T) {
		text := "[[tag]]\nname = \"ul\"\nchildren = [\"li\", \"bogus\"]\n\n[[tag]]\nname = \"li\"\n"
		diags := Diagnose("file:///work/tags.toml", text)
		require.Len(t, diags, 1)
		assert.Equal(t, protocol.UInteger(1), diags[0].Range.Start.Line)
		assert.Equal(t, `<ul>: unknown child tag "bogus"`, diags[0].Message)
		require.NotNil(t, diags[0].Severity)
		assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	})

	t.Run("yaml problem", func(t *testing.T) {
		text := "tags:\n  - name: img\n    void: true\n  - name: x\n    parents: [img]\n"
		diags := Diagnose("file:///work/tags.yaml", text)
		require.Len(t, diags, 1)
		assert.Equal(t, protocol.UInteger(3), diags[0].Range.Start.Line)
	})

	t.Run("syntax error", func(t *testing.T) {
		diags := Diagnose("file:///work/tags.toml", "[[tag]]\nname = \n")
		require.Len(t, diags, 1)
	})

	t.Run("valid table", func(t *testing.T) {
		assert.Empty(t, Diagnose("file:///work/tags.toml", listTOML))
	})

	t.Run("other files", func(t *testing.T) {
		assert.Empty(t, Diagnose("file:///work/README.md", "not a table"))
	})
}

func TestHover(t *testing.T) {
	uri := "file:///work/tags.toml"

	got := Hover(uri, listTOML, 4, 8)
	assert.Contains(t, got, "**<ul>** builds as `UlBuilder`")
	assert.Contains(t, got, "children: li")
	assert.Contains(t, got, "attributes: id")

	assert.Empty(t, Hover(uri, listTOML, 0, 0))
	assert.Empty(t, Hover(uri, listTOML, 99, 0))
}

func TestWordAt(t *testing.T) {
	assert.Equal(t, "data-id", wordAt(`x = "data-id"`, 0, 7))
	assert.Equal(t, "", wordAt("abc", 0, 9))
}
