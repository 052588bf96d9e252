package markup

import (
	_ "embed"
)

//go:embed html.toml
var builtinHTML []byte

// Builtin returns the bundled HTML subset table.
func Builtin() *Table {
	t, err := Parse(builtinHTML, FormatTOML)
	if err != nil {
		panic("markup: bundled table: " + err.Error())
	}
	return t
}
