package main

import (
	"fmt"

	"github.com/dhamidi/scribe/markup"
)

type namedTable struct {
	path  string
	table *markup.Table
}

// loadTables loads the tables named on the command line, falling back to
// the tables listed in scribe.toml, then to the bundled HTML table when
// builtin is set.
func loadTables(opts *rootOptions, args []string, builtin bool) ([]namedTable, error) {
	paths := args
	if len(paths) == 0 {
		paths = opts.cfg.TablePaths()
	}

	var tables []namedTable
	for _, p := range paths {
		t, err := markup.Load(p)
		if err != nil {
			return nil, err
		}
		tables = append(tables, namedTable{path: p, table: t})
	}
	if builtin {
		tables = append(tables, namedTable{path: "builtin:html", table: markup.Builtin()})
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no tag tables: pass files, list them under tables in scribe.toml, or use --builtin")
	}
	return tables, nil
}
