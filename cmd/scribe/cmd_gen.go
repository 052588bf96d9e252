package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/scribe/markup"
)

func newGenCmd(opts *rootOptions) *cobra.Command {
	var (
		outDir    string
		namespace string
		builtin   bool
		stdout    bool
	)

	cmd := &cobra.Command{
		Use:   "gen [table...]",
		Short: "Generate one builder class per tag",
		Long: `Generate C# builder classes from tag tables.

Tables are .toml, .yaml or .yml files. Without arguments the tables listed
in scribe.toml are used. When more than one table is generated, each one
gets its own subdirectory of the output directory, named after the table
file.

Examples:
  scribe gen tags.toml
  scribe gen --builtin --out Generated/
  scribe gen --stdout tags.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := loadTables(opts, args, builtin)
			if err != nil {
				return err
			}

			unit, err := opts.cfg.IndentUnit()
			if err != nil {
				return err
			}
			newline, err := opts.cfg.NewlineString()
			if err != nil {
				return err
			}
			if namespace == "" {
				namespace = opts.cfg.Namespace
			}
			if outDir == "" {
				outDir = opts.cfg.OutDir()
			}

			var dirs []string
			if !stdout {
				if dirs, err = outputDirs(outDir, tables); err != nil {
					return err
				}
			}

			g := &markup.Generator{Namespace: namespace, Indent: unit, Newline: newline}
			for i, nt := range tables {
				outputs, err := g.Generate(nt.table)
				if err != nil {
					return fmt.Errorf("%s: %w", nt.path, err)
				}
				if stdout {
					for _, o := range outputs {
						fmt.Fprintf(cmd.OutOrStdout(), "// %s\n%s\n", o.Name, o.Source)
					}
					continue
				}
				if err := writeOutputs(dirs[i], outputs); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: wrote %d files to %s\n", nt.path, len(outputs), dirs[i])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default from scribe.toml)")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "namespace for generated classes")
	cmd.Flags().BoolVar(&builtin, "builtin", false, "also generate the bundled HTML table")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print generated files instead of writing them")

	return cmd
}

// outputDirs returns the directory each table is written to. Every table
// emits its own IMarkupNode.cs and TextNode.cs, so tables never share one.
func outputDirs(out string, tables []namedTable) ([]string, error) {
	if len(tables) == 1 {
		return []string{out}, nil
	}
	dirs := make([]string, len(tables))
	owners := make(map[string]string, len(tables))
	for i, nt := range tables {
		name := strings.TrimPrefix(filepath.Base(nt.path), "builtin:")
		name = strings.TrimSuffix(name, filepath.Ext(name))
		if other, ok := owners[name]; ok {
			return nil, fmt.Errorf("%s and %s would both be generated into %s", other, nt.path, filepath.Join(out, name))
		}
		owners[name] = nt.path
		dirs[i] = filepath.Join(out, name)
	}
	return dirs, nil
}

func writeOutputs(dir string, outputs []markup.Output) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, o := range outputs {
		path := filepath.Join(dir, o.Name)
		if err := os.WriteFile(path, []byte(o.Source), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Debugf("wrote %s", path)
	}
	return nil
}
