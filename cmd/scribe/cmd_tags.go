package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/scribe/markup"
)

func newTagsCmd(opts *rootOptions) *cobra.Command {
	var builtin bool

	cmd := &cobra.Command{
		Use:   "tags [table...]",
		Short: "Print the allowed children of every tag",
		Long: `Print the parent to children closure of each table.

Each line is a tag, its builder class and the tags allowed directly inside
it, tab separated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := loadTables(opts, args, builtin)
			if err != nil {
				return err
			}
			for _, nt := range tables {
				closure := nt.table.Closure()
				names := make([]string, 0, len(closure))
				for name := range closure {
					names = append(names, name)
				}
				sort.Strings(names)

				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", nt.path)
				for _, name := range names {
					children := "-"
					if len(closure[name]) > 0 {
						children = strings.Join(closure[name], ",")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", name, markup.ClassName(name), children)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&builtin, "builtin", false, "include the bundled HTML table")

	return cmd
}
