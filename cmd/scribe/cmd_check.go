package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/scribe/markup"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [table...]",
		Short: "Validate tag tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := loadTables(opts, args, false)
			if err != nil {
				return err
			}
			failed := 0
			for _, nt := range tables {
				err := nt.table.Validate()
				var te *markup.TableError
				switch {
				case errors.As(err, &te):
					failed++
					for _, p := range te.Problems {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", nt.path, p)
					}
				case err != nil:
					return err
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d tags)\n", nt.path, len(nt.table.Tags))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tables have problems", failed, len(tables))
			}
			return nil
		},
	}
}
