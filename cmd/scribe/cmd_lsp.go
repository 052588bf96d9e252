package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/scribe/markup"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server for tag table files",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := markup.NewLSPServer(version)
			return server.RunStdio()
		},
	}
}
