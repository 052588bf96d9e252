package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/scribe/config"
)

const version = "0.1.0"

var log = commonlog.GetLogger("scribe")

type rootOptions struct {
	dir     string
	verbose int
	cfg     *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "scribe",
		Short:   "Generate C# markup builders from tag tables",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Find(opts.dir)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			commonlog.Configure(max(opts.verbose, cfg.Verbosity), nil)
			if cfg.Path != "" {
				log.Debugf("using %s", cfg.Path)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "directory to look for scribe.toml from")
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newGenCmd(opts))
	rootCmd.AddCommand(newTagsCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
