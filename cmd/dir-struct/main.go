package main

import (
	"os"

	"github.com/bethropolis/dir-struct/internal/app"
	"github.com/bethropolis/dir-struct/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "dir-struct [dir]",
		Short: "Print a filtered snapshot of a directory tree",
		Long: "dir-struct walks a directory and prints its structure, dropping, sealing or\n" +
			"redacting the entries matched by an ignore file.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.RootDir = args[0]
			}
			cfg.Finalize()

			application, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			return application.Run()
		},
	}

	cfg.BindFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
