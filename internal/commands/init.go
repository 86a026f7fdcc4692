package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cibseven/procvar/internal/config"
)

type initOptions struct {
	path      string
	language  string
	longRange string
	force     bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a procvar.yaml with default settings",
		Example: `  procvar init
  procvar init --lang de --long-range int64`,
		Args: cobra.NoArgs,
		// init must work even when an existing procvar.yaml is broken.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			// the global --lang and --long-range flags become the file's values
			opts.language, _ = cmd.Flags().GetString("lang")
			opts.longRange, _ = cmd.Flags().GetString("long-range")
			if err := runInit(opts); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.path, "file", config.DefaultFileName, "Path of the file to write")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	return cmd
}

func runInit(opts *initOptions) error {
	if _, err := os.Stat(opts.path); err == nil && !opts.force {
		return fmt.Errorf("%s already exists; use --force to overwrite", opts.path)
	}

	cfg := config.Default()
	if opts.language != "" {
		cfg.Language = opts.language
	}
	if opts.longRange != "" {
		cfg.LongRange = opts.longRange
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(opts.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.path, err)
	}
	return nil
}
