// Package commands contains all CLI command definitions.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cibseven/procvar/internal/session"
)

// Environment variables consulted for flag defaults.
const (
	EnvConfig = "PROCVAR_CONFIG"
	EnvLang   = "PROCVAR_LANG"
)

// ErrFailed is returned when a command ran but found invalid values. The
// details have already been printed.
var ErrFailed = errors.New("validation failed")

type rootOptions struct {
	configPath string
	lang       string
	longRange  string
	verbose    bool
}

// NewRootCmd creates and returns the root command for the CLI. getenv
// supplies defaults for --config and --lang.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "procvar",
		Short: "Validate and convert typed process variables",
		Long: `procvar checks process-variable values against the engine's type taxonomy
(String, Boolean, Short, Integer, Long, Double, Date, Json, Xml, Object, Null,
File) and converts values between types the way a variable form does.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := session.Load(cmd.Context(), session.Settings{
				ConfigPath: opts.configPath,
				Language:   opts.lang,
				LongRange:  opts.longRange,
				Verbose:    opts.verbose,
				Stderr:     cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", getenv(EnvConfig), "Path to procvar.yaml (default ./procvar.yaml when present)")
	pf.StringVar(&opts.lang, "lang", getenv(EnvLang), "Message language (en, de)")
	pf.StringVar(&opts.longRange, "long-range", "", "Long bounds: safe (±2^53-1) or int64")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newInitCmd(),
		newTypesCmd(),
		newValidateCmd(),
		newCoerceCmd(),
		newConvertCmd(),
		newCheckCmd(),
	)

	return rootCmd
}
