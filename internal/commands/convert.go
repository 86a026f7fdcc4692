package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cibseven/procvar"
	"github.com/cibseven/procvar/internal/session"
)

type convertOptions struct {
	typeName string
	value    valueOptions
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert form input to a typed value or fail",
		Long: `Convert form input to the typed value sent to the engine. Failures use the
message "Value '<v>' is not of type <T>".`,
		Example: `  procvar convert --type Integer --value 100
  procvar convert --type Boolean --value TRUE`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runConvert(cmd.OutOrStdout(), ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "Variable type")
	opts.value.register(cmd)

	return cmd
}

func runConvert(w io.Writer, ctx *session.Context, opts *convertOptions) error {
	t, err := parseTypeFlag("type", opts.typeName)
	if err != nil {
		return err
	}
	v, err := opts.value.value()
	if err != nil {
		return err
	}
	out, err := procvar.ConvertToType(v, t, ctx.Options)
	if err != nil {
		ctx.Logger.Debug("convert failed", "type", t.String(), "err", err)
		return err
	}
	return printJSON(w, out)
}
