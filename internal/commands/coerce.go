package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/cibseven/procvar"
	"github.com/cibseven/procvar/internal/session"
)

type coerceOptions struct {
	from  string
	to    string
	value valueOptions
}

func newCoerceCmd() *cobra.Command {
	opts := &coerceOptions{}

	cmd := &cobra.Command{
		Use:   "coerce",
		Short: "Carry a value over to another type",
		Long: `Carry a value entered under one type over to another type, as a form
does when its type selector changes. Prints the resulting variable as JSON.`,
		Example: `  procvar coerce --from String --to Json --value 10.50
  procvar coerce --from Json --to Object --value '{"a":"b"}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runCoerce(cmd.OutOrStdout(), ctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "String", "Type the value was entered under")
	cmd.Flags().StringVar(&opts.to, "to", "", "Type to switch to")
	opts.value.register(cmd)

	return cmd
}

func runCoerce(w io.Writer, ctx *session.Context, opts *coerceOptions) error {
	from, err := parseTypeFlag("from", opts.from)
	if err != nil {
		return err
	}
	to, err := parseTypeFlag("to", opts.to)
	if err != nil {
		return err
	}
	v, err := opts.value.value()
	if err != nil {
		return err
	}

	d := procvar.Draft{Type: from, Value: v}.WithType(to, ctx.Options)
	ctx.Logger.Debug("coerced", "from", from.String(), "to", to.String(), "inferred", d.ValueInfo != nil)
	return printJSON(w, d.Variable(""))
}
