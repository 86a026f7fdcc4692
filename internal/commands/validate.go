package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cibseven/procvar"
	"github.com/cibseven/procvar/internal/session"
)

type validateOptions struct {
	typeName   string
	objectType string
	format     string
	value      valueOptions
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a value against a variable type",
		Long: `Check a value against a variable type and report whether it may be
submitted. Object values additionally need --object-type and --format; a JSON
format makes the payload subject to the JSON grammar.`,
		Example: `  procvar validate --type Short --value 32768
  procvar validate --type Boolean --literal --value true
  procvar validate --type Object --value '{"a":1}' \
    --object-type java.util.HashMap --format application/json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "Variable type, e.g. Integer or Json")
	cmd.Flags().StringVar(&opts.objectType, "object-type", "", "Object only: objectTypeName")
	cmd.Flags().StringVar(&opts.format, "format", "", "Object only: serializationDataFormat")
	opts.value.register(cmd)

	return cmd
}

func runValidate(w io.Writer, ctx *session.Context, opts *validateOptions) error {
	t, err := parseTypeFlag("type", opts.typeName)
	if err != nil {
		return err
	}
	v, err := opts.value.value()
	if err != nil {
		return err
	}

	d := procvar.Draft{Type: t, Value: v}
	if opts.objectType != "" || opts.format != "" {
		d = d.WithValueInfo(procvar.ValueInfo{ObjectTypeName: opts.objectType, SerializationDataFormat: opts.format})
	}

	iss := d.CheckSubmittable(ctx.Options)
	ctx.Logger.Debug("validated", "type", t.String(), "value", procvar.Text(v), "issues", len(iss))
	if len(iss) == 0 {
		_, _ = fmt.Fprintln(w, "ok")
		return nil
	}
	printIssues(w, iss, "")
	return ErrFailed
}

func printIssues(w io.Writer, iss procvar.Issues, indent string) {
	for _, it := range iss {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, it.Error())
		if it.Hint != "" {
			_, _ = fmt.Fprintf(w, "%s  hint: %s\n", indent, it.Hint)
		}
	}
}
