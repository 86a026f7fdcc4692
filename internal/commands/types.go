package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	j "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/cibseven/procvar"
	"github.com/cibseven/procvar/internal/session"
)

type typesOptions struct {
	output string
}

type typeView struct {
	Name    string `json:"name" yaml:"name"`
	Default any    `json:"default" yaml:"default"`
	Numeric bool   `json:"numeric" yaml:"numeric"`
}

func newTypesCmd() *cobra.Command {
	opts := &typesOptions{}

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List variable types and their defaults",
		Example: `  # Table of types
  procvar types

  # As JSON
  procvar types -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd, opts.output, ctx.Config.Output)
			if err != nil {
				return err
			}
			return runTypes(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runTypes(w io.Writer, format string) error {
	views := make([]typeView, 0, len(procvar.Types()))
	for _, t := range procvar.Types() {
		views = append(views, typeView{Name: t.String(), Default: procvar.DefaultValue(t), Numeric: t.Numeric()})
	}

	switch format {
	case "json":
		return printJSON(w, views)
	case "yaml":
		return printYAML(w, views)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TYPE\tDEFAULT")
	for _, v := range views {
		def, err := j.Marshal(v.Default)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", v.Name, def)
	}
	return tw.Flush()
}
