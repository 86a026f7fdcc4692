package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cibseven/procvar"
	"github.com/cibseven/procvar/internal/batch"
	"github.com/cibseven/procvar/internal/session"
)

type checkOptions struct {
	output string
	emit   bool
}

// checkResult is the report line of one batch entry.
type checkResult struct {
	Name     string      `json:"name" yaml:"name"`
	Position string      `json:"position" yaml:"position"`
	Type     string      `json:"type" yaml:"type"`
	OK       bool        `json:"ok" yaml:"ok"`
	Issues   []issueView `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a batch of variables from a YAML or JSON file",
		Long: `Validate every variable listed in FILE and report which ones may be
submitted. Files ending in .json are read as JSON, anything else as YAML.

With --emit the report goes to stderr and stdout receives the engine's
variable-modification payload for the submittable variables.`,
		Example: `  procvar check variables.yaml
  procvar check variables.json -o json
  procvar check variables.yaml --emit > payload.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd, opts.output, ctx.Config.Output)
			if err != nil {
				return err
			}
			report := cmd.OutOrStdout()
			if opts.emit {
				report = cmd.ErrOrStderr()
			}
			return runCheck(report, cmd.OutOrStdout(), ctx, args[0], format, opts.emit)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Report format (text, json, yaml)")
	cmd.Flags().BoolVar(&opts.emit, "emit", false, "Print the REST payload of submittable variables")

	return cmd
}

func runCheck(report, payload io.Writer, ctx *session.Context, path, format string, emit bool) error {
	entries, err := batch.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	ctx.Logger.Debug("batch read", "path", path, "entries", len(entries))

	results := make([]checkResult, 0, len(entries))
	vars := make([]procvar.Variable, 0, len(entries))
	failed := 0
	for _, e := range entries {
		iss := e.Draft.CheckSubmittable(ctx.Options)
		results = append(results, checkResult{
			Name:     e.Name,
			Position: e.Position(),
			Type:     e.Draft.Type.String(),
			OK:       len(iss) == 0,
			Issues:   viewIssues(iss),
		})
		if len(iss) > 0 {
			failed++
			ctx.Logger.Debug("variable rejected", "name", e.Name, "position", e.Position(), "issues", iss.Error())
			continue
		}
		vars = append(vars, e.Draft.Variable(e.Name))
	}

	if err := printCheckReport(report, results, format); err != nil {
		return err
	}
	if emit {
		body, err := procvar.EncodeVariables(vars)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(payload, string(body))
	}
	if failed > 0 {
		ctx.Logger.Info("batch has invalid variables", "failed", failed, "total", len(entries))
		return ErrFailed
	}
	return nil
}

func printCheckReport(w io.Writer, results []checkResult, format string) error {
	switch format {
	case "json":
		return printJSON(w, results)
	case "yaml":
		return printYAML(w, results)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tTYPE\tPOSITION\tSTATUS")
	for _, r := range results {
		status := "ok"
		if !r.OK {
			msgs := make([]string, 0, len(r.Issues))
			for _, it := range r.Issues {
				msgs = append(msgs, it.Code+": "+it.Message)
			}
			status = strings.Join(msgs, "; ")
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Type, r.Position, status)
	}
	return tw.Flush()
}
